package event

import "testing"

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.SubscribeFunc(WaveEnded, func(Event) { got = append(got, "first") })
	d.SubscribeFunc(WaveEnded, func(Event) { got = append(got, "second") })
	d.SubscribeFunc(EnemyKilled, func(Event) { got = append(got, "other") })

	d.Dispatch(Event{Type: WaveEnded, Data: 3})

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("delivery = %v, want [first second]", got)
	}
}

func TestSubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	late := 0
	d.SubscribeFunc(LevelUp, func(Event) {
		d.SubscribeFunc(LevelUp, func(Event) { late++ })
	})

	d.Dispatch(Event{Type: LevelUp})
	if late != 0 {
		t.Fatalf("listener added during dispatch ran in the same dispatch")
	}
	d.Dispatch(Event{Type: LevelUp})
	if late != 1 {
		t.Errorf("late listener calls = %d, want 1", late)
	}
}
