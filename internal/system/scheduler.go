// internal/system/scheduler.go
package system

import (
	"cmp"
	"slices"

	"go-wave-survivor/internal/entity"
	"go-wave-survivor/internal/types"
)

type scheduledTask struct {
	owner types.EntityID
	dueMs float64
	seq   uint64
	fn    func()
}

// Scheduler выполняет отложенные одноразовые задачи, привязанные к сущности-владельцу.
// Если владелец к моменту срабатывания уничтожен, задача тихо пропускается.
// Владелец 0 означает задачу без привязки.
type Scheduler struct {
	ecs   *entity.ECS
	tasks []scheduledTask
	seq   uint64
}

func NewScheduler(ecs *entity.ECS) *Scheduler {
	return &Scheduler{ecs: ecs}
}

// After планирует fn через delayMs после nowMs.
func (s *Scheduler) After(owner types.EntityID, nowMs, delayMs float64, fn func()) {
	s.seq++
	s.tasks = append(s.tasks, scheduledTask{owner: owner, dueMs: nowMs + delayMs, seq: s.seq, fn: fn})
}

// Update запускает все созревшие задачи в порядке срока, затем порядка постановки.
// Задачи, поставленные во время Update, ждут следующего тика.
func (s *Scheduler) Update(nowMs float64) {
	var due, pending []scheduledTask
	for _, t := range s.tasks {
		if t.dueMs <= nowMs {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	if len(due) == 0 {
		return
	}
	s.tasks = pending
	slices.SortFunc(due, func(a, b scheduledTask) int {
		if c := cmp.Compare(a.dueMs, b.dueMs); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	for _, t := range due {
		if t.owner != 0 && !s.ecs.IsAlive(t.owner) {
			continue
		}
		t.fn()
	}
}

// Pending возвращает число ожидающих задач.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Clear отменяет все задачи.
func (s *Scheduler) Clear() {
	s.tasks = nil
}
