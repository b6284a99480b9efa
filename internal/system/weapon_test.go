package system

import (
	"testing"

	"go-wave-survivor/internal/run"
	"go-wave-survivor/internal/types"
)

func TestEquipStaggersFirstShot(t *testing.T) {
	w := newWorld(t, 9)
	w.weapons.Equip([]run.WeaponRecord{
		{WeaponID: "stick", InstanceID: "a"},
		{WeaponID: "pistol", InstanceID: "b"},
		{WeaponID: "unknown", InstanceID: "c"},
	}, 5000)

	inst := w.weapons.Instances()
	if len(inst) != 2 {
		t.Fatalf("instances = %d, want 2 (unknown weapon skipped)", len(inst))
	}
	for _, wi := range inst {
		if wi.LastFiredAtMs > 5000 || wi.LastFiredAtMs < 5000-800 {
			t.Fatalf("%s: lastFired %v outside [now-cooldown, now]", wi.DefID, wi.LastFiredAtMs)
		}
	}
}

func TestMeleePrefersStrongTargets(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		w := newWorld(t, seed)
		weak := w.enemy(1050, 1000, 20)
		strong := w.enemy(950, 1000, 60)
		w.weapons.Equip([]run.WeaponRecord{{WeaponID: "stick", InstanceID: "a"}}, 0)

		w.weapons.Update(10_000)

		if hp := w.ecs.Healths[weak].Value; hp != 20 {
			t.Fatalf("seed %d: weak enemy hit (hp %v)", seed, hp)
		}
		// (10 + 0) * 1.2
		if hp := w.ecs.Healths[strong].Value; hp != 48 {
			t.Fatalf("seed %d: strong enemy hp %v, want 48", seed, hp)
		}
	}
}

func TestWeaponRespectsCooldown(t *testing.T) {
	w := newWorld(t, 2)
	id := w.enemy(1050, 1000, 1000)
	w.weapons.Equip([]run.WeaponRecord{{WeaponID: "stick", InstanceID: "a"}}, 0)
	for _, wi := range w.ecs.Weapons {
		wi.LastFiredAtMs = 0
	}

	w.weapons.Update(799)
	if hp := w.ecs.Healths[id].Value; hp != 1000 {
		t.Fatalf("fired before cooldown, hp %v", hp)
	}
	w.weapons.Update(800)
	if hp := w.ecs.Healths[id].Value; hp != 988 {
		t.Fatalf("hp %v after first shot, want 988", hp)
	}
	w.weapons.Update(1599)
	if hp := w.ecs.Healths[id].Value; hp != 988 {
		t.Fatal("fired twice inside one cooldown")
	}
}

func TestWeaponDropsStaleTarget(t *testing.T) {
	w := newWorld(t, 3)
	gone := w.enemy(1050, 1000, 10)
	far := w.enemy(1500, 1000, 10)
	w.weapons.Equip([]run.WeaponRecord{{WeaponID: "stick", InstanceID: "a"}}, 0)

	inst := func() types.EntityID {
		for _, wi := range w.ecs.Weapons {
			return wi.TargetID
		}
		return 0
	}
	for _, wi := range w.ecs.Weapons {
		wi.TargetID = gone
		wi.LastFiredAtMs = 1e9
	}
	w.ecs.Destroy(gone)
	w.weapons.Update(0)
	if inst() != 0 {
		t.Fatalf("target %d kept after its entity was destroyed", inst())
	}

	for _, wi := range w.ecs.Weapons {
		wi.TargetID = far
	}
	w.weapons.Update(0)
	if inst() != 0 {
		t.Fatal("out-of-range target kept")
	}
	if _, ok := w.weapons.TargetOf("a"); ok {
		t.Fatal("TargetOf reports a target")
	}
}

func TestRangedWeaponSpawnsProjectile(t *testing.T) {
	w := newWorld(t, 4)
	w.enemy(1300, 1000, 100)
	w.weapons.Equip([]run.WeaponRecord{{WeaponID: "pistol", InstanceID: "p"}}, 0)
	w.weapons.Update(10_000)

	if len(w.ecs.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(w.ecs.Projectiles))
	}
	for _, p := range w.ecs.Projectiles {
		if p.Speed != 600 || p.Angle != 0 {
			t.Fatalf("projectile speed=%v angle=%v", p.Speed, p.Angle)
		}
	}
}
