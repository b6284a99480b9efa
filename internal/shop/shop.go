// Package shop implements the between-waves economy: pricing, rerolls, locks and purchases.
// Every operation returns false and leaves the run untouched when the action is not allowed.
package shop

import (
	"log"
	"math"

	"github.com/google/uuid"

	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/defs"
	"go-wave-survivor/internal/run"
	"go-wave-survivor/internal/utils"
)

// Price returns the wave-scaled price of an offer with a random integer jitter.
// The result is never below 1.
func Price(basePrice, wave int, rng *utils.PRNGService) int {
	r := int(math.Floor(config.PriceJitterBase * (1 + config.PriceJitterWaveFactor*float64(wave))))
	scaled := float64(basePrice) * (1 + config.PriceWaveFactor*float64(wave))
	jitter := 0
	if r > 0 {
		jitter = rng.IntRange(-r, r)
	}
	return max(1, int(math.Floor(scaled+float64(jitter))))
}

// Engine mutates the shop part of a RunState.
type Engine struct {
	lib   *defs.Library
	rng   *utils.PRNGService
	newID func() string
}

// NewEngine creates an engine drawing offers from lib's pool.
func NewEngine(lib *defs.Library, rng *utils.PRNGService) *Engine {
	return &Engine{lib: lib, rng: rng, newID: uuid.NewString}
}

// reroll refills every unlocked slot with a fresh draw from the pool.
func (e *Engine) reroll(rs *run.RunState) {
	pool := e.lib.Pool()
	if len(pool) == 0 {
		return
	}
	for i := 0; i < config.ShopSlots; i++ {
		if rs.ShopState.IsLocked(i) {
			continue
		}
		offer := pool[e.rng.Pick(len(pool))]
		rs.ShopState.Set(i, offer.ID, Price(offer.BasePrice, rs.Wave, e.rng))
	}
}

// EnterWave performs the free reroll granted when a new wave's shop opens.
func (e *Engine) EnterWave(rs *run.RunState) {
	e.reroll(rs)
}

// PaidReroll rerolls the unlocked slots. It is free while every slot is empty;
// otherwise it costs rerollPrice, which then goes up by one.
func (e *Engine) PaidReroll(rs *run.RunState) bool {
	if rs.ShopState.AllEmpty() {
		e.reroll(rs)
		return true
	}
	if rs.Currency < rs.RerollPrice {
		return false
	}
	rs.Currency -= rs.RerollPrice
	rs.RerollPrice++
	e.reroll(rs)
	return true
}

// Buy purchases the offer in slot at its listed price. Weapons add an owned
// instance, items add their id and apply their modifiers to the run stats.
func (e *Engine) Buy(rs *run.RunState, slot int) (defs.Offer, bool) {
	id, price, ok := rs.ShopState.Slot(slot)
	if !ok {
		return defs.Offer{}, false
	}
	offer, ok := e.lib.Offer(id)
	if !ok {
		log.Printf("shop: slot %d holds unknown offer %q", slot, id)
		return defs.Offer{}, false
	}
	if rs.Currency < price {
		return defs.Offer{}, false
	}
	if offer.IsWeapon() && len(rs.Weapons) >= config.MaxWeapons {
		return defs.Offer{}, false
	}

	rs.Currency -= price
	if offer.IsWeapon() {
		rs.Weapons = append(rs.Weapons, run.WeaponRecord{WeaponID: offer.ID, InstanceID: e.newID()})
	} else {
		rs.Items = append(rs.Items, offer.ID)
		for _, m := range offer.Item.Modifiers {
			rs.Stats[m.Stat] += m.Value
		}
	}
	rs.ShopState.Clear(slot)
	return offer, true
}

// ToggleLock flips the lock of a non-empty slot.
func (e *Engine) ToggleLock(rs *run.RunState, slot int) bool {
	if rs.ShopState.IsEmpty(slot) {
		return false
	}
	rs.ShopState.Locks[slot] = !rs.ShopState.Locks[slot]
	return true
}
