package delivery

import (
	"errors"

	"freshcatch-be/internal/money"
)

var ErrUnknownSlot = errors.New("unknown delivery slot")

// Slot is a fixed delivery window with a flat surcharge. The table is
// static: surcharges are not derived from distance, weight, or region.
type Slot struct {
	ID        string
	Label     string
	Window    string
	Surcharge money.Amount
}

const (
	SlotSunrise = "sunrise"
	SlotMorning = "morning"
	SlotEvening = "evening"
)

// DefaultSlotID is used when the storefront has not picked a slot yet.
const DefaultSlotID = SlotMorning

var slots = []Slot{
	{ID: SlotSunrise, Label: "Sunrise", Window: "5 AM - 8 AM", Surcharge: 0},
	{ID: SlotMorning, Label: "Morning", Window: "8 AM - 12 PM", Surcharge: 0},
	{ID: SlotEvening, Label: "Evening", Window: "4 PM - 8 PM", Surcharge: 3000},
}

// Slots returns all delivery slots in display order.
func Slots() []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

// SlotByID looks up a slot by its identifier.
func SlotByID(id string) (Slot, error) {
	for _, s := range slots {
		if s.ID == id {
			return s, nil
		}
	}
	return Slot{}, ErrUnknownSlot
}
