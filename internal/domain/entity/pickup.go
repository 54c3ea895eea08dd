package entity

// PickupKind distinguishes floor pickups.
type PickupKind int

const (
	PickupCoin PickupKind = iota
	PickupHeal
)

// Pickup is a collectible dropped into the room at generation time.
// It falls to the floor and is collected on player overlap.
type Pickup struct {
	Body
	Kind  PickupKind
	Value int // coin amount, or hitpoints restored
}

// NewPickup creates a pickup at the given pixel position.
func NewPickup(kind PickupKind, x, y float64, value int) *Pickup {
	return &Pickup{
		Body: Body{
			X: x, Y: y,
			W: 8, H: 8,
			Alive: true,
		},
		Kind:  kind,
		Value: value,
	}
}

// NPC is a passive, non-hostile room occupant (the shopkeeper). It
// takes no damage, deals none, and is never compacted away.
type NPC struct {
	Body
	Name string
}

// NewNPC creates a passive occupant at the given pixel position.
func NewNPC(name string, x, y float64) *NPC {
	return &NPC{
		Body: Body{
			X: x, Y: y,
			W: 14, H: 24,
			Alive: true,
		},
		Name: name,
	}
}
