package rpgstate

// ArmorSlot names a position in the armor structure
type ArmorSlot string

// Armor slots
const (
	SlotHead ArmorSlot = "head"
	SlotBody ArmorSlot = "body"
	SlotLegs ArmorSlot = "legs"
)

// String returns the string representation of the armor slot
func (s ArmorSlot) String() string {
	return string(s)
}

// IsValid checks if the armor slot is one of the known slots
func (s ArmorSlot) IsValid() bool {
	switch s {
	case SlotHead, SlotBody, SlotLegs:
		return true
	default:
		return false
	}
}

// AllArmorSlots returns every armor slot in head, body, legs order
func AllArmorSlots() []ArmorSlot {
	return []ArmorSlot{SlotHead, SlotBody, SlotLegs}
}

// Armor holds the three armor slots. A nil slot is unequipped.
type Armor struct {
	Head *string `json:"head,omitempty" yaml:"head,omitempty"`
	Body *string `json:"body,omitempty" yaml:"body,omitempty"`
	Legs *string `json:"legs,omitempty" yaml:"legs,omitempty"`
}

// Slot returns the label in the given slot and whether anything is equipped there.
// Unknown slots report nothing equipped.
func (a Armor) Slot(slot ArmorSlot) (string, bool) {
	var label *string
	switch slot {
	case SlotHead:
		label = a.Head
	case SlotBody:
		label = a.Body
	case SlotLegs:
		label = a.Legs
	}
	if label == nil {
		return "", false
	}
	return *label, true
}

// Slots returns the filled slots in head, body, legs order
func (a Armor) Slots() []ArmorSlot {
	var filled []ArmorSlot
	for _, slot := range AllArmorSlots() {
		if _, ok := a.Slot(slot); ok {
			filled = append(filled, slot)
		}
	}
	return filled
}
