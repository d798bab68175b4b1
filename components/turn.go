package components

import "github.com/yohamta/donburi"

// TurnData stores the acting order of the party
type TurnData struct {
	Order []string
	Index int // Acting member in Order
	Round int // Completed passes through Order
}

// Current returns the acting member, or "" when the order is empty.
func (t *TurnData) Current() string {
	if len(t.Order) == 0 {
		return ""
	}
	return t.Order[t.Index]
}

var Turn = donburi.NewComponentType[TurnData]()
