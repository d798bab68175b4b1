package config

import (
	"strings"

	"github.com/automoto/babel/menu"
)

// Item actions understood by the interface layer. Anything else is a battle
// command that ends the acting member's turn.
const (
	ActionOpenPrefix = "open:"
	ActionBack       = "back"
)

// Menus maps a menu name to its items.
var Menus map[string][]menu.Item

func init() {
	Menus = map[string][]menu.Item{
		"command": {
			{Label: "Attack", Action: "attack"},
			{Label: "Magic", Action: ActionOpenPrefix + "magic"},
			{Label: "Item", Action: ActionOpenPrefix + "item"},
			{Label: "Defend", Action: "defend"},
			{Label: "Flee", Action: "flee"},
		},
		"magic": {
			{Label: "Fire", Action: "fire"},
			{Label: "Ice", Action: "ice"},
			{Label: "Thunder", Action: "thunder"},
			{Label: "Back", Action: ActionBack},
		},
		"item": {
			{Label: "Potion", Action: "potion"},
			{Label: "Ether", Action: "ether"},
			{Label: "Back", Action: ActionBack},
		},
	}
}

// SubmenuName returns the menu an action opens, if it opens one.
func SubmenuName(action string) (string, bool) {
	if !strings.HasPrefix(action, ActionOpenPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(action, ActionOpenPrefix)
	return name, name != ""
}
