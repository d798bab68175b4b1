package systems

import (
	"github.com/automoto/babel/components"
	cfg "github.com/automoto/babel/config"
	"github.com/automoto/babel/log"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateTurn returns the singleton Turn component, creating if needed.
func GetOrCreateTurn(e *ecs.ECS) *components.TurnData {
	if _, ok := components.Turn.First(e.World); !ok {
		order := make([]string, len(cfg.Battle.Party))
		copy(order, cfg.Battle.Party)

		ent := e.World.Entry(e.World.Create(components.Turn))
		components.Turn.SetValue(ent, components.TurnData{Order: order})
	}

	ent, _ := components.Turn.First(e.World)
	return components.Turn.Get(ent)
}

// StartTurn announces the acting member and opens the root command menu.
// With an empty party the banner is cleared and no menu opens.
func StartTurn(e *ecs.ECS) {
	turn := GetOrCreateTurn(e)
	ui := GetOrCreateInterface(e)

	name := turn.Current()
	ui.Controller.SetTurn(name)
	if name == "" {
		return
	}

	log.Debug("round %d: %s acts", turn.Round+1, name)
	OpenMenu(e, cfg.Battle.RootMenu)
}

// EndTurn closes the menu and hands the turn to the next member.
func EndTurn(e *ecs.ECS) {
	turn := GetOrCreateTurn(e)
	CloseInterface(e)

	if len(turn.Order) > 0 {
		turn.Index++
		if turn.Index >= len(turn.Order) {
			turn.Index = 0
			turn.Round++
		}
	}

	StartTurn(e)
}
