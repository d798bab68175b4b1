package systems

import (
	"fmt"

	"github.com/automoto/babel/components"
	cfg "github.com/automoto/babel/config"
	"github.com/automoto/babel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	partyMarginRight = 140
	partyTop         = 80
	partyRowHeight   = 22
	partyMarkerSize  = 6
)

// DrawBattlefield renders the party roster with a marker on the acting member.
func DrawBattlefield(e *ecs.ECS, screen *ebiten.Image) {
	turn := GetOrCreateTurn(e)
	face := fonts.Regular.Get()
	x := cfg.C.Width - partyMarginRight

	for i, name := range turn.Order {
		y := partyTop + i*partyRowHeight
		textColor := cfg.Interface.TextColorNormal
		if i == turn.Index {
			textColor = cfg.Interface.TextColorSelected
			vector.FillRect(screen,
				float32(x-partyMarkerSize*2), float32(y-partyMarkerSize-2),
				partyMarkerSize, partyMarkerSize,
				textColor, false)
		}
		text.Draw(screen, name, face, x, y, textColor)
	}

	text.Draw(screen, roundLabel(turn), fonts.Small.Get(), x, partyTop-partyRowHeight, cfg.Interface.TextColorNormal)
}

func roundLabel(turn *components.TurnData) string {
	return fmt.Sprintf("Round %d", turn.Round+1)
}
