package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/ui"
)

const controlsText = "Arrows: steer | Q/W: faster/slower | Space: pause | R: restart | Esc: quit"

// Draw renders the field, the HUD and, while paused, the pause panel.
func (g *Game) Draw() {
	if g.headless {
		return
	}
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.Black)
	f := g.viewport.FieldRect()
	rl.DrawRectangleRec(toRect(f), g.theme.Background)

	query := g.itemFilter.Query()
	for query.Next() {
		cell, item := query.Get()
		if !item.Placed {
			continue
		}
		g.drawCell(*cell, g.itemColor(item.Kind))
	}

	body, _ := g.snakeMapper.Get(g.snake)
	for i := body.Len() - 1; i >= 0; i-- {
		color := g.theme.Snake
		if i == 0 {
			color = g.theme.SnakeHead
		}
		g.drawCell(body.At(i), color)
	}

	sw, sh := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	g.hud.Draw(ui.HUDData{
		Title:        g.cfg.Screen.Title,
		Score:        g.score,
		Record:       g.record,
		Length:       body.Len(),
		Speed:        g.fps,
		Paused:       g.paused,
		ScreenWidth:  sw,
		ScreenHeight: sh,
	})
	g.hud.DrawControls(sh, controlsText)

	if g.paused {
		action, bias := g.pausePanel.Draw(sw, sh, g.speed.Bias())
		if bias != g.speed.Bias() {
			g.speed.SetBias(bias)
			g.fps = g.speed.FPS(body.Len())
		}
		switch action {
		case ui.PauseResume:
			g.paused = false
		case ui.PauseRestart:
			g.Restart()
		}
	}
}

// drawCell fills a cell and outlines it in the border colour.
func (g *Game) drawCell(c components.Cell, color rl.Color) {
	r := toRect(g.viewport.CellRect(c.X, c.Y))
	rl.DrawRectangleRec(r, color)
	rl.DrawRectangleLinesEx(r, 1, g.theme.Border)
}

func (g *Game) itemColor(kind components.ItemKind) rl.Color {
	switch kind {
	case components.ItemBadApple:
		return g.theme.BadApple
	case components.ItemStone:
		return g.theme.Stone
	default:
		return g.theme.Apple
	}
}
