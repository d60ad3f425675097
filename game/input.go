package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/components"
)

// steerKeys maps arrow keys to directions.
var steerKeys = [...]struct {
	key int32
	dir components.Direction
}{
	{rl.KeyUp, components.DirUp},
	{rl.KeyDown, components.DirDown},
	{rl.KeyLeft, components.DirLeft},
	{rl.KeyRight, components.DirRight},
}

// handleInput processes keyboard input. Escape and window close are
// handled by raylib through WindowShouldClose.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Restart()
	}

	if rl.IsKeyPressed(rl.KeyQ) {
		g.speed.Faster()
		g.fps = g.speed.FPS(g.Length())
	}
	if rl.IsKeyPressed(rl.KeyW) {
		g.speed.Slower(g.Length())
		g.fps = g.speed.FPS(g.Length())
	}

	if g.paused || g.autoplay {
		return
	}
	for _, k := range steerKeys {
		if rl.IsKeyPressed(k.key) {
			g.Steer(k.dir)
		}
	}
}
