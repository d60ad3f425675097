package game

import (
	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/systems"
)

// spawnSnake creates the snake entity: one cell at the centre heading right.
func (g *Game) spawnSnake() {
	center := g.field.Center()
	body := components.NewBody(center, 16)
	heading := components.Heading{Current: components.DirRight}
	g.snake = g.snakeMapper.NewEntity(&body, &heading)
	g.occ.Occupy(center)
}

// spawnItems creates the configured collectibles on random free cells.
func (g *Game) spawnItems() {
	items := g.cfg.Items
	add := func(kind components.ItemKind, n int) {
		for i := 0; i < n; i++ {
			cell := components.Cell{}
			item := components.Item{Kind: kind}
			g.items = append(g.items, g.itemMapper.NewEntity(&cell, &item))
		}
	}
	add(components.ItemApple, items.Apples)
	add(components.ItemBadApple, items.BadApples)
	add(components.ItemStone, items.Stones)

	g.repositionItems()
}

// repositionItems moves every item to a fresh free cell. All items are
// lifted first so each lands away from the snake and from the others.
func (g *Game) repositionItems() {
	for _, e := range g.items {
		cell, item := g.itemMapper.Get(e)
		if item.Placed {
			g.occ.Vacate(*cell)
			item.Placed = false
		}
	}
	placed := 0
	for _, e := range g.items {
		cell, item := g.itemMapper.Get(e)
		c, ok := systems.SampleFree(g.occ, g.rng)
		if !ok {
			continue
		}
		*cell = c
		item.Placed = true
		g.occ.Occupy(c)
		placed++
	}
	g.perfCollector.Placed(placed)
}

// itemAt returns the kind of the item on c.
func (g *Game) itemAt(c components.Cell) (components.ItemKind, bool) {
	for _, e := range g.items {
		cell, item := g.itemMapper.Get(e)
		if item.Placed && *cell == c {
			return item.Kind, true
		}
	}
	return 0, false
}

// targets lists placed items for the autopilot.
func (g *Game) targets() []systems.Target {
	var out []systems.Target
	query := g.itemFilter.Query()
	for query.Next() {
		cell, item := query.Get()
		if item.Placed {
			out = append(out, systems.Target{Cell: *cell, Kind: item.Kind})
		}
	}
	return out
}

// resetSnake puts a one-cell snake back at the centre with a random
// heading, zeroes the score and reshuffles the items.
func (g *Game) resetSnake(cause components.DeathCause) {
	g.finishRun(cause)

	body, heading := g.snakeMapper.Get(g.snake)
	g.occ.Clear()
	for _, e := range g.items {
		_, item := g.itemMapper.Get(e)
		item.Placed = false
	}
	center := g.field.Center()
	body.Reset(center)
	g.occ.Occupy(center)

	heading.Current = components.Directions[g.rng.Intn(len(components.Directions))]
	heading.Pending = components.DirNone

	g.score = 0
	g.repositionItems()
	g.fps = g.speed.FPS(body.Len())
}

// Restart abandons the current run.
func (g *Game) Restart() {
	g.resetSnake(components.CauseRestart)
	g.paused = false
}
