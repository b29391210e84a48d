package frogger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Visual characters for rendering
const (
	GrassChar     = '"'
	VergeChar     = '.'
	WaterChar     = '~'
	RoadChar      = ' '
	LaneMarkChar  = '-'
	CarChar       = '█'
	PadChar       = '▒'
	BonusFrogChar = '♣'
)

// hudRows is the number of rows reserved above the board.
const hudRows = 1

// viewport maps board pixels to screen cells.
type viewport struct {
	boardW, boardH int
	cols, rows     int
	top            int
}

func newViewport(board core.Rect, dst *core.Screen) viewport {
	return viewport{
		boardW: max(board.W, 1),
		boardH: max(board.H, 1),
		cols:   dst.Width(),
		rows:   dst.Height() - hudRows,
		top:    hudRows,
	}
}

func (v viewport) col(x int) int {
	return floorDiv(x*v.cols, v.boardW)
}

func (v viewport) row(y int) int {
	return v.top + floorDiv(y*v.rows, v.boardH)
}

// cells converts a board rectangle to a screen rectangle at least one cell in size.
func (v viewport) cells(r core.Rect) core.Rect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1, y1 := v.col(r.Right()), v.row(r.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < g.minScreenW || dst.Height() < g.minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH), core.ColorGray)
		return
	}

	snap := g.world.Snapshot()
	vp := newViewport(snap.Board, dst)

	g.drawBands(dst, vp, snap)

	for _, pad := range snap.Pads {
		if pad.Sinking {
			continue
		}
		dst.DrawRect(vp.cells(pad.Rect), PadChar, core.ColorForest)
	}
	for _, car := range snap.Cars {
		dst.DrawRect(vp.cells(car), CarChar, core.ColorRed)
	}
	for _, frog := range snap.Frogs {
		dst.DrawRect(vp.cells(frog.Rect), BonusFrogChar, frog.Color)
	}

	g.drawPlayer(dst, vp, snap)
	g.drawHUD(dst, snap)

	switch {
	case snap.Status != StatusPlaying:
		g.drawCenteredMessage(dst, snap.Message, fmt.Sprintf("Score: %d  |  Press ENTER to play again", snap.Score))
	case snap.Paused:
		g.drawCenteredMessage(dst, MessagePaused, "Press P to resume")
	}
}

// drawBands paints grass, river, road with lane markings and the start verge.
func (g *Game) drawBands(dst *core.Screen, vp viewport, snap Snapshot) {
	fill := func(y0, y1 int, ch rune, c core.Color) {
		r0, r1 := vp.row(y0), vp.row(y1)
		for y := r0; y < r1; y++ {
			dst.DrawHLine(0, y, dst.Width(), ch, c)
		}
	}

	fill(0, snap.LandHeight, GrassChar, core.ColorGreen)
	fill(snap.WaterTop, snap.RoadTop, WaterChar, core.ColorBlue)
	fill(snap.RoadTop, snap.RoadBottom, RoadChar, core.ColorDarkGray)
	fill(snap.RoadBottom, snap.Board.H, VergeChar, core.ColorGreen)

	laneH := g.cfg.Bands.LaneHeight
	for _, y := range snap.CarLaneYs {
		row := vp.row(y + laneH/2)
		for x := 0; x < dst.Width(); x += 2 {
			dst.SetColored(x, row, LaneMarkChar, core.ColorWhite)
		}
	}
}

// drawPlayer draws the frog, lifted by the hop offset while airborne.
func (g *Game) drawPlayer(dst *core.Screen, vp viewport, snap Snapshot) {
	r := vp.cells(snap.Player)
	lift := int(math.Round(float64(snap.HopOffset*vp.rows) / float64(vp.boardH)))
	color := core.ColorBrightYellow
	if snap.Moving && snap.HopOffset > 0 {
		color = core.ColorBrightGreen
	}
	dst.DrawRect(r.Offset(0, -lift), g.glyph, color)
}

// drawHUD draws the status line above the board.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(1, 0, g.Title(), core.ColorBrightGreen)

	hud := fmt.Sprintf("Score: %d", snap.Score)
	if g.cfg.Rules.LossPolicy != config.LossInstant {
		hud = fmt.Sprintf("Lives: %d  %s", snap.Lives, hud)
	}
	if snap.FrogsTotal > 0 {
		hud = fmt.Sprintf("Frogs: %d/%d  %s", snap.FrogsCollected, snap.FrogsTotal, hud)
	}
	dst.DrawTextColored(dst.Width()-len([]rune(hud))-1, 0, hud, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	titleColor := core.ColorBrightYellow
	if title == MessageGameOver {
		titleColor = core.ColorBrightRed
	}
	dst.DrawTextCentered(boxY+1, title, titleColor)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
