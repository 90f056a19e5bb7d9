package catcher

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-catcher/internal/catcher"
	"github.com/vovakirdan/tui-catcher/internal/core"
)

// Visual characters for rendering
const (
	NormalChar   = 'o'
	BonusChar    = '★'
	PenaltyChar  = 'x'
	BasketLeft   = '\\'
	BasketMiddle = '_'
	BasketRight  = '/'
	GroundChar   = '▔'
)

// hudRows is the number of rows above the arena.
const hudRows = 1

// Glyph returns the rune and color used for an object kind.
func Glyph(k catcher.Kind) (rune, core.Color) {
	switch k {
	case catcher.KindBonus:
		return BonusChar, core.ColorBrightYellow
	case catcher.KindPenalty:
		return PenaltyChar, core.ColorOlive
	default:
		return NormalChar, core.ColorOrange
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if !g.started {
		g.drawHUD(dst)
		g.drawCenteredMessage(dst, g.title,
			"Catch oranges, dodge the rotten ones",
			"Space start  ←/→ move  P pause  Q quit")
		return
	}

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range g.engine.Objects() {
		r, c := Glyph(o.Kind)
		dst.SetColored(g.cellX(o.Bounds().CenterX()), g.cellY(o.Y+o.H/2), r, c)
	}
	g.drawBasket(dst)

	for _, p := range g.popups {
		dst.DrawTextColored(p.X, p.Y, p.Text, p.Color)
	}

	g.drawHUD(dst)

	switch g.engine.Phase() {
	case catcher.PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case catcher.PhaseOver:
		res, _ := g.engine.Result()
		title := "GAME OVER"
		if res.Won() {
			title = "YOU WIN!"
		}
		g.drawCenteredMessage(dst, title,
			fmt.Sprintf("Final score: %d", res.FinalScore),
			"R restart  Q quit")
	}
}

func (g *Game) drawBasket(dst *core.Screen) {
	b := g.engine.Basket()
	left := g.cellX(b.X - b.W/2)
	right := g.cellX(b.X+b.W/2) - 1
	if right-left < 2 {
		right = left + 2
	}
	y := g.cellY(b.Y)
	dst.SetColored(left, y, BasketLeft, core.ColorYellow)
	for x := left + 1; x < right; x++ {
		dst.SetColored(x, y, BasketMiddle, core.ColorYellow)
	}
	dst.SetColored(right, y, BasketRight, core.ColorYellow)
}

// drawHUD renders the remaining time, score and fall speed on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	timeText := "Time: --"
	if g.engine.Timed() {
		timeText = fmt.Sprintf("Time: %d", RoundSeconds(g.engine.Remaining().Seconds()))
	}
	dst.DrawTextColored(1, 0, timeText, core.ColorWhite)

	scoreText := fmt.Sprintf("Score: %d", g.engine.Score())
	dst.DrawTextColored(12, 0, scoreText, core.ColorBrightYellow)

	speedText := fmt.Sprintf("Speed: %.0f", g.engine.TargetSpeed())
	dst.DrawTextColored(25, 0, speedText, core.ColorCyan)

	if x := dst.Width() - utf8.RuneCountInString(g.title) - 1; x > 38 {
		dst.DrawTextColored(x, 0, g.title, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	width := utf8.RuneCountInString(title)
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-utf8.RuneCountInString(l))/2, boxY+3+i, l)
	}
}

// cellX maps a logical x onto a column.
func (g *Game) cellX(x float64) int {
	return core.ScaleToCells(x, g.cfg.Arena.Width, g.runtime.ScreenW)
}

// cellY maps a logical y onto a row below the HUD.
func (g *Game) cellY(y float64) int {
	return hudRows + core.ScaleToCells(y, g.cfg.Arena.Height, g.runtime.ScreenH-hudRows)
}

// RoundSeconds rounds a countdown for display, half away from zero.
func RoundSeconds(s float64) int {
	return int(math.Round(s))
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
