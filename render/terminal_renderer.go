// Package render draws session views on a tcell screen and maps terminal keys to session inputs
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hoopshot/core"
	"github.com/lixenwraith/hoopshot/level"
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/session"
	"github.com/lixenwraith/hoopshot/vmath"
)

// TerminalRenderer draws the playfield scaled onto the terminal grid
// Rows: HUD at the top, playfield in the middle, floor on the last row
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
	base   tcell.Style
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		base:   tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText),
	}
	r.Resize()
	return r
}

// Resize re-reads the screen size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// fieldRows is the number of rows the playfield spans
func (r *TerminalRenderer) fieldRows() int {
	return r.height - parameter.HUDRows
}

// CellAt maps a playfield point to a terminal cell
func (r *TerminalRenderer) CellAt(field core.Playfield, p vmath.Vec2) (int, int) {
	rows := r.fieldRows()
	x := int(math.Floor(p.X / field.Width * float64(r.width)))
	y := parameter.HUDRows + int(math.Floor(p.Y/field.Height*float64(rows)))
	return clamp(x, 0, r.width-1), clamp(y, parameter.HUDRows, r.height-1)
}

// RenderFrame draws one complete frame and shows it
func (r *TerminalRenderer) RenderFrame(v session.View) {
	r.screen.Clear()
	r.fill(r.base)
	if r.width <= 0 || r.fieldRows() <= 1 {
		r.screen.Show()
		return
	}

	switch v.Phase {
	case session.PhaseMenu:
		r.drawMenu(v)
	case session.PhasePlaying:
		r.drawField(v.State)
		r.drawHUD(v)
		r.drawInstructions()
	case session.PhaseGameOver:
		r.drawGameOver(v)
	}
	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawField(s core.State) {
	floor := r.base.Foreground(RgbFloor)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, r.height-1, runeFloor, nil, floor)
	}

	r.drawBackboard(s)
	r.drawNet(s)
	r.drawRim(s)

	if !s.Projectile.InFlight {
		r.drawAim(s)
	}

	bx, by := r.CellAt(s.Field, s.Projectile.Position)
	r.screen.SetContent(bx, by, runeBall, nil, r.base.Foreground(RgbBall).Bold(true))
}

func (r *TerminalRenderer) drawRim(s core.State) {
	style := r.base.Foreground(RgbRim)
	x0, y := r.CellAt(s.Field, s.Target.Position)
	x1, _ := r.CellAt(s.Field, vmath.Vec2{X: s.Target.Position.X + s.Target.Width, Y: s.Target.Position.Y})
	for x := x0; x <= x1; x++ {
		r.screen.SetContent(x, y, runeRim, nil, style)
	}
}

func (r *TerminalRenderer) drawBackboard(s core.State) {
	style := r.base.Foreground(RgbBackboard)
	b := level.Backboard(s.Target)
	x, y0 := r.CellAt(s.Field, vmath.Vec2{X: b.X, Y: b.Y})
	_, y1 := r.CellAt(s.Field, vmath.Vec2{X: b.X, Y: b.Y + b.Height})
	for y := y0; y <= y1; y++ {
		r.screen.SetContent(x, y, runeBackboard, nil, style)
	}
}

func (r *TerminalRenderer) drawNet(s core.State) {
	style := r.base.Foreground(RgbNet)
	points := level.NetPoints(s.Target)
	for i := 0; i+1 < len(points); i += 2 {
		x, y0 := r.CellAt(s.Field, points[i])
		_, y1 := r.CellAt(s.Field, points[i+1])
		for y := y0 + 1; y <= y1; y++ {
			r.screen.SetContent(x, y, runeNet, nil, style)
		}
	}
}

// drawAim plots the aim line from the ball along the current angle
func (r *TerminalRenderer) drawAim(s core.State) {
	style := r.base.Foreground(RgbAim)
	dir := vmath.FromPolar(1, float64(s.Aim.AngleDegrees))
	const samples = 8
	for i := 1; i <= samples; i++ {
		d := parameter.AngleIndicatorLength * float64(i) / samples
		x, y := r.CellAt(s.Field, s.Projectile.Position.Add(dir.Scale(d)))
		r.screen.SetContent(x, y, runeAim, nil, style)
	}
}

const hudLevelLine = 2

func (r *TerminalRenderer) drawHUD(v session.View) {
	x := 0
	for i, line := range session.HUDLines(v) {
		style := r.base
		if i == hudLevelLine {
			style = r.base.Foreground(RgbLevel)
		}
		x = r.drawText(x, 0, line, style) + 2
	}
	x = r.drawText(x, 0, "Power ", r.base)
	x = r.drawPowerMeter(x, 0, v.State.Aim.Power) + 1
	x = r.drawText(x, 0, fmt.Sprintf("%3d", v.State.Aim.Power), r.base) + 2
	x = r.drawText(x, 0, fmt.Sprintf("Angle %2d°", v.State.Aim.AngleDegrees), r.base) + 2
	if v.Muted {
		r.drawText(x, 0, "[muted]", r.base.Foreground(RgbAim))
	}
}

// drawPowerMeter draws a PowerMeterCells wide bar and returns the column after it
func (r *TerminalRenderer) drawPowerMeter(x, y, power int) int {
	filled := PowerCells(power)
	on := r.base.Foreground(RgbPower)
	off := r.base.Foreground(RgbAim)
	for i := 0; i < parameter.PowerMeterCells; i++ {
		if i < filled {
			r.screen.SetContent(x+i, y, runePowerOn, nil, on)
		} else {
			r.screen.SetContent(x+i, y, runePowerOff, nil, off)
		}
	}
	return x + parameter.PowerMeterCells
}

// PowerCells returns how many meter cells a power value fills
func PowerCells(power int) int {
	return clamp(power*parameter.PowerMeterCells/parameter.PowerMax, 0, parameter.PowerMeterCells)
}

func (r *TerminalRenderer) drawInstructions() {
	width := 0
	for _, line := range session.Instructions {
		width = max(width, len(line))
	}
	x := r.width - width - 1
	for i, line := range session.Instructions {
		y := parameter.HUDRows + 1 + i
		if y >= r.height-1 {
			break
		}
		r.drawText(x, y, line, r.base.Foreground(RgbAim))
	}
}

func (r *TerminalRenderer) drawMenu(v session.View) {
	lines := session.MenuLines(v)
	top := r.height/2 - (len(lines)+2)/2
	r.drawCentered(top, session.MenuTitle, r.base.Bold(true))
	for i, line := range lines {
		style := r.base
		if i > 0 && i < len(lines)-1 {
			style = r.base.Foreground(RgbLevel)
		}
		r.drawCentered(top+2+i, line, style)
	}
}

func (r *TerminalRenderer) drawGameOver(v session.View) {
	mid := r.height / 2
	r.drawCentered(mid-2, session.GameOverText, r.base.Foreground(RgbAlert).Bold(true))
	r.drawCentered(mid, session.FinalScoreLine(v), r.base)
	r.drawCentered(mid+2, session.ReturnHint, r.base)
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	x := (r.width - len([]rune(text))) / 2
	r.drawText(max(x, 0), y, text, style)
}

// drawText writes text clipped to the screen and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	if y < 0 || y >= r.height {
		return x
	}
	for _, ch := range text {
		if x >= 0 && x < r.width {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
