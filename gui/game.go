// Package gui runs the session in a desktop window with ebiten
package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/hoopshot/core"
	"github.com/lixenwraith/hoopshot/engine"
	"github.com/lixenwraith/hoopshot/level"
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/session"
	"github.com/lixenwraith/hoopshot/vmath"
)

var (
	colorBackground = color.RGBA{240, 240, 240, 255}
	colorBall       = color.RGBA{255, 140, 0, 255}
	colorRim        = color.RGBA{255, 0, 0, 255}
	colorBoard      = color.RGBA{255, 255, 255, 255}
	colorNet        = color.RGBA{255, 255, 255, 255}
	colorLine       = color.RGBA{0, 0, 0, 255}
	colorPower      = color.RGBA{255, 0, 0, 255}
	colorFloor      = color.RGBA{150, 110, 70, 255}
)

// lineHeight is the DebugPrint glyph row spacing
const lineHeight = 16

// Game adapts a session to ebiten.Game
type Game struct {
	session *session.Session
	clock   *engine.FrameClock
	field   core.Playfield
}

func NewGame(s *session.Session, tp engine.TimeProvider) *Game {
	return &Game{
		session: s,
		clock:   engine.NewFrameClock(tp),
		field:   s.View().State.Field,
	}
}

// Update applies input and advances one tick
func (g *Game) Update() error {
	phase := g.session.Phase()
	for _, in := range pollInputs(phase) {
		g.session.Handle(in)
	}
	if g.session.Done() {
		return ebiten.Termination
	}
	if g.session.Phase() == session.PhasePlaying && phase != session.PhasePlaying {
		g.clock.Reset()
	}
	g.session.Tick(g.clock.Delta())
	return nil
}

// Layout draws at playfield resolution and lets ebiten scale to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.field.Width), int(g.field.Height)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	v := g.session.View()
	switch v.Phase {
	case session.PhaseMenu:
		g.drawMenu(screen, v)
	case session.PhasePlaying:
		g.drawField(screen, v.State)
		g.drawHUD(screen, v)
	case session.PhaseGameOver:
		g.drawGameOver(screen, v)
	}
}

func (g *Game) drawField(screen *ebiten.Image, s core.State) {
	floor := float32(s.Field.FloorY())
	vector.StrokeLine(screen, 0, floor-1, float32(s.Field.Width), floor-1, 2, colorFloor, true)

	t := s.Target
	vector.DrawFilledRect(screen, float32(t.Position.X), float32(t.Position.Y), float32(t.Width), float32(t.Height), colorRim, true)

	b := level.Backboard(t)
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), colorBoard, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1, colorLine, true)

	// Strands, then top and bottom cross lines between neighbours
	net := level.NetPoints(t)
	for i := 0; i+1 < len(net); i += 2 {
		strokeVec(screen, net[i], net[i+1], colorNet)
		if i+3 < len(net) {
			strokeVec(screen, net[i], net[i+2], colorNet)
			strokeVec(screen, net[i+1], net[i+3], colorNet)
		}
	}

	p := s.Projectile.Position
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(s.Field.BallRadius), colorBall, true)

	if !s.Projectile.InFlight {
		end := p.Add(vmath.FromPolar(parameter.AngleIndicatorLength, float64(s.Aim.AngleDegrees)))
		strokeVec(screen, p, end, colorLine)
	}
}

func strokeVec(screen *ebiten.Image, a, b vmath.Vec2, clr color.Color) {
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, clr, true)
}

func (g *Game) drawHUD(screen *ebiten.Image, v session.View) {
	power := float32(v.State.Aim.Power) / parameter.PowerMax * parameter.PowerMeterWidth
	vector.DrawFilledRect(screen, parameter.PowerMeterX, parameter.PowerMeterY, power, parameter.PowerMeterHeight, colorPower, true)
	vector.StrokeRect(screen, parameter.PowerMeterX, parameter.PowerMeterY, parameter.PowerMeterWidth, parameter.PowerMeterHeight, 2, colorLine, true)

	for i, line := range session.HUDLines(v) {
		ebitenutil.DebugPrintAt(screen, line, 10, 80+i*lineHeight)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Angle: %d", v.State.Aim.AngleDegrees), 10, 80+3*lineHeight)
	if v.Muted {
		ebitenutil.DebugPrintAt(screen, "[muted]", 10, 80+4*lineHeight)
	}
	for i, line := range session.Instructions {
		ebitenutil.DebugPrintAt(screen, line, int(g.field.Width)-200, 10+i*lineHeight)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image, v session.View) {
	g.printCentered(screen, session.MenuTitle, 100)
	for i, line := range session.MenuLines(v) {
		g.printCentered(screen, line, 200+i*2*lineHeight)
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image, v session.View) {
	g.printCentered(screen, session.GameOverText, 200)
	g.printCentered(screen, session.FinalScoreLine(v), 250)
	g.printCentered(screen, session.ReturnHint, 300)
}

// printCentered assumes the 6px DebugPrint glyph width
func (g *Game) printCentered(screen *ebiten.Image, text string, y int) {
	x := (int(g.field.Width) - len(text)*6) / 2
	ebitenutil.DebugPrintAt(screen, text, max(x, 0), y)
}
