package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(20, 24, 32)
	RgbFloor      = tcell.NewRGBColor(120, 90, 60)
	RgbBall       = tcell.NewRGBColor(255, 140, 0)
	RgbRim        = tcell.NewRGBColor(230, 40, 40)
	RgbBackboard  = tcell.NewRGBColor(235, 235, 235)
	RgbNet        = tcell.NewRGBColor(200, 200, 200)
	RgbAim        = tcell.NewRGBColor(140, 140, 160)
	RgbText       = tcell.NewRGBColor(220, 220, 220)
	RgbLevel      = tcell.NewRGBColor(80, 200, 120)
	RgbPower      = tcell.NewRGBColor(230, 40, 40)
	RgbAlert      = tcell.NewRGBColor(255, 60, 60)
)

const (
	runeBall      = 'O'
	runeRim       = '='
	runeBackboard = '█'
	runeNet       = ':'
	runeFloor     = '▀'
	runeAim       = '·'
	runePowerOn   = '█'
	runePowerOff  = '░'
)
