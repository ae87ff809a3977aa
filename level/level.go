// Package level maps level ids to difficulty profiles and places the target for each level
package level

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/lixenwraith/hoopshot/core"
	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/vmath"
)

// ErrUnknownLevel is returned when a level id has no profile in the table
var ErrUnknownLevel = errors.New("unknown level")

// ErrInvalidProfile is returned when a profile violates its constraints
var ErrInvalidProfile = errors.New("invalid difficulty profile")

// Defaults is the three-level table the game ships with
var Defaults = map[int]core.Profile{
	1: {TargetWidth: 100, Gravity: 0.5, WindMagnitude: 0},
	2: {TargetWidth: 80, Gravity: 0.6, WindMagnitude: 0.1},
	3: {TargetWidth: 60, Gravity: 0.7, WindMagnitude: 0.2},
}

// Table is an open set of difficulty profiles keyed by positive level id
// Read-only after construction
type Table struct {
	profiles map[int]core.Profile
}

// NewTable validates and copies profiles into a table
func NewTable(profiles map[int]core.Profile) (*Table, error) {
	t := &Table{profiles: make(map[int]core.Profile, len(profiles))}
	for id, p := range profiles {
		if err := Validate(id, p); err != nil {
			return nil, err
		}
		t.profiles[id] = p
	}
	return t, nil
}

// DefaultTable returns the built-in three-level table
func DefaultTable() *Table {
	t, err := NewTable(Defaults)
	if err != nil {
		// Defaults are compile-time constants
		panic(err)
	}
	return t
}

// Validate checks a single level entry
func Validate(id int, p core.Profile) error {
	switch {
	case id < 1:
		return fmt.Errorf("%w: level id %d must be positive", ErrInvalidProfile, id)
	case !(p.TargetWidth > 0) || math.IsInf(p.TargetWidth, 0):
		return fmt.Errorf("%w: level %d target width %v", ErrInvalidProfile, id, p.TargetWidth)
	case !(p.Gravity > 0) || math.IsInf(p.Gravity, 0):
		return fmt.Errorf("%w: level %d gravity %v", ErrInvalidProfile, id, p.Gravity)
	case !(p.WindMagnitude >= 0) || math.IsInf(p.WindMagnitude, 0):
		return fmt.Errorf("%w: level %d wind %v", ErrInvalidProfile, id, p.WindMagnitude)
	}
	return nil
}

// Profile returns the profile for id
func (t *Table) Profile(id int) (core.Profile, error) {
	p, ok := t.profiles[id]
	if !ok {
		return core.Profile{}, fmt.Errorf("%w: %d", ErrUnknownLevel, id)
	}
	return p, nil
}

// Has reports whether id is configured
func (t *Table) Has(id int) bool {
	_, ok := t.profiles[id]
	return ok
}

// IDs returns configured level ids in ascending order
func (t *Table) IDs() []int {
	ids := make([]int, 0, len(t.profiles))
	for id := range t.profiles {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of configured levels
func (t *Table) Len() int {
	return len(t.profiles)
}

// Select resolves id into its profile and the target region placed for field
func (t *Table) Select(id int, field core.Playfield) (core.Profile, core.Target, error) {
	p, err := t.Profile(id)
	if err != nil {
		return core.Profile{}, core.Target{}, err
	}
	return p, TargetFor(id, p, field), nil
}

// Lift returns how far above playfield center the target sits for level id
// Grows by TargetLiftPerLevel per level and is capped to keep the band on screen
func Lift(id int, field core.Playfield) float64 {
	if id <= 1 {
		return 0
	}
	lift := parameter.TargetLiftPerLevel * float64(id-1)
	maxLift := field.Height/2 - parameter.TargetTopMargin
	if maxLift < 0 {
		maxLift = 0
	}
	return math.Min(lift, maxLift)
}

// TargetFor places the scoring band for level id
func TargetFor(id int, p core.Profile, field core.Playfield) core.Target {
	return core.Target{
		Position: vmath.Vec2{
			X: field.Width - parameter.TargetOffsetX,
			Y: field.Height/2 - Lift(id, field),
		},
		Width:  p.TargetWidth,
		Height: parameter.TargetHeight,
	}
}

// NetPoints returns the decorative net strands as top/bottom point pairs
// Even indices are strand tops on the rim line, odd indices the matching bottoms
func NetPoints(t core.Target) []vmath.Vec2 {
	points := make([]vmath.Vec2, 0, parameter.NetStrands*2)
	spacing := t.Width / parameter.NetStrands
	for i := 0; i < parameter.NetStrands; i++ {
		x := t.Position.X + parameter.NetInset + float64(i)*spacing
		points = append(points,
			vmath.Vec2{X: x, Y: t.Position.Y},
			vmath.Vec2{X: x, Y: t.Position.Y + parameter.NetDepth},
		)
	}
	return points
}

// Backboard returns the board rectangle drawn behind the rim's far edge, centered on the rim line
func Backboard(t core.Target) vmath.Rect {
	return vmath.Rect{
		X:      t.Position.X + t.Width,
		Y:      t.Position.Y - parameter.BackboardHeight/2,
		Width:  parameter.BackboardWidth,
		Height: parameter.BackboardHeight,
	}
}
