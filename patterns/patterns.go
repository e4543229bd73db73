// Package patterns holds named starting patterns as plain coordinate data.
// Coordinates use the plotting orientation of model.World: y grows upwards.
package patterns

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

var (
	ErrUnknownPattern = errors.New("unknown pattern")
	ErrEmptyPattern   = errors.New("pattern has no live cells")
)

// Template is a named seeding pattern. After Period generations the pattern
// is back to Coordinates translated by Shift.
type Template struct {
	Name        string
	Descr       string
	Coordinates []model.Coordinate
	Period      int
	Shift       model.Coordinate
}

// At returns the template's coordinates translated by offset
func (t Template) At(offset model.Coordinate) []model.Coordinate {
	return Translate(t.Coordinates, offset)
}

var (
	Block = Template{
		Name:  "block",
		Descr: "2x2 still life",
		Coordinates: []model.Coordinate{
			{X: 1, Y: 1}, {X: 1, Y: 2},
			{X: 2, Y: 1}, {X: 2, Y: 2},
		},
		Period: 1,
	}

	Beehive = Template{
		Name:  "beehive",
		Descr: "six cell still life",
		Coordinates: []model.Coordinate{
			{X: 1, Y: 3}, {X: 1, Y: 4},
			{X: 2, Y: 2}, {X: 2, Y: 5},
			{X: 3, Y: 3}, {X: 3, Y: 4},
		},
		Period: 1,
	}

	Boat = Template{
		Name:  "boat",
		Descr: "five cell still life",
		Coordinates: []model.Coordinate{
			{X: 1, Y: 3},
			{X: 2, Y: 2}, {X: 2, Y: 4},
			{X: 3, Y: 2}, {X: 3, Y: 3},
		},
		Period: 1,
	}

	// Blinker is the horizontal phase, BlinkerVertical the other one
	Blinker = Template{
		Name:        "blinker",
		Descr:       "period 2 oscillator",
		Coordinates: []model.Coordinate{{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}},
		Period:      2,
	}

	BlinkerVertical = Template{
		Name:        "blinker-vertical",
		Descr:       "second phase of the blinker",
		Coordinates: []model.Coordinate{{X: 3, Y: 2}, {X: 3, Y: 3}, {X: 3, Y: 4}},
		Period:      2,
	}

	Toad = Template{
		Name:  "toad",
		Descr: "period 2 oscillator",
		Coordinates: []model.Coordinate{
			{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2},
			{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1},
		},
		Period: 2,
	}

	Pulsar = Template{
		Name:        "pulsar",
		Descr:       "period 3 oscillator",
		Coordinates: pulsar(),
		Period:      3,
	}

	Glider = Template{
		Name:  "glider",
		Descr: "spaceship moving one cell right and down every 4 generations",
		Coordinates: []model.Coordinate{
			{X: 1, Y: 2},
			{X: 2, Y: 1},
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		},
		Period: 4,
		Shift:  model.Coordinate{X: 1, Y: -1},
	}
)

var templates = map[string]Template{}

func init() {
	for _, t := range []Template{Block, Beehive, Boat, Blinker, BlinkerVertical, Toad, Pulsar, Glider} {
		Register(t)
	}
}

// Register adds tmpl under its name, replacing any previous template of that name
func Register(tmpl Template) {
	if tmpl.Name == "" {
		return
	}
	templates[tmpl.Name] = tmpl
}

// Lookup returns the template registered under name
func Lookup(name string) (Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return Template{}, errors.Wrapf(ErrUnknownPattern, "[Lookup] %q", name)
	}
	return tmpl, nil
}

// Names returns the registered template names in alphabetical order
func Names() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Translate returns coords shifted by offset
func Translate(coords []model.Coordinate, offset model.Coordinate) []model.Coordinate {
	moved := make([]model.Coordinate, len(coords))
	for i, c := range coords {
		moved[i] = c.Translate(offset)
	}
	return moved
}

// pulsar builds the 48 cells of the pulsar in a 13x13 box
func pulsar() []model.Coordinate {
	var (
		coords []model.Coordinate
		arms   = []int{2, 3, 4, 8, 9, 10}
		lines  = []int{0, 5, 7, 12}
	)
	for _, line := range lines {
		for _, arm := range arms {
			coords = append(coords,
				model.Coordinate{X: arm, Y: line},
				model.Coordinate{X: line, Y: arm},
			)
		}
	}
	return coords
}
