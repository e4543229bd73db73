package patterns

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Parse reads a text grid, as produced by World.String, into live coordinates.
// Tokens may be space separated ("- # -") or packed ("-#-"); '#' and 'O' are live,
// '-' and '.' are dead. Column index is x and the bottom row is y = 0.
func Parse(text string) ([]model.Coordinate, error) {
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) == 1 && len(tokens[0]) > 1 {
			tokens = strings.Split(tokens[0], "")
		}
		rows = append(rows, tokens)
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrEmptyPattern, "[Parse] empty input")
	}

	live := model.NewCoordinateSet()
	width := len(rows[0])
	for r, row := range rows {
		if len(row) != width {
			return nil, errors.Errorf("[Parse] row %d has %d columns, expected %d", r+1, len(row), width)
		}
		y := len(rows) - 1 - r
		for x, token := range row {
			switch token {
			case "#", "O":
				live.Put(model.Coordinate{X: x, Y: y})
			case "-", ".":
			default:
				return nil, errors.Errorf("[Parse] unexpected token %q at row %d column %d", token, r+1, x+1)
			}
		}
	}
	if live.Size() == 0 {
		return nil, errors.Wrap(ErrEmptyPattern, "[Parse] no live cells")
	}
	return live.Sorted(), nil
}

// LoadFile parses the text grid stored at filename
func LoadFile(filename string) ([]model.Coordinate, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}

	coords, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to parse file: %+v", filename)
	}
	return coords, nil
}
