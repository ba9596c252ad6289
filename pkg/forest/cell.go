package forest

import "fmt"

// CellType enumerates the states a cell can be in.
type CellType uint8

const (
	Empty CellType = iota
	Grass
	Tree
	Flame
)

// CellTypes lists every cell type in declaration order.
var CellTypes = [...]CellType{Empty, Grass, Tree, Flame}

var cellTypeNames = [...]string{
	Empty: "Empty",
	Grass: "Grass",
	Tree:  "Tree",
	Flame: "Flame",
}

// String returns the wire name of the type.
func (t CellType) String() string {
	if int(t) < len(cellTypeNames) {
		return cellTypeNames[t]
	}
	return fmt.Sprintf("CellType(%d)", uint8(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t CellType) MarshalText() ([]byte, error) {
	if int(t) >= len(cellTypeNames) {
		return nil, fmt.Errorf("forest: unknown cell type %d", uint8(t))
	}
	return []byte(cellTypeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *CellType) UnmarshalText(b []byte) error {
	for i, name := range cellTypeNames {
		if name == string(b) {
			*t = CellType(i)
			return nil
		}
	}
	return fmt.Errorf("forest: unknown cell type %q", b)
}

// Cell is a single grid value. It has no identity beyond its position in a
// Field.
type Cell struct {
	Age         int      `json:"age"`
	Type        CellType `json:"cell_type"`
	Propagation uint8    `json:"propagation"`
}

// NewCell returns the default cell: empty, age zero and eligible to spread.
func NewCell() Cell {
	return Cell{Type: Empty, Propagation: 1}
}

// CanSpread reports whether the cell is old enough and eligible to attempt a
// spread this tick.
func (c Cell) CanSpread() bool {
	return c.Age >= minSpreadAge && c.Propagation == 1
}

// step ages the cell by one tick. Over-aged flames burn out and become
// permanently inert.
func (c Cell) step() Cell {
	if c.Type == Flame && c.Age > maxFlameAge {
		return Cell{Type: Empty}
	}
	c.Age++
	return c
}

const (
	maxFlameAge  = 15
	minSpreadAge = 8
)
