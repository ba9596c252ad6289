package forest

// Counts tallies cells by type.
type Counts struct {
	Empty  int `json:"empty"`
	Grass  int `json:"grass"`
	Trees  int `json:"trees"`
	Flames int `json:"flames"`
	Total  int `json:"total"`
}

// Census counts the cells of each type in f.
func Census(f Field) Counts {
	c := Counts{Total: len(f)}
	for _, cell := range f {
		switch cell.Type {
		case Empty:
			c.Empty++
		case Grass:
			c.Grass++
		case Tree:
			c.Trees++
		case Flame:
			c.Flames++
		}
	}
	return c
}

// Of returns the count for a single type.
func (c Counts) Of(t CellType) int {
	switch t {
	case Grass:
		return c.Grass
	case Tree:
		return c.Trees
	case Flame:
		return c.Flames
	default:
		return c.Empty
	}
}

// Percent returns the share of the field taken by t, in percent.
func (c Counts) Percent(t CellType) float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Of(t)) / float64(c.Total) * 100
}
