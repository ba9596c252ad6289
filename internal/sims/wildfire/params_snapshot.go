package wildfire

import (
	"fmt"
	"strconv"

	"forest-ca/internal/core"
	"forest-ca/pkg/forest"
)

// Parameters reports the seeding configuration and the live census.
func (w *World) Parameters() core.ParameterSnapshot {
	engine := "local"
	if w.cfg.Remote != "" {
		engine = w.cfg.Remote
	}
	status := "ok"
	if w.lastErr != nil {
		status = w.lastErr.Error()
	}
	groups := []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam("size", "Field size", w.cfg.Size),
				intParam("grass", "Grass", w.cfg.Grass),
				intParam("trees", "Trees", w.cfg.Trees),
				intParam("flames", "Flames", w.cfg.Flames),
				int64Param("seed", "Seed", w.cfg.Seed),
				boolParam("reseed_propagation", "Reseed propagation", w.cfg.ReseedPropagation),
			},
			Summary: "Applied on the next reset.",
		},
		{
			Name: "Census",
			Params: []core.Parameter{
				intParam("tick", "Tick", w.tick),
				censusParam("census_grass", "Grass", w.census, forest.Grass),
				censusParam("census_trees", "Trees", w.census, forest.Tree),
				censusParam("census_flames", "Flames", w.census, forest.Flame),
			},
		},
		{
			Name: "Engine",
			Params: []core.Parameter{
				textParam("engine", "Engine", engine),
				textParam("status", "Status", status),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the seeding values adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	capacity := w.cfg.Size * w.cfg.Size
	return []core.ParameterControl{
		{Key: "size", Label: "Field size", Step: 1, Min: 1, Max: MaxSize, HasMin: true, HasMax: true},
		{Key: "grass", Label: "Grass", Step: 50, Min: 0, Max: capacity, HasMin: true, HasMax: true},
		{Key: "trees", Label: "Trees", Step: 50, Min: 0, Max: capacity, HasMin: true, HasMax: true},
		{Key: "flames", Label: "Flames", Step: 1, Min: 0, Max: capacity, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates a seeding value. Counts that would not fit the
// field are rejected; shrinking the field trims the counts.
func (w *World) SetIntParameter(key string, value int) bool {
	if value < 0 {
		return false
	}
	next := w.cfg
	switch key {
	case "size":
		if value < 1 || value > MaxSize {
			return false
		}
		next.Size = value
		next.fitCapacity()
	case "grass":
		next.Grass = value
	case "trees":
		next.Trees = value
	case "flames":
		next.Flames = value
	default:
		return false
	}
	seeding := forest.Seeding{Size: next.Size, Grass: next.Grass, Trees: next.Trees, Flames: next.Flames}
	if seeding.Check() != nil {
		return false
	}
	w.cfg = next
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}

func censusParam(key, label string, c forest.Counts, t forest.CellType) core.Parameter {
	return textParam(key, label, fmt.Sprintf("%d (%.1f%%)", c.Of(t), c.Percent(t)))
}
