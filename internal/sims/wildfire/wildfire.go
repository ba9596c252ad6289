package wildfire

import (
	"log"

	"forest-ca/internal/client"
	"forest-ca/internal/core"
	"forest-ca/pkg/forest"
)

// World adapts a forest field to the core.Sim contract.
type World struct {
	cfg    Config
	engine Engine

	field   forest.Field
	census  forest.Counts
	display *core.ByteGrid
	tick    int
	lastErr error
}

// New returns a wildfire simulation with the default configuration.
func New() *World {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a world configured from the provided options. A
// configured Remote URL selects the HTTP engine.
func NewWithConfig(cfg Config) *World {
	cfg.fitCapacity()
	var engine Engine = NewLocalEngine(cfg.ReseedPropagation)
	if cfg.Remote != "" {
		engine = NewRemoteEngine(client.New(cfg.Remote), cfg.RemoteTimeout)
	}
	return NewWithEngine(cfg, engine)
}

// NewWithEngine returns a world that uses engine to generate and step.
func NewWithEngine(cfg Config, engine Engine) *World {
	cfg.fitCapacity()
	w := &World{
		cfg:     cfg,
		engine:  engine,
		display: core.NewByteGrid(cfg.Size, cfg.Size),
	}
	w.field = forest.EmptyField(cfg.Size)
	w.refresh()
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "wildfire" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size {
	s := w.field.Side()
	return core.Size{W: s, H: s}
}

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Field exposes the current field.
func (w *World) Field() forest.Field { return w.field }

// Census returns the cell counts of the current field.
func (w *World) Census() forest.Counts { return w.census }

// Tick returns the number of ticks since the last reset.
func (w *World) Tick() int { return w.tick }

// Err returns the last engine error, if any.
func (w *World) Err() error { return w.lastErr }

// Reset builds a new random field. A zero seed falls back to the configured
// one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	f, err := w.engine.Generate(forest.Seeding{
		Size:   w.cfg.Size,
		Grass:  w.cfg.Grass,
		Trees:  w.cfg.Trees,
		Flames: w.cfg.Flames,
		Seed:   uint64(effective),
	})
	if err != nil {
		w.fail("reset", err)
		return
	}
	w.lastErr = nil
	w.field = f
	w.tick = 0
	w.refresh()
}

// Step advances the field by one tick. Engine failures leave the field as it
// was.
func (w *World) Step() {
	if len(w.field) == 0 {
		return
	}
	next, err := w.engine.Advance(w.field)
	if err != nil {
		w.fail("step", err)
		return
	}
	w.lastErr = nil
	w.field = next
	w.tick++
	w.refresh()
}

func (w *World) fail(op string, err error) {
	if w.lastErr == nil || w.lastErr.Error() != err.Error() {
		log.Printf("wildfire: %s: %v", op, err)
	}
	w.lastErr = err
}

func (w *World) refresh() {
	w.census = forest.Census(w.field)
	w.rebuildDisplay()
}

func init() {
	core.Register("wildfire", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
