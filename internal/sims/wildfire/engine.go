package wildfire

import (
	"context"
	"time"

	"forest-ca/internal/client"
	pcore "forest-ca/pkg/core"
	"forest-ca/pkg/forest"
)

// Engine produces and advances fields.
type Engine interface {
	Generate(s forest.Seeding) (forest.Field, error)
	Advance(f forest.Field) (forest.Field, error)
}

// LocalEngine runs the simulation in-process.
type LocalEngine struct {
	reseed bool
	rng    *pcore.RNG
}

// NewLocalEngine returns an in-process engine. With reseed set every tick
// uses forest.Step, which restarts its stream each call; otherwise one
// stream seeded at Generate time is threaded through the run.
func NewLocalEngine(reseed bool) *LocalEngine {
	return &LocalEngine{reseed: reseed}
}

// Generate builds a random field and restarts the propagation stream.
func (e *LocalEngine) Generate(s forest.Seeding) (forest.Field, error) {
	f, err := s.Field()
	if err != nil {
		return nil, err
	}
	e.rng = pcore.NewRNG(s.Seed)
	return f, nil
}

// Advance steps the field by one tick.
func (e *LocalEngine) Advance(f forest.Field) (forest.Field, error) {
	if e.reseed || e.rng == nil {
		return forest.Step(f), nil
	}
	return forest.StepWith(f, e.rng), nil
}

// RemoteEngine delegates generation and stepping to a forest-server.
type RemoteEngine struct {
	client  *client.Client
	timeout time.Duration
}

// NewRemoteEngine wraps c. Each request is bounded by timeout.
func NewRemoteEngine(c *client.Client, timeout time.Duration) *RemoteEngine {
	return &RemoteEngine{client: c, timeout: timeout}
}

// Generate requests a random field from the server.
func (e *RemoteEngine) Generate(s forest.Seeding) (forest.Field, error) {
	ctx, cancel := e.context()
	defer cancel()
	return e.client.RandomField(ctx, s)
}

// Advance asks the server for the next tick.
func (e *RemoteEngine) Advance(f forest.Field) (forest.Field, error) {
	ctx, cancel := e.context()
	defer cancel()
	return e.client.Step(ctx, f)
}

func (e *RemoteEngine) context() (context.Context, context.CancelFunc) {
	if e.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), e.timeout)
}
