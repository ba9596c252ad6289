package record

import (
	"fmt"
	"sort"
	"sync"

	"forest-ca/internal/sims/wildfire"
	"forest-ca/pkg/forest"
)

// Scenario is one initial seeding evaluated by Sweep.
type Scenario struct {
	Grass  int
	Trees  int
	Flames int
	Seed   int64
}

func (s Scenario) String() string {
	return fmt.Sprintf("grass=%d trees=%d flames=%d seed=%d", s.Grass, s.Trees, s.Flames, s.Seed)
}

// Outcome summarises a scenario run. BurnedOut is the first tick with no
// flames left, or -1 when the fire outlived the run. Err is set when the
// scenario could not be seeded or stepped; the other fields then describe
// only the ticks that completed.
type Outcome struct {
	Scenario   Scenario
	PeakFlames int
	PeakTick   int
	BurnedOut  int
	Final      forest.Counts
	Err        error
}

// Grid builds the scenario cross product. Densities are fractions of the
// field split evenly between grass and trees. Densities outside [0,1],
// negative flame counts and combinations that overfill the field are skipped.
func Grid(size int, densities []float64, flames []int, seeds int) []Scenario {
	total := size * size
	var out []Scenario
	for _, d := range densities {
		if !(d >= 0 && d <= 1) {
			continue
		}
		veg := int(d * float64(total))
		grass := veg / 2
		trees := veg - grass
		for _, fl := range flames {
			if fl < 0 || fl > total-veg {
				continue
			}
			for s := 0; s < seeds; s++ {
				out = append(out, Scenario{Grass: grass, Trees: trees, Flames: fl, Seed: int64(s + 1)})
			}
		}
	}
	return out
}

// Sweep evaluates every scenario for ticks steps on a pool of workers and
// returns the outcomes ordered by peak flame count, highest first. Failed
// scenarios sort after every successful one.
func Sweep(base wildfire.Config, scenarios []Scenario, ticks, workers int) []Outcome {
	if workers < 1 {
		workers = 1
	}
	type indexed struct {
		idx int
		out Outcome
	}
	jobs := make(chan int)
	results := make(chan indexed)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results <- indexed{idx: idx, out: runScenario(base, scenarios[idx], ticks)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for idx := range scenarios {
			jobs <- idx
		}
		close(jobs)
	}()

	all := make([]Outcome, len(scenarios))
	for res := range results {
		all[res.idx] = res.out
	}
	sort.SliceStable(all, func(i, j int) bool {
		if (all[i].Err == nil) != (all[j].Err == nil) {
			return all[i].Err == nil
		}
		return all[i].PeakFlames > all[j].PeakFlames
	})
	return all
}

func runScenario(base wildfire.Config, sc Scenario, ticks int) Outcome {
	out := Outcome{Scenario: sc, BurnedOut: -1}
	seeding := forest.Seeding{Size: base.Size, Grass: sc.Grass, Trees: sc.Trees, Flames: sc.Flames}
	if err := seeding.Check(); err != nil {
		out.Err = fmt.Errorf("%s: %w", sc, err)
		return out
	}

	cfg := base
	cfg.Grass = sc.Grass
	cfg.Trees = sc.Trees
	cfg.Flames = sc.Flames
	world := wildfire.NewWithConfig(cfg)
	world.Reset(sc.Seed)
	if err := world.Err(); err != nil {
		out.Err = fmt.Errorf("%s: reset: %w", sc, err)
		return out
	}

	for tick := 0; tick <= ticks; tick++ {
		if tick > 0 {
			world.Step()
			if err := world.Err(); err != nil {
				out.Err = fmt.Errorf("%s: tick %d: %w", sc, tick, err)
				break
			}
		}
		c := world.Census()
		if c.Flames > out.PeakFlames {
			out.PeakFlames = c.Flames
			out.PeakTick = tick
		}
		if c.Flames == 0 && out.BurnedOut < 0 {
			out.BurnedOut = tick
		}
	}
	out.Final = world.Census()
	return out
}
