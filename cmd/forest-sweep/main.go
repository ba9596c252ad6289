package main

import (
	"flag"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"forest-ca/internal/record"
	"forest-ca/internal/sims/wildfire"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*l = append(*l, v)
	return nil
}

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*l = append(*l, v)
	return nil
}

func main() {
	size := flag.Int("size", 48, "field side length")
	ticks := flag.Int("ticks", 300, "ticks to simulate per scenario")
	seeds := flag.Int("seeds", 4, "seeds per parameter combination")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "number of results to print")
	reseed := flag.Bool("reseed", false, "restart the propagation stream every tick")
	var densities floatList
	var flames intList
	flag.Var(&densities, "density", "vegetation density in [0,1] (repeatable)")
	flag.Var(&flames, "flames", "initial flame count (repeatable)")
	flag.Parse()

	if len(densities) == 0 {
		densities = floatList{0.2, 0.4, 0.6, 0.8}
	}
	if len(flames) == 0 {
		flames = intList{1, 4, 16}
	}

	base := wildfire.DefaultConfig()
	base.Size = *size
	base.ReseedPropagation = *reseed
	scenarios := record.Grid(*size, densities, flames, *seeds)

	fmt.Printf("Sweeping %d scenarios (%d workers, %d ticks)\n", len(scenarios), *workers, *ticks)
	start := time.Now()
	all := record.Sweep(base, scenarios, *ticks, *workers)
	elapsed := time.Since(start)

	failed := 0
	for _, res := range all {
		if res.Err != nil {
			failed++
			fmt.Printf("failed: %v\n", res.Err)
		}
	}
	all = all[:len(all)-failed]

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(all)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) peak=%d at tick %d burnedOut=%d final[grass=%d trees=%d empty=%d] %s\n",
			i+1, res.PeakFlames, res.PeakTick, res.BurnedOut, res.Final.Grass, res.Final.Trees, res.Final.Empty, res.Scenario)
	}
}
