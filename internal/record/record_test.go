package record

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"forest-ca/pkg/forest"
)

func smallConfig(dir string) *Config {
	cfg := NewConfig()
	cfg.World.Size = 12
	cfg.World.Grass = 40
	cfg.World.Trees = 30
	cfg.World.Flames = 6
	cfg.World.Seed = 3
	cfg.Ticks = 5
	cfg.Scale = 2
	cfg.FPS = 5
	cfg.ChartPath = filepath.Join(dir, "population.png")
	cfg.VideoPath = filepath.Join(dir, "run.avi")
	cfg.CSVPath = filepath.Join(dir, "census.csv")
	return cfg
}

func TestRunWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg := smallConfig(dir)
	res, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(res.Series) != cfg.Ticks+1 {
		t.Fatalf("series length = %d, want %d", len(res.Series), cfg.Ticks+1)
	}
	first := res.Series[0]
	if first.Grass != 40 || first.Trees != 30 || first.Flames != 6 || first.Total != 144 {
		t.Fatalf("initial census = %+v", first)
	}
	if got := forest.Census(res.Final); got != res.Series[len(res.Series)-1] {
		t.Fatalf("final census %+v does not match last sample %+v", got, res.Series[len(res.Series)-1])
	}

	png, err := os.ReadFile(cfg.ChartPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatal("chart is not a PNG")
	}
	avi, err := os.ReadFile(cfg.VideoPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(avi, []byte("RIFF")) {
		t.Fatal("video is not a RIFF container")
	}
	csv, err := os.ReadFile(cfg.CSVPath)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(csv)), "\n")
	if len(lines) != cfg.Ticks+2 {
		t.Fatalf("csv has %d lines, want %d", len(lines), cfg.Ticks+2)
	}
	if lines[1] != "0,68,40,30,6" {
		t.Fatalf("first csv row = %q", lines[1])
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a := smallConfig(t.TempDir())
	b := smallConfig(t.TempDir())
	ra, err := Run(a)
	if err != nil {
		t.Fatal(err)
	}
	rb, err := Run(b)
	if err != nil {
		t.Fatal(err)
	}
	for i := range ra.Series {
		if ra.Series[i] != rb.Series[i] {
			t.Fatalf("tick %d: %+v vs %+v", i, ra.Series[i], rb.Series[i])
		}
	}
}

func TestRunSkipsEmptyPaths(t *testing.T) {
	dir := t.TempDir()
	cfg := smallConfig(dir)
	cfg.ChartPath, cfg.VideoPath, cfg.CSVPath = "", "", ""
	if _, err := Run(cfg); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no outputs, found %d", len(entries))
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	cases := map[string]func(*Config){
		"zero ticks": func(c *Config) { c.Ticks = 0 },
		"zero size":  func(c *Config) { c.World.Size = 0 },
		"overfull":   func(c *Config) { c.World.Grass = 200 },
	}
	for name, mutate := range cases {
		cfg := smallConfig(t.TempDir())
		mutate(cfg)
		if _, err := Run(cfg); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestWriteChartNeedsTwoPoints(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteChart(&buf, []forest.Counts{{Total: 4}}); err == nil {
		t.Fatal("expected error for a single sample")
	}
}
