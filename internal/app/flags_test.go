package app

import (
	"flag"
	"testing"
)

func TestBindParsesOptions(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-scale", "4",
		"-set", "size=30",
		"-set", "grass = 100",
		"-set", "broken",
		"-set", "size=40",
		"-remote", "http://127.0.0.1:3030",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scale != 4 || cfg.Sim != "wildfire" {
		t.Fatalf("config = %+v", cfg)
	}
	opts := cfg.SimOptions()
	if opts["size"] != "40" || opts["grass"] != "100" || opts["remote"] != "http://127.0.0.1:3030" {
		t.Fatalf("options = %v", opts)
	}
	if _, ok := opts["broken"]; ok {
		t.Fatal("entries without '=' should be ignored")
	}
}
