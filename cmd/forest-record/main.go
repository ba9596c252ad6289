package main

import (
	"flag"
	"log"

	"forest-ca/internal/record"
)

func main() {
	cfg := record.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	res, err := record.Run(cfg)
	if err != nil {
		log.Fatal(err)
	}
	last := res.Series[len(res.Series)-1]
	log.Printf("after %d ticks: grass=%d trees=%d flames=%d empty=%d",
		cfg.Ticks, last.Grass, last.Trees, last.Flames, last.Empty)
}
