// The strut showcase demonstrates idiomatic patterns for building
// scrollable UIs with strut: a virtualized list with ten thousand
// rows, nested scroll regions, kinetic scrolling, and programmatic
// scroll targets.
package main

import (
	"flag"
	"log"

	"github.com/go-strut/strut/pkg/platform"
)

func main() {
	configPath := flag.String("config", "strut.toml", "path to the config file")
	flag.Parse()

	cfg, err := platform.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Window.Title = "strut showcase"

	host := platform.NewHost(cfg, NewShowcase().Build)
	if err := host.Run(); err != nil {
		log.Fatalf("showcase: %v", err)
	}
}
