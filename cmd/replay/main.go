package main

import (
	"flag"
	"log"
)

func main() {
	verbose := flag.Bool("v", false, "log every tick instead of state changes only")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: replay [-v] script.yaml")
	}

	script, err := LoadScript(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	frames, err := Run(script, *verbose)
	if err != nil {
		log.Fatal(err)
	}
	if len(frames) > 0 {
		f := frames[len(frames)-1]
		log.Printf("done after %d ticks: pos=(%.2f, %.2f) %s/%s alive=%v", len(frames), f.X, f.Y, f.Primary, f.Secondary, f.Alive)
	}
}
