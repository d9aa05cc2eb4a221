// Command ca-kernel runs a cellular-automaton simulation kernel as a
// standalone process: flag/context/signal.Notify startup, a YAML rule
// file loaded via internal/config, and a periodic stats line rendered
// with go-pretty's table writer.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Mahdi-s/games-of-life/internal/config"
	"github.com/Mahdi-s/games-of-life/internal/node"
	"github.com/Mahdi-s/games-of-life/internal/rule"
	"github.com/Mahdi-s/games-of-life/internal/types"
)

func main() {
	width := flag.Int("width", 80, "grid width in cells")
	height := flag.Int("height", 40, "grid height in cells")
	httpPort := flag.Int("http-port", 8080, "HTTP API port")
	ruleFile := flag.String("rule-file", "", "path to a YAML rule spec (overrides the B/S flags below)")
	birth := flag.String("birth", "3", "comma-separated birth counts (B/S notation)")
	survive := flag.String("survive", "2,3", "comma-separated survive counts (B/S notation)")
	numStates := flag.Int("num-states", 2, "total states including decay chain (2 disables Generations)")
	neighborhood := flag.String("neighborhood", string(types.Moore), "moore|vonNeumann|extendedMoore|hexagonal|extendedHexagonal")
	boundary := flag.String("boundary", string(types.Torus), "plane|cylinderX|cylinderY|torus|mobiusX|mobiusY|kleinX|kleinY|projectivePlane")
	seedDensity := flag.Float64("seed-density", 0.15, "initial random-seed density in [0,1]")
	stats := flag.Bool("stats", false, "print a stats table to stdout once per second while generations advance")

	flag.Parse()

	r, err := loadRule(*ruleFile, *birth, *survive, *numStates, *neighborhood, *boundary)
	if err != nil {
		log.Fatalf("ca-kernel: invalid rule: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess, err := node.New(&node.Config{
		Width:    *width,
		Height:   *height,
		HTTPPort: *httpPort,
		Rule:     r,
	})
	if err != nil {
		log.Fatalf("ca-kernel: failed to create session: %v", err)
	}

	if err := sess.SeedRandom(*seedDensity, *numStates > 2); err != nil {
		log.Fatalf("ca-kernel: failed to seed grid: %v", err)
	}

	log.Printf("starting ca-kernel %s on %dx%d grid, http:%d neighborhood=%s boundary=%s",
		sess.ID(), *width, *height, *httpPort, *neighborhood, *boundary)

	if err := sess.Start(ctx); err != nil {
		log.Fatalf("ca-kernel: failed to start session: %v", err)
	}

	if *stats {
		go printStats(sess)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("shutting down...")
	cancel()
	sess.Stop()
	log.Println("shutdown complete")
}

func loadRule(path, birth, survive string, numStates int, neighborhood, boundary string) (*rule.Rule, error) {
	if path != "" {
		return config.LoadRuleFile(path)
	}

	rf := config.RuleFile{
		Birth:        parseCounts(birth),
		Survive:      parseCounts(survive),
		NumStates:    numStates,
		Neighborhood: neighborhood,
		Boundary:     boundary,
		Vitality: []config.AnchorFile{
			{X: 0, Y: 0},
			{X: 1, Y: 1},
		},
	}
	return rf.Build()
}

func parseCounts(csv string) []int {
	var out []int
	cur := 0
	has := false
	flush := func() {
		if has {
			out = append(out, cur)
		}
		cur, has = 0, false
	}
	for _, r := range csv {
		switch {
		case r >= '0' && r <= '9':
			cur = cur*10 + int(r-'0')
			has = true
		case r == ',':
			flush()
		}
	}
	flush()
	return out
}

func printStats(sess interface {
	ID() string
	Generation() int
	AliveCount() int
}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	lastGen := -1
	for range ticker.C {
		gen := sess.Generation()
		if gen == lastGen {
			continue
		}
		lastGen = gen

		t := table.NewWriter()
		t.SetTitle("ca-kernel " + sess.ID())
		t.AppendHeader(table.Row{"generation", "alive"})
		t.AppendRow(table.Row{gen, sess.AliveCount()})
		t.SetOutputMirror(os.Stdout)
		t.Render()
	}
}
