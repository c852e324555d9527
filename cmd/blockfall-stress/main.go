package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/fatih/color"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	sessions := flag.Int("sessions", 8, "The number of games to drive side by side.")
	seed := flag.Uint64("seed", 0, "Base seed for piece sequences and inputs (0 picks one at random).")
	pulse := flag.Bool("pulse", false, "Run every game with pulse gravity.")
	step := flag.Duration("step", time.Second/60, "Simulated time per tick.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	name := flag.String("name", "", "Name for this run (default: a random pet name).")
	flag.Parse()

	if *sessions <= 0 {
		log.Fatalf("Invalid -sessions %d: must be positive", *sessions)
	}
	if *step <= 0 {
		log.Fatalf("Invalid -step %v: must be positive", *step)
	}
	if *seed == 0 {
		*seed = rand.Uint64()
	}
	if *name == "" {
		*name = petname.Generate(2, "-")
	}

	log.Printf("Starting blockfall stress test %q...\n", *name)

	games := make([]*session, *sessions)
	for i := range games {
		games[i] = newSession(i, *seed+uint64(i), *pulse)
	}

	report := &Report{
		Name:           *name,
		Duration:       *duration,
		Sessions:       *sessions,
		Seed:           *seed,
		Pulse:          *pulse,
		Step:           *step,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d sessions for %s (seed %d)...\n", *sessions, *duration, *seed)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	dt := step.Seconds()
	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			for _, s := range games {
				updateStart := time.Now()
				violations := s.step(dt)
				updateDuration := time.Since(updateStart)

				report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
				totalUpdates++

				for _, msg := range violations {
					report.addViolation(Violation{Session: s.id, Tick: s.ticks, Message: msg})
				}
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	for _, s := range games {
		s.addTo(&report.Game)
	}
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if !report.Passed() {
		color.New(color.FgRed, color.Bold).Printf("FAIL %s: %d invariant violations\n", *name, report.ViolationCount)
		os.Exit(1)
	}
	color.New(color.FgGreen, color.Bold).Printf("PASS %s: %d ticks, no violations\n", *name, totalUpdates)

	log.Println("Stress test complete.")
}
