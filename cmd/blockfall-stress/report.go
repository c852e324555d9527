package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Name     string
	Duration time.Duration
	Sessions int
	Seed     uint64
	Pulse    bool
	Step     time.Duration

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Game           GameTotals
	Violations     []Violation
	ViolationCount int
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// GameTotals sums session counters across every game in the run.
type GameTotals struct {
	Locked    int
	Clears    [4]int
	TopOuts   int
	HardDrops int
	Restarts  int
	BestScore uint64
	BestLevel int
}

// Violation records a broken invariant and where it happened.
type Violation struct {
	Session int
	Tick    int64
	Message string
}

// maxRecordedViolations bounds the report; ViolationCount keeps the full total.
const maxRecordedViolations = 20

func (r *Report) addViolation(v Violation) {
	r.ViolationCount++
	if len(r.Violations) < maxRecordedViolations {
		r.Violations = append(r.Violations, v)
	}
}

// Passed reports whether the run saw no violations.
func (r *Report) Passed() bool {
	return r.ViolationCount == 0
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report: {{.Name}}

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Sessions:** {{.Sessions}}
- **Seed:** {{.Seed}}
- **Pulse Gravity:** {{.Pulse}}
- **Simulated Step:** {{.Step}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Tick):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
  - **P99:** {{.UpdateTime.P99}}

## Gameplay
- **Pieces Locked:** {{.Game.Locked}}
- **Clears (1/2/3/4):** {{index .Game.Clears 0}}/{{index .Game.Clears 1}}/{{index .Game.Clears 2}}/{{index .Game.Clears 3}}
- **Top Outs:** {{.Game.TopOuts}}
- **Hard Drops:** {{.Game.HardDrops}}
- **Restarts:** {{.Game.Restarts}}
- **Best Score:** {{.Game.BestScore}} (best level {{.Game.BestLevel}})

## Invariants
{{if .Violations}}- **Violations:** {{.ViolationCount}}
{{range .Violations}}  - session {{.Session}} tick {{.Tick}}: {{.Message}}
{{end}}{{else}}- All invariants held.
{{end}}
## Memory Usage (MiB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc)}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}}
- Sys Memory:     {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end) -> delta: {{mb (bsub .MemStatsEnd.Sys .MemStatsStart.Sys)}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
