package main

import (
	"flag"
	"testing"

	"github.com/google/subcommands"
)

func TestRegister(t *testing.T) {
	fs := flag.NewFlagSet("stocksense", flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, "stocksense")
	register(commander)

	want := map[string]bool{
		"chart": false, "predict": false, "watchlist": false, "ticker": false,
		"monitor": false, "analyze": false, "export": false,
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
		if c.Synopsis() == "" || c.Usage() == "" {
			t.Errorf("%s: missing synopsis or usage", c.Name())
		}
	})
	for name, seen := range want {
		if !seen {
			t.Errorf("command %s not registered", name)
		}
	}
}

type stubJob struct{ runs int }

func (j *stubJob) Run() error   { j.runs++; return nil }
func (j *stubJob) Name() string { return "stub" }

func TestNotifyingJob(t *testing.T) {
	done := make(chan struct{}, 1)
	inner := &stubJob{}
	job := notifyingJob{Job: inner, done: done}

	if err := job.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// A second run must not block on the full channel.
	if err := job.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if inner.runs != 2 {
		t.Errorf("inner runs = %d, want 2", inner.runs)
	}
	if job.Name() != "stub" {
		t.Errorf("Name() = %q, want stub", job.Name())
	}
	select {
	case <-done:
	default:
		t.Error("expected a notification")
	}
}

func TestPredictionDays(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantPast int
		wantDays int
	}{
		{"defaults", nil, 30, 30},
		{"explicit past", []string{"-past", "5"}, 5, 30},
		{"explicit zero days", []string{"-days", "0"}, 30, 0},
		{"negative past passes through", []string{"-past", "-5"}, -5, 30},
		{"negative days passes through", []string{"-past", "3", "-days", "-1"}, 3, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &predictCmd{}
			fs := flag.NewFlagSet("predict", flag.ContinueOnError)
			cmd.SetFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			past, days := predictionDays(fs, cmd.past, cmd.days, 30, 30)
			if past != tt.wantPast || days != tt.wantDays {
				t.Errorf("predictionDays() = %d, %d, want %d, %d", past, days, tt.wantPast, tt.wantDays)
			}
		})
	}
}
