package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"stocksense/internal/dashboard"
	"stocksense/internal/monitor"
	"stocksense/internal/scheduler"

	"github.com/google/subcommands"
)

const (
	marketCheckInterval = time.Minute
	stopTimeout         = 5 * time.Second
)

type monitorCmd struct {
	ticks    int
	interval time.Duration
}

func (*monitorCmd) Name() string     { return "monitor" }
func (*monitorCmd) Synopsis() string { return "watch the live algorithm metrics" }
func (*monitorCmd) Usage() string {
	return `monitor [-ticks <n>] [-interval <duration>]

  Refreshes the algorithm metrics on a timer and prints them after every
  refresh, with the market session status checked once a minute in the
  configured timezone. The interval defaults to the configured refresh interval; with
  manual refresh the ticks run back to back.
`
}

func (c *monitorCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.ticks, "ticks", 3, "Number of refreshes to show")
	f.DurationVar(&c.interval, "interval", 0, "Refresh interval (default from config)")
}

// notifyingJob signals after every run of the wrapped job.
type notifyingJob struct {
	scheduler.Job
	done chan<- struct{}
}

func (j notifyingJob) Run() error {
	err := j.Job.Run()
	select {
	case j.done <- struct{}{}:
	default:
	}
	return err
}

func (c *monitorCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticks < 1 {
		fmt.Fprintln(os.Stderr, "Error: -ticks must be at least 1.")
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	live := monitor.NewLive(a.synth.Source(), nil, a.log)
	loc := a.cfg.Location()
	market := monitor.NewMarketWatch(func() time.Time { return time.Now().In(loc) }, a.log)
	sched := scheduler.New(a.log)
	if err := sched.RunNow(market); err != nil {
		fmt.Fprintf(os.Stderr, "Error checking market status: %v\n", err)
		return subcommands.ExitFailure
	}

	interval := c.interval
	if interval == 0 {
		interval = a.cfg.Refresh()
	}

	if interval <= 0 {
		for i := 0; i < c.ticks; i++ {
			if err := sched.RunNow(live); err != nil {
				fmt.Fprintf(os.Stderr, "Error refreshing metrics: %v\n", err)
				return subcommands.ExitFailure
			}
			if err := sched.RunNow(market); err != nil {
				fmt.Fprintf(os.Stderr, "Error checking market status: %v\n", err)
				return subcommands.ExitFailure
			}
			printMarkdown(dashboard.MonitorMarkdown(dashboard.MonitorSnapshot(live, market)))
		}
		return subcommands.ExitSuccess
	}

	done := make(chan struct{}, 1)
	if err := sched.Every(interval, notifyingJob{Job: live, done: done}); err != nil {
		fmt.Fprintf(os.Stderr, "Error scheduling refresh: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := sched.Every(marketCheckInterval, market); err != nil {
		fmt.Fprintf(os.Stderr, "Error scheduling market check: %v\n", err)
		return subcommands.ExitFailure
	}
	sched.Start()
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
		defer cancel()
		if err := sched.Stop(stopCtx); err != nil {
			a.log.Warn().Err(err).Msg("Refreshes still running at exit")
		}
	}()

	printMarkdown(dashboard.MonitorMarkdown(dashboard.MonitorSnapshot(live, market)))
	for shown := 0; shown < c.ticks; shown++ {
		select {
		case <-done:
			printMarkdown(dashboard.MonitorMarkdown(dashboard.MonitorSnapshot(live, market)))
		case <-ctx.Done():
			return subcommands.ExitSuccess
		}
	}
	return subcommands.ExitSuccess
}
