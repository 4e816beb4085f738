package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"stocksense/internal/analysis"
	"stocksense/internal/dashboard"

	"github.com/google/subcommands"
)

type analyzeCmd struct {
	symbol string
	kind   string
	all    bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "show a data-structure analysis card" }
func (*analyzeCmd) Usage() string {
	return `analyze [-s <symbol>] [-kind <kind> | -all]

  Shows the analysis card for one kind: binarySearchTree, hashTable,
  priorityQueue, graph, dynamicProgramming or timeComplexity.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "RELIANCE", "Stock symbol shown in the heading")
	f.StringVar(&c.kind, "kind", string(analysis.BinarySearchTree), "Analysis kind")
	f.BoolVar(&c.all, "all", false, "Show every analysis kind")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var cards []analysis.Analysis
	if c.all {
		cards = analysis.Catalog()
	} else {
		kind, err := analysis.ParseKind(c.kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		card, err := analysis.Lookup(kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		cards = append(cards, card)
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	symbol := strings.ToUpper(c.symbol)
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		parts = append(parts, dashboard.AnalysisMarkdown(card, symbol, a.cfg.Currency))
	}
	printMarkdown(strings.Join(parts, "\n---\n\n"))
	return subcommands.ExitSuccess
}
