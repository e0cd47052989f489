package main

import (
	"fmt"

	"github.com/Alias1177/Verifier/internal/resolver"
	"github.com/Alias1177/Verifier/models"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the bundled sample predictions",
	RunE:  runDemo,
}

var demoPredictions = []models.Prediction{
	{Type: "binary", Subject: "Bitcoin", Predicate: models.PredicateGreater, Object: models.NumberObject(70000), Deadline: "2025-06-30T23:59:59Z", Context: "crypto"},
	{Type: "binary", Subject: "BTC", Predicate: models.PredicateLess, Object: models.NumberObject(50000), Deadline: "2024-12-31T23:59:59Z", Context: "crypto"},
	{Type: "binary", Subject: "Ethereum", Predicate: models.PredicateGreater, Object: models.NumberObject(4000), Deadline: "2025-01-15T23:59:59Z", Context: "crypto"},
	{Type: "binary", Subject: "Biden", Predicate: models.PredicateWins, Object: models.TextObject("2024 US election"), Deadline: "2024-11-05T23:59:59Z", Context: "politics"},
	{Type: "binary", Subject: "Arsenal", Predicate: models.PredicateBeats, Object: models.TextObject("Liverpool"), Deadline: "2025-03-03T23:59:59Z", Context: "sports"},
	{Type: "binary", Subject: "US CPI", Predicate: models.PredicateGreater, Object: models.NumberObject(3), Deadline: "2024-06-30T00:00:00Z", Context: "economics"},
}

func runDemo(cmd *cobra.Command, _ []string) error {
	svc := resolver.FromConfig(cfg, nil)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Testing Modular Verifier System")
	fmt.Fprintln(out, "==================================================")

	results, err := verifyAll(cmd.Context(), svc, demoPredictions, cfg.BatchConcurrency)
	if err != nil {
		return err
	}

	for i, r := range results {
		p := r.Prediction
		fmt.Fprintf(out, "\nTest %d:\n", i+1)
		fmt.Fprintf(out, "Prediction: %s %s %s\n", p.Subject, p.Predicate, p.Object)
		fmt.Fprintf(out, "Context:    %s (routed to %s)\n", p.Context, r.Domain)
		fmt.Fprintf(out, "Verdict:    %s (confidence %.2f)\n", r.Verdict.Verdict, r.Verdict.Confidence)
		fmt.Fprintf(out, "Why:        %s\n", r.Verdict.Justification)
		fmt.Fprintf(out, "Source:     %s\n", r.Verdict.SourceString())
	}
	return nil
}
