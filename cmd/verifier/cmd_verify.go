package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Alias1177/Verifier/internal/resolver"
	"github.com/Alias1177/Verifier/models"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var verifyFlags struct {
	file        string
	subject     string
	predicate   string
	object      string
	deadline    string
	context     string
	kind        string
	concurrency int
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify one prediction from flags, or a batch from a YAML/JSON file",
	RunE:  runVerify,
}

func init() {
	f := verifyCmd.Flags()
	f.StringVarP(&verifyFlags.file, "file", "f", "", "YAML or JSON file with one prediction or a list")
	f.StringVar(&verifyFlags.subject, "subject", "", "Prediction subject, e.g. Bitcoin")
	f.StringVar(&verifyFlags.predicate, "predicate", "", "One of >, <, >=, <=, wins, beats")
	f.StringVar(&verifyFlags.object, "object", "", "Target value or entity")
	f.StringVar(&verifyFlags.deadline, "deadline", "", "ISO-8601 deadline")
	f.StringVar(&verifyFlags.context, "context", "", "Domain hint, e.g. crypto, politics, sports, economics")
	f.StringVar(&verifyFlags.kind, "type", "binary", "Prediction type")
	f.IntVar(&verifyFlags.concurrency, "concurrency", 0, "Parallel verifications for batch files (default BATCH_CONCURRENCY)")
}

// Result pairs a prediction with its routed domain and verdict
type Result struct {
	Prediction models.Prediction `json:"prediction"`
	Domain     models.Domain     `json:"domain"`
	Verdict    models.Verdict    `json:"verdict"`
}

func runVerify(cmd *cobra.Command, _ []string) error {
	var predictions []models.Prediction
	switch {
	case verifyFlags.file != "":
		loaded, err := loadPredictions(verifyFlags.file)
		if err != nil {
			return err
		}
		predictions = loaded
	case verifyFlags.subject != "":
		predictions = []models.Prediction{{
			Type:      verifyFlags.kind,
			Subject:   verifyFlags.subject,
			Predicate: models.Predicate(verifyFlags.predicate),
			Object:    parseObject(verifyFlags.object),
			Deadline:  verifyFlags.deadline,
			Context:   verifyFlags.context,
		}}
	default:
		return errors.New("either --file or --subject is required")
	}

	concurrency := verifyFlags.concurrency
	if concurrency <= 0 {
		concurrency = cfg.BatchConcurrency
	}

	svc := resolver.FromConfig(cfg, nil)
	results, err := verifyAll(cmd.Context(), svc, predictions, concurrency)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if len(results) == 1 {
		return enc.Encode(results[0])
	}
	return enc.Encode(results)
}

// verifyAll resolves every prediction with at most limit calls in flight,
// preserving input order in the output.
func verifyAll(ctx context.Context, svc *resolver.Service, predictions []models.Prediction, limit int) ([]Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if limit <= 0 {
		limit = 1
	}

	results := make([]Result, len(predictions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, p := range predictions {
		i, p := i, p
		g.Go(func() error {
			results[i] = Result{
				Prediction: p,
				Domain:     svc.Domain(p),
				Verdict:    svc.RouteVerification(gctx, p),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch verification: %w", err)
	}
	return results, nil
}
