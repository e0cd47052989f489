package verifier

import (
	"context"
	"strings"
	"time"

	"github.com/Alias1177/Verifier/models"
)

// Strategy turns a Prediction into a Verdict. Implementations never return an
// error: every failure is expressed as an unknown Verdict.
type Strategy interface {
	Verify(ctx context.Context, p models.Prediction) models.Verdict
}

// StrategyFunc adapts a function to Strategy
type StrategyFunc func(ctx context.Context, p models.Prediction) models.Verdict

// Verify calls f
func (f StrategyFunc) Verify(ctx context.Context, p models.Prediction) models.Verdict {
	return f(ctx, p)
}

// Clock returns the evaluation time
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
