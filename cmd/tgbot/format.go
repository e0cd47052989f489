package main

import (
	"fmt"
	"strings"

	"github.com/Alias1177/Verifier/internal/ledger"
	"github.com/Alias1177/Verifier/models"
)

var verdictEmoji = map[models.VerdictValue]string{
	models.VerdictTrue:       "✅",
	models.VerdictFalse:      "❌",
	models.VerdictNotMatured: "⏳",
	models.VerdictUnknown:    "❔",
}

func formatVerdict(p models.Prediction, domain models.Domain, v models.Verdict) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s %s %s\n", verdictEmoji[v.Verdict], p.Subject, p.Predicate, p.Object)
	fmt.Fprintf(&sb, "Verdict: %s (confidence %.2f, %s)\n", v.Verdict, v.Confidence, domain)
	fmt.Fprintf(&sb, "%s", v.Justification)
	if v.Source != nil {
		fmt.Fprintf(&sb, "\nSource: %s", *v.Source)
	}
	return sb.String()
}

func formatAccuracy(a ledger.Accuracy) string {
	if a.Total == 0 {
		return fmt.Sprintf("%s / %s: %s", a.Predictor, a.Domain, a.Justification)
	}
	return fmt.Sprintf("%s / %s: %.2f%% (%s)", a.Predictor, a.Domain, a.Percent, a.Justification)
}
