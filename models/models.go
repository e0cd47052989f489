package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Predicate is the comparison a Prediction asserts between subject and object
type Predicate string

const (
	PredicateGreater      Predicate = ">"
	PredicateLess         Predicate = "<"
	PredicateGreaterEqual Predicate = ">="
	PredicateLessEqual    Predicate = "<="
	PredicateWins         Predicate = "wins"
	PredicateBeats        Predicate = "beats"
)

// IsNumeric reports whether the predicate is one of the four numeric comparisons
func (p Predicate) IsNumeric() bool {
	switch p {
	case PredicateGreater, PredicateLess, PredicateGreaterEqual, PredicateLessEqual:
		return true
	}
	return false
}

// Compare evaluates "value <predicate> target". ok is false for non-numeric predicates.
func (p Predicate) Compare(value, target float64) (hit bool, ok bool) {
	switch p {
	case PredicateGreater:
		return value > target, true
	case PredicateLess:
		return value < target, true
	case PredicateGreaterEqual:
		return value >= target, true
	case PredicateLessEqual:
		return value <= target, true
	}
	return false, false
}

// Object is the target of a Prediction: either a number or free text
type Object struct {
	Text     string
	Number   float64
	IsNumber bool
	set      bool
}

// NumberObject builds a numeric Object
func NumberObject(v float64) Object {
	return Object{Number: v, IsNumber: true, set: true, Text: strconv.FormatFloat(v, 'f', -1, 64)}
}

// TextObject builds a textual Object
func TextObject(s string) Object {
	return Object{Text: s, set: s != ""}
}

// IsZero reports whether the object is absent
func (o Object) IsZero() bool {
	return !o.set
}

// Float returns the numeric value, accepting numeric strings
func (o Object) Float() (float64, bool) {
	if o.IsNumber {
		return o.Number, true
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(o.Text), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (o Object) String() string {
	return o.Text
}

// MarshalJSON writes numbers as JSON numbers and text as JSON strings
func (o Object) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	if o.IsNumber {
		return json.Marshal(o.Number)
	}
	return json.Marshal(o.Text)
}

// UnmarshalJSON accepts a JSON number, string or null
func (o *Object) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*o = Object{}
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*o = NumberObject(num)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("object must be a number or string: %w", err)
	}
	*o = TextObject(text)
	return nil
}

// UnmarshalYAML accepts a scalar number or string
func (o *Object) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("object must be a scalar, got kind %d", node.Kind)
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		v, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("parsing numeric object: %w", err)
		}
		*o = NumberObject(v)
	case "!!null":
		*o = Object{}
	default:
		*o = TextObject(node.Value)
	}
	return nil
}

// Prediction is a structured factual claim to be resolved
type Prediction struct {
	Type      string    `json:"type,omitempty" yaml:"type,omitempty"`
	Subject   string    `json:"subject" yaml:"subject"`
	Predicate Predicate `json:"predicate" yaml:"predicate"`
	Object    Object    `json:"object" yaml:"object"`
	Deadline  string    `json:"deadline" yaml:"deadline"`
	Context   string    `json:"context" yaml:"context"`
}

// VerdictValue is the canonical truth value of a resolved Prediction
type VerdictValue string

const (
	VerdictTrue       VerdictValue = "true"
	VerdictFalse      VerdictValue = "false"
	VerdictNotMatured VerdictValue = "not_matured"
	VerdictUnknown    VerdictValue = "unknown"
)

// Valid reports whether v is one of the four canonical values
func (v VerdictValue) Valid() bool {
	switch v {
	case VerdictTrue, VerdictFalse, VerdictNotMatured, VerdictUnknown:
		return true
	}
	return false
}

// Verdict is the canonical result shared by every verification path
type Verdict struct {
	Verdict       VerdictValue `json:"verdict"`
	Confidence    float64      `json:"confidence"`
	Justification string       `json:"justification"`
	Source        *string      `json:"source"`
}

// Unknown builds an unknown verdict with zero confidence and no source
func Unknown(format string, args ...any) Verdict {
	return Verdict{
		Verdict:       VerdictUnknown,
		Confidence:    0.0,
		Justification: fmt.Sprintf(format, args...),
	}
}

// Bool maps a hit/miss to VerdictTrue/VerdictFalse
func Bool(hit bool) VerdictValue {
	if hit {
		return VerdictTrue
	}
	return VerdictFalse
}

// Source returns a pointer to url, or nil when url is empty
func Source(url string) *string {
	if url == "" {
		return nil
	}
	return &url
}

// SourceString dereferences a verdict source for display
func (v Verdict) SourceString() string {
	if v.Source == nil {
		return "null"
	}
	return *v.Source
}

// Domain identifies which verification strategy handles a Prediction
type Domain string

const (
	DomainPrice     Domain = "price"
	DomainPolitics  Domain = "politics"
	DomainSports    Domain = "sports"
	DomainEconomics Domain = "economics"
	DomainFallback  Domain = "fallback"
)

// EvidencePoint is one timestamped observation from an evidence source
type EvidencePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
	Label     string    `json:"label,omitempty"`
	Source    string    `json:"source,omitempty"`
}

// PriceSeries holds price samples for one asset over a window
type PriceSeries struct {
	AssetID   string
	Points    []EvidencePoint
	SourceURL string
}

// MaxMin returns the extreme values of the series
func (s PriceSeries) MaxMin() (max, min float64) {
	for i, p := range s.Points {
		if i == 0 || p.Value > max {
			max = p.Value
		}
		if i == 0 || p.Value < min {
			min = p.Value
		}
	}
	return max, min
}

// IndicatorSeries holds historical readings of an economic indicator
type IndicatorSeries struct {
	Country   string
	Indicator string
	Points    []EvidencePoint
	SourceURL string
}

// LatestAsOf returns the most recent observation at or before t
func (s IndicatorSeries) LatestAsOf(t time.Time) (EvidencePoint, bool) {
	var best EvidencePoint
	found := false
	for _, p := range s.Points {
		if p.Timestamp.After(t) {
			continue
		}
		if !found || p.Timestamp.After(best.Timestamp) {
			best = p
			found = true
		}
	}
	return best, found
}

// MatchEvent is one fixture returned by a sports source
type MatchEvent struct {
	ID        string
	HomeTeam  string
	AwayTeam  string
	HomeScore *int
	AwayScore *int
	Date      string
	SourceURL string
}

// HasScores reports whether both sides have a recorded score
func (e MatchEvent) HasScores() bool {
	return e.HomeScore != nil && e.AwayScore != nil
}

// SearchHit is one result of an encyclopedia search
type SearchHit struct {
	Title string
	URL   string
}
