package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPredicateCompare(t *testing.T) {
	tests := []struct {
		predicate Predicate
		value     float64
		target    float64
		hit       bool
		ok        bool
	}{
		{PredicateGreater, 2, 1, true, true},
		{PredicateGreater, 1, 1, false, true},
		{PredicateGreaterEqual, 1, 1, true, true},
		{PredicateLess, 1, 2, true, true},
		{PredicateLessEqual, 2, 2, true, true},
		{PredicateLessEqual, 3, 2, false, true},
		{PredicateWins, 3, 2, false, false},
		{"==", 2, 2, false, false},
	}

	for _, tt := range tests {
		hit, ok := tt.predicate.Compare(tt.value, tt.target)
		assert.Equal(t, tt.hit, hit, "%g %s %g", tt.value, tt.predicate, tt.target)
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.ok, tt.predicate.IsNumeric())
	}
}

func TestObjectJSON(t *testing.T) {
	var p Prediction
	require.NoError(t, json.Unmarshal([]byte(`{"subject":"BTC","predicate":">","object":70000,"deadline":"2025-06-30"}`), &p))
	assert.True(t, p.Object.IsNumber)
	v, ok := p.Object.Float()
	assert.True(t, ok)
	assert.Equal(t, 70000.0, v)
	assert.Equal(t, "70000", p.Object.String())

	require.NoError(t, json.Unmarshal([]byte(`{"subject":"Arsenal","object":"Liverpool"}`), &p))
	assert.False(t, p.Object.IsNumber)
	assert.Equal(t, "Liverpool", p.Object.String())
	_, ok = p.Object.Float()
	assert.False(t, ok)

	require.NoError(t, json.Unmarshal([]byte(`{"subject":"X","object":null}`), &p))
	assert.True(t, p.Object.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"object":{"nested":true}}`), &p))
}

func TestObjectNumericString(t *testing.T) {
	v, ok := TextObject(" 3.5 ").Float()
	assert.True(t, ok)
	assert.Equal(t, 3.5, v)
	assert.True(t, TextObject("").IsZero())
	assert.False(t, NumberObject(0).IsZero())
}

func TestObjectMarshalJSON(t *testing.T) {
	out, err := json.Marshal(Prediction{Subject: "BTC", Predicate: ">", Object: NumberObject(70000)})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"object":70000`)

	out, err = json.Marshal(Prediction{Subject: "Arsenal", Object: TextObject("Liverpool")})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"object":"Liverpool"`)
	assert.NotContains(t, string(out), `"type"`)
}

func TestObjectYAML(t *testing.T) {
	doc := `
- subject: BTC
  predicate: ">"
  object: 70000
  deadline: 2025-06-30T23:59:59Z
- subject: Arsenal
  predicate: wins
  object: Liverpool
  deadline: "2025-03-03"
- subject: UK CPI
  predicate: ">"
  object: "3.2"
`
	var ps []Prediction
	require.NoError(t, yaml.Unmarshal([]byte(doc), &ps))
	require.Len(t, ps, 3)

	assert.True(t, ps[0].Object.IsNumber)
	assert.Equal(t, 70000.0, ps[0].Object.Number)
	assert.Equal(t, "2025-06-30T23:59:59Z", ps[0].Deadline)
	assert.Equal(t, "Liverpool", ps[1].Object.String())

	assert.False(t, ps[2].Object.IsNumber)
	v, ok := ps[2].Object.Float()
	assert.True(t, ok)
	assert.Equal(t, 3.2, v)
}

func TestVerdictHelpers(t *testing.T) {
	u := Unknown("No data for %s", "X")
	assert.Equal(t, VerdictUnknown, u.Verdict)
	assert.Equal(t, 0.0, u.Confidence)
	assert.Equal(t, "No data for X", u.Justification)
	assert.Nil(t, u.Source)
	assert.Equal(t, "null", u.SourceString())

	assert.Equal(t, VerdictTrue, Bool(true))
	assert.Equal(t, VerdictFalse, Bool(false))
	assert.Nil(t, Source(""))
	assert.Equal(t, "https://a.test", *Source("https://a.test"))

	for _, v := range []VerdictValue{VerdictTrue, VerdictFalse, VerdictNotMatured, VerdictUnknown} {
		assert.True(t, v.Valid())
	}
	assert.False(t, VerdictValue("not matured").Valid())

	out, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{"verdict":"unknown","confidence":0,"justification":"No data for X","source":null}`, string(out))
}

func TestPriceSeriesMaxMin(t *testing.T) {
	s := PriceSeries{Points: []EvidencePoint{{Value: 70000}, {Value: 80000}, {Value: 60000}}}
	max, min := s.MaxMin()
	assert.Equal(t, 80000.0, max)
	assert.Equal(t, 60000.0, min)

	max, min = PriceSeries{Points: []EvidencePoint{{Value: -1}}}.MaxMin()
	assert.Equal(t, -1.0, max)
	assert.Equal(t, -1.0, min)
}

func TestIndicatorSeriesLatestAsOf(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	s := IndicatorSeries{Points: []EvidencePoint{
		{Timestamp: day(20), Value: 3},
		{Timestamp: day(1), Value: 1},
		{Timestamp: day(10), Value: 2},
	}}

	p, ok := s.LatestAsOf(day(15))
	require.True(t, ok)
	assert.Equal(t, 2.0, p.Value)

	p, ok = s.LatestAsOf(day(20))
	require.True(t, ok)
	assert.Equal(t, 3.0, p.Value, "observation on the deadline counts")

	_, ok = s.LatestAsOf(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestParseDeadline(t *testing.T) {
	want := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)

	tests := []string{
		"2025-06-30T23:59:59Z",
		"2025-06-30T23:59:59",
		"2025-06-30 23:59:59",
		"2025-07-01T01:59:59+02:00",
		" 2025-06-30T23:59:59.000Z ",
	}
	for _, in := range tests {
		got, err := ParseDeadline(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
		assert.Equal(t, time.UTC, got.Location())
	}

	got, err := ParseDeadline("2025-06-30")
	require.NoError(t, err)
	assert.True(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC).Equal(got))

	for _, bad := range []string{"", "yesterday", "30/06/2025", "2025-13-01"} {
		_, err := ParseDeadline(bad)
		assert.Error(t, err, bad)
	}
}

func TestDeadlineDate(t *testing.T) {
	date, ok := DeadlineDate("2025-03-03T20:00:00Z")
	assert.True(t, ok)
	assert.Equal(t, "2025-03-03", date)

	for _, bad := range []string{"", "2025-3-3", "03/03/2025 12:00"} {
		_, ok := DeadlineDate(bad)
		assert.False(t, ok, bad)
	}
}

func TestMatchEventHasScores(t *testing.T) {
	one := 1
	assert.True(t, MatchEvent{HomeScore: &one, AwayScore: &one}.HasScores())
	assert.False(t, MatchEvent{HomeScore: &one}.HasScores())
}
