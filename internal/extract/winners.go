// Package extract pulls election outcomes out of encyclopedia prose.
//
// The extraction is a best-effort heuristic. It favours recall over precision:
// a captured candidate may carry leading words ("the incumbent jane smith"), which is
// why callers match a subject by substring rather than equality. It misses winners
// that are only named outside the lead lines, and can pick up noise from phrases like
// "who won". Treat an empty result as "no evidence", never as evidence of a loss.
package extract

import (
	"regexp"
	"sort"
	"strings"
)

// PatternVersion identifies the pattern set below. Bump it whenever Patterns changes.
const PatternVersion = "3"

// LeadLines is how many leading lines of a page are scanned for winner statements
const LeadLines = 4

// MinCandidateLen drops captures shorter than this as noise
const MinCandidateLen = 3

// word is a lowercase word or a single-letter initial ("j.")
const word = `(?:[a-z]\.|[a-z][a-z'\-]*)`

// name captures one to four words on a single line
const name = `\b(` + word + `(?:[ \t]+` + word + `){0,3})`

// Pattern is one winner statement shape. Group 1 is always the victor.
type Pattern struct {
	Name     string
	Expr     *regexp.Regexp
	// Trailing is set when the victor follows the cue ("the winner was x")
	Trailing bool
}

// clauseWords cannot be part of a name. A capture that runs across one keeps
// only the words on the side of the cue.
var clauseWords = map[string]bool{
	"after": true, "although": true, "and": true, "as": true, "because": true,
	"before": true, "but": true, "once": true, "or": true, "since": true,
	"so": true, "that": true, "then": true, "though": true, "until": true,
	"when": true, "whereas": true, "which": true, "while": true, "who": true,
}

// Victor returns the cleaned victor of a match produced by p.Expr
func (p Pattern) Victor(m []string) string {
	words := strings.Fields(m[1])
	if p.Trailing {
		for i, w := range words {
			if clauseWords[w] {
				words = words[:i]
				break
			}
		}
	} else {
		for i := len(words) - 1; i >= 0; i-- {
			if clauseWords[words[i]] {
				words = words[i+1:]
				break
			}
		}
	}
	return clean(strings.Join(words, " "))
}

// Patterns is the ordered winner pattern set
var Patterns = []Pattern{
	{Name: "won", Expr: regexp.MustCompile(name + `\s+won\b`)},
	{Name: "was_elected", Expr: regexp.MustCompile(name + `\s+was\s+(?:re-?)?elected\b`)},
	{Name: "prevailed", Expr: regexp.MustCompile(name + `\s+prevailed\b`)},
	{Name: "defeated", Expr: regexp.MustCompile(name + `\s+(?:defeated|beat)\s+` + name)},
	{Name: "most_votes", Expr: regexp.MustCompile(name + `\s+received\s+the\s+most\s+votes\b`)},
	{Name: "was_winner", Expr: regexp.MustCompile(name + `\s+was\s+the\s+winner\b`)},
	{Name: "victorious", Expr: regexp.MustCompile(name + `\s+was\s+victorious\b`)},
	{Name: "secured_victory", Expr: regexp.MustCompile(name + `\s+secured\s+(?:a\s+|the\s+)?victory\b`)},
	{Name: "chosen_president", Expr: regexp.MustCompile(name + `\s+was\s+chosen\s+(?:as\s+)?president\b`)},
	{Name: "winner_is", Expr: regexp.MustCompile(`the\s+winner\s+(?:was|is)\s+` + name), Trailing: true},
	{Name: "won_election", Expr: regexp.MustCompile(name + `\s+won\s+the\s+election\b`)},
}

var withdrawalTerms = []string{"withdrew", "dropped out", "suspended"}

// Lead returns the lowercased first LeadLines lines of text
func Lead(text string) string {
	lines := strings.SplitN(strings.ToLower(text), "\n", LeadLines+1)
	if len(lines) > LeadLines {
		lines = lines[:LeadLines]
	}
	return strings.Join(lines, "\n")
}

// Winners returns the sorted, de-duplicated set of winner candidates found in
// the lead lines of text.
func Winners(text string) []string {
	lead := Lead(text)
	set := make(map[string]struct{})

	for _, p := range Patterns {
		for _, m := range p.Expr.FindAllStringSubmatch(lead, -1) {
			// only the victor is kept; for "defeated" group 2 is the loser
			candidate := p.Victor(m)
			if len(candidate) < MinCandidateLen {
				continue
			}
			set[candidate] = struct{}{}
		}
	}

	winners := make([]string, 0, len(set))
	for w := range set {
		winners = append(winners, w)
	}
	sort.Strings(winners)
	return winners
}

// Withdrew reports whether a sentence of text that mentions subject also
// contains withdrawal vocabulary.
func Withdrew(text, subject string) bool {
	subject = strings.ToLower(strings.TrimSpace(subject))
	// initials would otherwise be cut by the sentence split
	key := strings.ReplaceAll(subject, ".", "")
	if strings.TrimSpace(key) == "" {
		return false
	}
	text = strings.ReplaceAll(strings.ToLower(text), subject, key)

	for _, sentence := range strings.Split(text, ".") {
		if !strings.Contains(sentence, key) {
			continue
		}
		for _, term := range withdrawalTerms {
			if strings.Contains(sentence, term) {
				return true
			}
		}
	}
	return false
}

// MatchWinner returns the first candidate containing subject
func MatchWinner(winners []string, subject string) (string, bool) {
	subject = strings.ToLower(strings.TrimSpace(subject))
	if subject == "" {
		return "", false
	}
	for _, w := range winners {
		if strings.Contains(w, subject) {
			return w, true
		}
	}
	return "", false
}

func clean(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, ".'- ")
}
