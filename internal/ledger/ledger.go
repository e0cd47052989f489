package ledger

import (
	"fmt"
	"sort"
	"sync"
)

// Accuracy is the reported correctness of one predictor in one domain
type Accuracy struct {
	Predictor     string  `json:"predictor"`
	Domain        string  `json:"domain"`
	Correct       int     `json:"correct"`
	Total         int     `json:"total"`
	Percent       float64 `json:"percent"`
	Justification string  `json:"justification"`
}

type key struct {
	predictor string
	domain    string
}

type counts struct {
	correct int
	total   int
}

// Ledger accumulates per-predictor, per-domain correctness counts.
// The zero value is not usable; call New.
type Ledger struct {
	mu      sync.RWMutex
	records map[key]counts
}

// New returns an empty ledger
func New() *Ledger {
	return &Ledger{records: make(map[key]counts)}
}

// Record counts one resolved prediction for predictor in domain
func (l *Ledger) Record(predictor, domain string, correct bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	k := key{predictor, domain}
	c := l.records[k]
	c.total++
	if correct {
		c.correct++
	}
	l.records[k] = c
}

// Query reports the accuracy of predictor in domain. Unrecorded pairs report zero counts.
func (l *Ledger) Query(predictor, domain string) Accuracy {
	l.mu.RLock()
	c := l.records[key{predictor, domain}]
	l.mu.RUnlock()

	return report(predictor, domain, c)
}

// Snapshot lists every recorded pair, ordered by predictor then domain
func (l *Ledger) Snapshot() []Accuracy {
	l.mu.RLock()
	out := make([]Accuracy, 0, len(l.records))
	for k, c := range l.records {
		out = append(out, report(k.predictor, k.domain, c))
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Predictor != out[j].Predictor {
			return out[i].Predictor < out[j].Predictor
		}
		return out[i].Domain < out[j].Domain
	})
	return out
}

// Reset clears all records. Intended for tests and demos.
func (l *Ledger) Reset() {
	l.mu.Lock()
	l.records = make(map[key]counts)
	l.mu.Unlock()
}

func report(predictor, domain string, c counts) Accuracy {
	a := Accuracy{
		Predictor:     predictor,
		Domain:        domain,
		Correct:       c.correct,
		Total:         c.total,
		Justification: "No predictions yet.",
	}
	if c.total > 0 {
		a.Percent = 100 * float64(c.correct) / float64(c.total)
		a.Justification = fmt.Sprintf("%d / %d correct in %s", c.correct, c.total, domain)
	}
	return a
}
