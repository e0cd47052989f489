package verifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Alias1177/Verifier/internal/metrics"
	"github.com/Alias1177/Verifier/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Rule selects a domain when Match returns true
type Rule struct {
	Name   string
	Domain models.Domain
	Match  func(p models.Prediction) bool
}

// ContextAliases lists the context hints that select each domain
var ContextAliases = map[models.Domain][]string{
	models.DomainPrice:     {"crypto", "stocks", "trading"},
	models.DomainPolitics:  {"politics", "election", "government"},
	models.DomainSports:    {"sports", "football", "basketball", "soccer"},
	models.DomainEconomics: {"economics", "cpi", "gdp", "employment"},
}

// SubjectKeywords lists the subject substrings that select each domain when
// the context is not recognized
var SubjectKeywords = map[models.Domain][]string{
	models.DomainPrice:    {"btc", "bitcoin", "eth", "ethereum", "cardano", "solana", "polkadot", "stock", "price"},
	models.DomainPolitics: {"biden", "trump", "election", "president"},
	models.DomainSports:   {"arsenal", "liverpool", "team", "match"},
}

// DefaultRules is the ordered routing table: context aliases first, then subject
// keywords in price, politics, sports order. The first matching rule wins.
var DefaultRules = []Rule{
	contextRule(models.DomainPrice),
	contextRule(models.DomainPolitics),
	contextRule(models.DomainSports),
	contextRule(models.DomainEconomics),
	subjectRule(models.DomainPrice),
	subjectRule(models.DomainPolitics),
	subjectRule(models.DomainSports),
}

func contextRule(domain models.Domain) Rule {
	aliases := ContextAliases[domain]
	return Rule{
		Name:   "context:" + string(domain),
		Domain: domain,
		Match: func(p models.Prediction) bool {
			ctx := strings.ToLower(strings.TrimSpace(p.Context))
			for _, a := range aliases {
				if ctx == a {
					return true
				}
			}
			return false
		},
	}
}

func subjectRule(domain models.Domain) Rule {
	keywords := SubjectKeywords[domain]
	return Rule{
		Name:   "subject:" + string(domain),
		Domain: domain,
		Match: func(p models.Prediction) bool {
			subject := strings.ToLower(p.Subject)
			for _, k := range keywords {
				if strings.Contains(subject, k) {
					return true
				}
			}
			return false
		},
	}
}

// Router dispatches a prediction to the strategy of the first matching rule,
// or to the fallback when nothing matches.
type Router struct {
	rules      []Rule
	strategies map[models.Domain]Strategy
	fallback   Strategy
	metrics    *metrics.Recorder
	logger     zerolog.Logger
}

// RouterOption configures a Router
type RouterOption func(*Router)

// WithRules replaces the default routing table
func WithRules(rules []Rule) RouterOption {
	return func(r *Router) {
		r.rules = rules
	}
}

// WithMetrics records every routed verification
func WithMetrics(m *metrics.Recorder) RouterOption {
	return func(r *Router) {
		r.metrics = m
	}
}

// NewRouter creates a router over the given domain strategies
func NewRouter(strategies map[models.Domain]Strategy, fallback Strategy, opts ...RouterOption) *Router {
	r := &Router{
		rules:      DefaultRules,
		strategies: strategies,
		fallback:   fallback,
		logger:     log.With().Str("component", "router").Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Select returns the domain the prediction is routed to
func (r *Router) Select(p models.Prediction) models.Domain {
	for _, rule := range r.rules {
		if _, ok := r.strategies[rule.Domain]; !ok {
			continue
		}
		if rule.Match(p) {
			return rule.Domain
		}
	}
	return models.DomainFallback
}

// Route resolves the prediction. It never panics or fails: any internal fault
// becomes an unknown verdict.
func (r *Router) Route(ctx context.Context, p models.Prediction) (verdict models.Verdict) {
	start := time.Now()
	logger := r.logger.With().Str("verification_id", uuid.NewString()).Logger()
	domain := models.DomainFallback

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().Interface("panic", rec).Str("domain", string(domain)).Msg("Verification panicked")
			verdict = models.Unknown("Verification failed: %v", rec)
		}
		r.metrics.Observe(string(domain), string(verdict.Verdict), time.Since(start))
		logger.Info().
			Str("domain", string(domain)).
			Str("verdict", string(verdict.Verdict)).
			Float64("confidence", verdict.Confidence).
			Dur("elapsed", time.Since(start)).
			Msg("Verification finished")
	}()

	domain = r.Select(p)
	logger.Debug().Str("domain", string(domain)).Str("subject", p.Subject).Str("context", p.Context).Msg("Routing prediction")

	strategy := r.strategies[domain]
	if domain == models.DomainFallback {
		strategy = r.fallback
	}
	if strategy == nil {
		return models.Unknown("No verifier available for domain %s", domain)
	}

	verdict = strategy.Verify(ctx, p)
	if !verdict.Verdict.Valid() {
		return models.Unknown("Verifier for %s returned invalid verdict %q", domain, verdict.Verdict)
	}
	return verdict
}

// String describes the routing table, for diagnostics
func (r *Router) String() string {
	names := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		names = append(names, rule.Name)
	}
	return fmt.Sprintf("router[%s -> fallback]", strings.Join(names, ", "))
}
