package resolver

import (
	"context"

	"github.com/Alias1177/Verifier/internal/api/coingecko"
	"github.com/Alias1177/Verifier/internal/api/openai"
	"github.com/Alias1177/Verifier/internal/api/thesportsdb"
	"github.com/Alias1177/Verifier/internal/api/tradingeconomics"
	"github.com/Alias1177/Verifier/internal/api/wikipedia"
	"github.com/Alias1177/Verifier/internal/config"
	"github.com/Alias1177/Verifier/internal/ledger"
	"github.com/Alias1177/Verifier/internal/metrics"
	"github.com/Alias1177/Verifier/internal/oracle"
	"github.com/Alias1177/Verifier/internal/verifier"
	"github.com/Alias1177/Verifier/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// Service is the caller-facing boundary: route a prediction, and keep the accuracy ledger
type Service struct {
	router *verifier.Router
	ledger *ledger.Ledger
}

// Sources groups the evidence adapters and completion backend a Service uses
type Sources struct {
	Prices       models.PriceSource
	Indicators   models.IndicatorSource
	Events       models.EventSource
	Encyclopedia models.Encyclopedia
	Completer    models.Completer
	League       string
	Model        string
	Now          verifier.Clock
}

// New wires a Service from explicit sources. reg may be nil to skip metrics.
func New(src Sources, led *ledger.Ledger, reg prometheus.Registerer) *Service {
	if led == nil {
		led = ledger.New()
	}

	strategies := map[models.Domain]verifier.Strategy{
		models.DomainPrice:     verifier.NewPriceVerifier(src.Prices, src.Now),
		models.DomainPolitics:  verifier.NewPoliticsVerifier(src.Encyclopedia),
		models.DomainSports:    verifier.NewSportsVerifier(src.Events, src.League),
		models.DomainEconomics: verifier.NewEconomicsVerifier(src.Indicators),
	}

	var opts []verifier.RouterOption
	if reg != nil {
		opts = append(opts, verifier.WithMetrics(metrics.NewRecorder(reg)))
	}

	return &Service{
		router: verifier.NewRouter(strategies, oracle.New(src.Completer, src.Model), opts...),
		ledger: led,
	}
}

// FromConfig builds the production adapters from cfg
func FromConfig(cfg *config.Config, reg prometheus.Registerer) *Service {
	timeout := cfg.Timeout()

	src := Sources{
		Prices: coingecko.NewClient(coingecko.ClientOptions{
			APIKey:         cfg.CoinGeckoAPIKey,
			BaseURL:        cfg.CoinGeckoBaseURL,
			RequestTimeout: timeout,
			RequestsPerSec: cfg.RequestsPerSec,
			MaxRetries:     cfg.MaxRetries,
		}),
		Indicators: tradingeconomics.NewClient(tradingeconomics.ClientOptions{
			APIKey:         cfg.TradingEconomicsAPIKey,
			BaseURL:        cfg.TradingEconomicsBaseURL,
			RequestTimeout: timeout,
			RequestsPerSec: cfg.RequestsPerSec,
			MaxRetries:     cfg.MaxRetries,
		}),
		Events: thesportsdb.NewClient(thesportsdb.ClientOptions{
			APIKey:         cfg.SportsDBAPIKey,
			BaseURL:        cfg.SportsDBBaseURL,
			RequestTimeout: timeout,
			RequestsPerSec: cfg.RequestsPerSec,
			MaxRetries:     cfg.MaxRetries,
		}),
		Encyclopedia: wikipedia.NewClient(wikipedia.ClientOptions{
			APIURL:         cfg.WikipediaAPIURL,
			RequestTimeout: timeout,
			RequestsPerSec: cfg.RequestsPerSec,
			MaxRetries:     cfg.MaxRetries,
		}),
		League: cfg.SportsLeague,
		Model:  cfg.OpenAIModel,
	}

	if cfg.OpenAIAPIKey != "" {
		src.Completer = openai.NewClient(openai.ClientOptions{
			APIKey:      cfg.OpenAIAPIKey,
			BaseURL:     cfg.OpenAIBaseURL,
			Model:       cfg.OpenAIModel,
			Temperature: cfg.OpenAITemperature,
			MaxTokens:   cfg.OpenAIMaxTokens,
		})
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, fallback verifications will resolve to unknown")
	}

	return New(src, ledger.New(), reg)
}

// RouteVerification resolves a prediction to a verdict
func (s *Service) RouteVerification(ctx context.Context, p models.Prediction) models.Verdict {
	return s.router.Route(ctx, p)
}

// Domain reports which strategy a prediction would be routed to
func (s *Service) Domain(p models.Prediction) models.Domain {
	return s.router.Select(p)
}

// Ledger returns the accuracy ledger owned by the service
func (s *Service) Ledger() *ledger.Ledger {
	return s.ledger
}
