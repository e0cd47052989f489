package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Alias1177/Verifier/internal/config"
	"github.com/Alias1177/Verifier/internal/resolver"
	"github.com/Alias1177/Verifier/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const helpText = `Send a prediction and I'll check it against the evidence.

/verify {"subject":"Bitcoin","predicate":">","object":70000,"deadline":"2025-06-30T23:59:59Z","context":"crypto"}
/record <predictor> <domain> <true|false>
/accuracy <predictor> <domain>
/leaderboard`

// verificationTimeout bounds one chat-triggered verification
const verificationTimeout = 45 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Setup logger
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
	logger := log.With().Str("component", "tgbot").Logger()

	if cfg.TelegramBotToken == "" {
		logger.Fatal().Msg("TELEGRAM_BOT_TOKEN not set in environment")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize Telegram bot")
	}
	logger.Info().Str("username", bot.Self.UserName).Msg("Authorized on Telegram")

	svc := resolver.FromConfig(cfg, nil)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := bot.GetUpdatesChan(updateConfig)

	for update := range updates {
		if update.Message == nil {
			continue
		}
		go handleMessage(bot, svc, update.Message, &logger)
	}
}

// handleMessage processes incoming text messages
func handleMessage(bot *tgbotapi.BotAPI, svc *resolver.Service, message *tgbotapi.Message, logger *zerolog.Logger) {
	reply := respond(svc, message.Command(), message.CommandArguments())

	msg := tgbotapi.NewMessage(message.Chat.ID, reply)
	if _, err := bot.Send(msg); err != nil {
		logger.Error().Err(err).Int64("chat_id", message.Chat.ID).Msg("Failed to send reply")
	}
}

// respond builds the reply text for one command
func respond(svc *resolver.Service, command, args string) string {
	switch command {
	case "verify":
		var p models.Prediction
		if err := json.Unmarshal([]byte(args), &p); err != nil {
			return "Could not read the prediction. Expected JSON, see /help."
		}
		ctx, cancel := context.WithTimeout(context.Background(), verificationTimeout)
		defer cancel()
		return formatVerdict(p, svc.Domain(p), svc.RouteVerification(ctx, p))

	case "record":
		parts := strings.Fields(args)
		if len(parts) != 3 {
			return "Usage: /record <predictor> <domain> <true|false>"
		}
		correct, err := strconv.ParseBool(parts[2])
		if err != nil {
			return "The last argument must be true or false."
		}
		svc.Ledger().Record(parts[0], parts[1], correct)
		return formatAccuracy(svc.Ledger().Query(parts[0], parts[1]))

	case "accuracy":
		parts := strings.Fields(args)
		if len(parts) != 2 {
			return "Usage: /accuracy <predictor> <domain>"
		}
		return formatAccuracy(svc.Ledger().Query(parts[0], parts[1]))

	case "leaderboard":
		rows := svc.Ledger().Snapshot()
		if len(rows) == 0 {
			return "No predictions recorded yet."
		}
		var sb strings.Builder
		for _, a := range rows {
			sb.WriteString(formatAccuracy(a))
			sb.WriteString("\n")
		}
		return strings.TrimSpace(sb.String())

	default:
		return helpText
	}
}
