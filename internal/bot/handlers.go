package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const helpText = "Available commands:\n" +
	"/matchups - Season points, leaders, peaks and close losses\n" +
	"/trades - Trade counts, most traded players and beans\n" +
	"/waivers - Waiver claims and bids\n" +
	"/player <name> - Season line for a player\n" +
	"/refresh - Reload league data from Sleeper"

// Reporter produces the Markdown reports the bot replies with.
type Reporter interface {
	GetMatchupReport(ctx context.Context) (string, error)
	GetTradeReport(ctx context.Context) (string, error)
	GetWaiverReport(ctx context.Context) (string, error)
	GetPlayerReport(ctx context.Context, name string) (string, error)
	Refresh(ctx context.Context) error
}

type Handler struct {
	reporter Reporter
}

func NewHandler(reporter Reporter) *Handler {
	return &Handler{reporter: reporter}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to SleeperStats! Use /help to see available commands."
	case "help":
		msg.Text = helpText
	case "matchups":
		h.reply(&msg, "matchups report", func() (string, error) { return h.reporter.GetMatchupReport(ctx) })
	case "trades":
		h.reply(&msg, "trades report", func() (string, error) { return h.reporter.GetTradeReport(ctx) })
	case "waivers":
		h.reply(&msg, "waivers report", func() (string, error) { return h.reporter.GetWaiverReport(ctx) })
	case "player":
		h.handlePlayer(ctx, &msg, args)
	case "refresh":
		if err := h.reporter.Refresh(ctx); err != nil {
			msg.Text = fmt.Sprintf("Error refreshing league data: %v", err)
		} else {
			msg.Text = "League data refreshed."
		}
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) reply(msg *tgbotapi.MessageConfig, what string, report func() (string, error)) {
	text, err := report()
	if err != nil {
		msg.Text = fmt.Sprintf("Error generating %s: %v", what, err)
		return
	}
	msg.Text = text
}

func (h *Handler) handlePlayer(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if strings.TrimSpace(args) == "" {
		msg.Text = "Please provide a player name. Usage: /player <player name>"
		return
	}
	h.reply(msg, "player report", func() (string, error) { return h.reporter.GetPlayerReport(ctx, args) })
}
