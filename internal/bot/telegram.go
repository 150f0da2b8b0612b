package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramBot struct {
	bot     *tgbotapi.BotAPI
	handler *Handler
	chatID  int64
}

func NewTelegramBot(token string, chatID int64, reporter Reporter) (*TelegramBot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	return &TelegramBot{
		bot:     bot,
		handler: NewHandler(reporter),
		chatID:  chatID,
	}, nil
}

func (t *TelegramBot) Start(ctx context.Context) error {
	slog.Info("Authorized on account", "username", t.bot.Self.UserName)
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	defer t.bot.StopReceivingUpdates()

	for {
		select {
		case update := <-updates:
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}

			slog.Info("Handling command", "command", update.Message.Command(), "chat", update.Message.Chat.ID)
			reply := t.handler.HandleCommand(ctx, update)
			for _, chunk := range splitMessage(reply.Text, maxMessageLen) {
				msg := reply
				msg.Text = chunk
				if _, err := t.bot.Send(msg); err != nil {
					slog.Error("Error sending message", "error", err)
					break
				}
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// SendMessage posts text to the configured chat, split on line breaks into
// messages Telegram will accept.
func (t *TelegramBot) SendMessage(text string) error {
	if t.chatID == 0 {
		slog.Error("Chat ID not set")
		return fmt.Errorf("chat ID not set")
	}

	for _, chunk := range splitMessage(text, maxMessageLen) {
		msg := tgbotapi.NewMessage(t.chatID, chunk)
		msg.ParseMode = "Markdown"
		if _, err := t.bot.Send(msg); err != nil {
			slog.Error("Error sending message", "error", err)
			return fmt.Errorf("sending message: %w", err)
		}
	}
	return nil
}

const maxMessageLen = 4096

func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > limit {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			cut := limit
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			if cut == 0 {
				cut = limit
			}
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		if current.Len()+len(line) > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
