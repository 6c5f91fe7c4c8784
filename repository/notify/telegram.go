// Package notify pushes payout decisions to an ops Telegram chat. Optional:
// without a bot token the notifier is nil and every call is a no-op.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Notifier interface {
	PayoutDecided(reference string, amount float64, status, actorEmail string) error
}

type telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &telegram{bot: bot, chatID: chatID}, nil
}

func (t *telegram) PayoutDecided(reference string, amount float64, status, actorEmail string) error {
	text := fmt.Sprintf("Payout %s %s: %.2f (by %s)", reference, status, amount, actorEmail)
	msg := tgbotapi.NewMessage(t.chatID, text)
	_, err := t.bot.Send(msg)
	return err
}
