// Package bot dispatches Telegram updates to the ingestion and
// delivery handlers
package bot

import (
	"televault/media-bot/internal"
	"televault/media-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Bot struct {
	api         service.TelegramAPI
	username    string
	ownerID     int64
	channelLink string
	ephemeral   bool
	d           *internal.Deps
}

func New(api service.TelegramAPI, username string, d *internal.Deps) *Bot {
	return &Bot{
		api:         api,
		username:    username,
		ownerID:     viper.GetInt64("bot.owner_id"),
		channelLink: viper.GetString("bot.channel_link"),
		ephemeral:   viper.GetBool("ephemeral.enabled"),
		d:           d,
	}
}

// Dispatch routes a single update to its handler. Every handler runs to
// completion and swallows its own errors, a bad update never takes the
// process down
func (b *Bot) Dispatch(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	switch {
	case msg.IsCommand() && msg.Command() == "start":
		b.handleStart(msg)
	case len(msg.Photo) > 0 || msg.Video != nil:
		b.handleMedia(msg)
	}
}

// Run consumes updates over long polling until the update channel closes
func (b *Bot) Run(tg *tgbotapi.BotAPI) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	zap.L().Info("Bot is running", zap.String("username", b.username))

	for update := range tg.GetUpdatesChan(u) {
		b.Dispatch(update)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		zap.L().Error("Failed to send reply", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
