package bot

import (
	"errors"
	"fmt"

	"televault/media-bot/internal/model"
	"televault/media-bot/internal/registry"
	"televault/media-bot/pkg/linkcode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleStart serves a share link: decode the token, look up the media
// and send it back. A bare /start gets the welcome message instead
func (b *Bot) handleStart(msg *tgbotapi.Message) {
	arg := msg.CommandArguments()
	if arg == "" {
		b.sendWelcome(msg.Chat.ID)
		return
	}

	publicID, err := linkcode.ParseCommand(arg)
	if err != nil {
		zap.L().Debug("Rejected share token", zap.String("token", arg), zap.Error(err))
		b.reply(msg.Chat.ID, "❌ Invalid link format!")
		return
	}

	rec, err := b.d.Registry.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			b.reply(msg.Chat.ID, "❌ Invalid or expired link!")
			return
		}

		zap.L().Error("Failed to look up media", zap.String("public_id", publicID), zap.Error(err))
		b.reply(msg.Chat.ID, "❌ An error occurred!")
		return
	}

	sent, err := b.sendMedia(msg.Chat.ID, rec)
	if err != nil {
		zap.L().Error("Failed to send media", zap.String("public_id", publicID), zap.Error(err))
		b.reply(msg.Chat.ID, "❌ An error occurred!")
		return
	}

	if b.ephemeral {
		b.d.Sweeper.Arm(msg.Chat.ID, sent.MessageID, rec.PublicID)
	}
}

func (b *Bot) sendMedia(chatID int64, rec *model.Media) (tgbotapi.Message, error) {
	caption := b.deliveryCaption(rec.FileType)

	switch rec.FileType {
	case model.KindPhoto:
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(rec.FileID))
		photo.Caption = caption
		photo.ParseMode = tgbotapi.ModeMarkdown

		return b.api.Send(photo)

	case model.KindVideo:
		video := tgbotapi.NewVideo(chatID, tgbotapi.FileID(rec.FileID))
		video.Caption = caption
		video.ParseMode = tgbotapi.ModeMarkdown

		if rec.ThumbID != nil {
			video.Thumb = tgbotapi.FileID(*rec.ThumbID)
		}

		return b.api.Send(video)
	}

	return tgbotapi.Message{}, fmt.Errorf("unknown media kind %q", rec.FileType)
}

func (b *Bot) deliveryCaption(kind string) string {
	if b.ephemeral {
		return fmt.Sprintf("⚠️ *This media will be deleted in %d minutes!*", int(b.d.Sweeper.Delay.Minutes()))
	}

	if kind == model.KindVideo {
		return "🎥 Here's your video!"
	}

	return "📸 Here's your photo!"
}

func (b *Bot) sendWelcome(chatID int64) {
	text := fmt.Sprintf(`🚀 *Welcome to the Bot!*

This bot serves media through private share links.

📌 *Join the channel:* [Click Here](%s)`, b.channelLink)

	welcome := tgbotapi.NewMessage(chatID, text)
	welcome.ParseMode = tgbotapi.ModeMarkdown
	welcome.DisableWebPagePreview = true

	if _, err := b.api.Send(welcome); err != nil {
		zap.L().Error("Failed to send welcome message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
