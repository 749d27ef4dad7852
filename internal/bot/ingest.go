package bot

import (
	"context"
	"errors"

	"televault/media-bot/internal/model"
	"televault/media-bot/internal/registry"
	"televault/media-bot/pkg/linkcode"
	"televault/media-bot/pkg/util"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Insert attempts before a public id collision is treated as unrecoverable
const maxMintAttempts = 3

// handleMedia ingests an upload from the owner: dedupe by file id,
// persist new media, archive it and reply with the share link. Uploads
// from anyone else are dropped without a reply
func (b *Bot) handleMedia(msg *tgbotapi.Message) {
	if msg.From == nil || msg.From.ID != b.ownerID {
		return
	}

	fileID, thumbID, kind := extractMedia(msg)
	if fileID == "" {
		return
	}

	rec, err := b.d.Registry.FindByFileID(fileID)
	switch {
	case err == nil:
		// Re-upload of known media, hand back the existing link and
		// skip archival

	case errors.Is(err, registry.ErrNotFound):
		rec, err = b.storeMedia(fileID, thumbID, kind)
		if err != nil {
			zap.L().Error("Failed to store media", zap.String("file_id", fileID), zap.Error(err))
			b.reply(msg.Chat.ID, "❌ Failed to process media!")
			return
		}

		// The insert above is the atomic boundary. A failed archive
		// copy leaves the record valid and is not corrected
		if err := b.d.Archiver.Archive(context.Background(), rec, msg.Chat.ID, msg.MessageID); err != nil {
			zap.L().Error("Failed to archive media", zap.String("public_id", rec.PublicID), zap.Error(err))
		}

	default:
		zap.L().Error("Failed to look up media", zap.String("file_id", fileID), zap.Error(err))
		b.reply(msg.Chat.ID, "❌ Failed to process media!")
		return
	}

	b.reply(msg.Chat.ID, "🔥 Media Link:\n📌 "+linkcode.ShareLink(b.username, rec.PublicID))
}

// storeMedia inserts a new record, re-minting the public id on a
// collision. A conflict on file_id means a concurrent upload won the
// race, in which case its row is reused
func (b *Bot) storeMedia(fileID string, thumbID *string, kind string) (*model.Media, error) {
	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		publicID, err := util.NewPublicID()
		if err != nil {
			return nil, err
		}

		m := &model.Media{
			FileID:   fileID,
			ThumbID:  thumbID,
			FileType: kind,
			PublicID: publicID,
		}

		err = b.d.Registry.Insert(m)
		if err == nil {
			return m, nil
		}

		if !errors.Is(err, registry.ErrConflict) {
			return nil, err
		}

		if existing, lookupErr := b.d.Registry.FindByFileID(fileID); lookupErr == nil {
			return existing, nil
		}

		zap.L().Warn("Public id collision, retrying", zap.String("public_id", publicID))
	}

	return nil, registry.ErrConflict
}

// extractMedia pulls the provider handles out of an upload. Telegram
// sends photos as a size ladder, the last entry is the full resolution
func extractMedia(msg *tgbotapi.Message) (fileID string, thumbID *string, kind string) {
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileID, nil, model.KindPhoto
	}

	if msg.Video != nil {
		if msg.Video.Thumbnail != nil {
			thumbID = &msg.Video.Thumbnail.FileID
		}

		return msg.Video.FileID, thumbID, model.KindVideo
	}

	return "", nil, ""
}
