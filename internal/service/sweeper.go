package service

import (
	"time"

	"televault/media-bot/internal/registry"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type SweepPolicy string

const (
	// SweepMessage deletes the delivered copy from the requester's
	// chat, the link stays usable by others
	SweepMessage SweepPolicy = "message"

	// SweepRecord deletes the registry row instead, invalidating the
	// link for everyone
	SweepRecord SweepPolicy = "record"
)

// Sweeper arms one-shot deletion timers for ephemeral deliveries. Timers
// are independent, never cancelled and never retried. Deletions pending
// at process exit are simply lost
type Sweeper struct {
	Telegram TelegramAPI
	Registry *registry.Registry
	Delay    time.Duration
	Policy   SweepPolicy
}

func NewSweeper(api TelegramAPI, reg *registry.Registry, delay time.Duration, policy SweepPolicy) *Sweeper {
	return &Sweeper{
		Telegram: api,
		Registry: reg,
		Delay:    delay,
		Policy:   policy,
	}
}

// Arm schedules the cleanup for a just-delivered message without
// blocking the handler that sent it
func (s *Sweeper) Arm(chatID int64, messageID int, publicID string) {
	time.AfterFunc(s.Delay, func() {
		s.sweep(chatID, messageID, publicID)
	})

	zap.L().Debug("Deletion timer armed",
		zap.String("public_id", publicID),
		zap.Duration("delay", s.Delay),
		zap.String("policy", string(s.Policy)),
	)
}

func (s *Sweeper) sweep(chatID int64, messageID int, publicID string) {
	if s.Policy == SweepRecord {
		removed, err := s.Registry.Delete(publicID)
		if err != nil {
			zap.L().Warn("Failed to delete media record", zap.String("public_id", publicID), zap.Error(err))
			return
		}

		zap.L().Debug("Media record swept", zap.String("public_id", publicID), zap.Bool("removed", removed))
		return
	}

	_, err := s.Telegram.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	if err != nil {
		// Already deleted by the user or out of the deletion window,
		// either way this copy is gone for good or staying for good
		zap.L().Warn("Failed to delete delivered message",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
			zap.Error(err),
		)
	}
}
