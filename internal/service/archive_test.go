package service

import (
	"context"
	"testing"

	"televault/media-bot/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveForwardsToChannel(t *testing.T) {
	f := &fakeTelegram{}
	ar := &Archiver{Mode: ArchiveChannel, ChannelID: -100456, Telegram: f}

	m := &model.Media{FileID: "PH001", FileType: model.KindPhoto, PublicID: "abcd1234"}

	require.NoError(t, ar.Archive(context.Background(), m, 42, 17))

	require.Len(t, f.sent, 1)
	fwd, ok := f.sent[0].(tgbotapi.ForwardConfig)
	require.True(t, ok)
	assert.EqualValues(t, -100456, fwd.ChatID)
	assert.EqualValues(t, 42, fwd.FromChatID)
	assert.Equal(t, 17, fwd.MessageID)
}

func TestObjectKeyByKind(t *testing.T) {
	assert.Equal(t, "abcd1234.jpg", objectKey(&model.Media{PublicID: "abcd1234", FileType: model.KindPhoto}))
	assert.Equal(t, "vvvv1111.mp4", objectKey(&model.Media{PublicID: "vvvv1111", FileType: model.KindVideo}))
}
