package service

import (
	"context"
	"fmt"
	"net/http"

	a "televault/media-bot/aws"
	"televault/media-bot/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/viper"
)

// Archive backends. "channel" forwards the original upload to a private
// Telegram channel, "s3" copies the media bytes into a bucket
const (
	ArchiveChannel = "channel"
	ArchiveS3      = "s3"
)

type Archiver struct {
	Mode      string
	ChannelID int64
	Telegram  TelegramAPI
	Uploader  *manager.Uploader
	Bucket    *string
	HTTP      *http.Client
}

func NewArchiver(api TelegramAPI) (*Archiver, error) {
	arch := &Archiver{
		Mode:      viper.GetString("storage.type"),
		ChannelID: viper.GetInt64("storage.channel_id"),
		Telegram:  api,
		HTTP:      http.DefaultClient,
	}

	if arch.Mode == ArchiveS3 {
		s3c, err := a.NewS3()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client, %w", err)
		}

		arch.Uploader = manager.NewUploader(s3c.C)
		arch.Bucket = s3c.Bucket
	}

	return arch, nil
}

// Archive stores a private copy of a freshly ingested upload. Runs
// after the registry insert committed and is not rolled back on
// failure, the record stays servable either way
func (ar *Archiver) Archive(ctx context.Context, m *model.Media, fromChatID int64, messageID int) error {
	if ar.Mode == ArchiveS3 {
		return ar.archiveS3(ctx, m)
	}

	_, err := ar.Telegram.Send(tgbotapi.NewForward(ar.ChannelID, fromChatID, messageID))
	if err != nil {
		return fmt.Errorf("failed to forward media to storage channel, %w", err)
	}

	return nil
}

func (ar *Archiver) archiveS3(ctx context.Context, m *model.Media) error {
	url, err := ar.Telegram.GetFileDirectURL(m.FileID)
	if err != nil {
		return fmt.Errorf("failed to resolve media download url, %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := ar.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download media, %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download media, unexpected status %s", resp.Status)
	}

	_, err = ar.Uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: ar.Bucket,
		Key:    aws.String(objectKey(m)),
		Body:   resp.Body,
	})
	if err != nil {
		return fmt.Errorf("failed to upload media to S3, %w", err)
	}

	return nil
}

func objectKey(m *model.Media) string {
	if m.FileType == model.KindVideo {
		return m.PublicID + ".mp4"
	}

	return m.PublicID + ".jpg"
}
