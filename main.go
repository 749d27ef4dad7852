package main

import (
	"fmt"
	"time"

	"televault/media-bot/api"
	"televault/media-bot/config"
	"televault/media-bot/db"
	"televault/media-bot/internal"
	"televault/media-bot/internal/bot"
	"televault/media-bot/internal/model"
	"televault/media-bot/internal/registry"
	"televault/media-bot/internal/service"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	err := config.Setup()
	if err != nil {
		panic(err)
	}

	makeLogger()

	database, err := db.New()
	if err != nil {
		panic(err)
	}

	if *config.DumpMedia {
		dumpMedia(database)
		return
	}

	tg, err := tgbotapi.NewBotAPI(viper.GetString("bot.token"))
	if err != nil {
		panic(fmt.Errorf("failed to connect to Telegram, %w", err))
	}

	reg := registry.New(database)

	archiver, err := service.NewArchiver(tg)
	if err != nil {
		panic(err)
	}

	sweeper := service.NewSweeper(
		tg,
		reg,
		time.Duration(viper.GetInt("ephemeral.delay"))*time.Second,
		service.SweepPolicy(viper.GetString("ephemeral.policy")),
	)

	b := bot.New(tg, tg.Self.UserName, &internal.Deps{
		DB:       database,
		Registry: reg,
		Archiver: archiver,
		Sweeper:  sweeper,
	})

	if !viper.GetBool("webhook.enabled") {
		// Polling mode. Make sure a previously registered webhook
		// doesn't shadow getUpdates
		if _, err := tg.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
			zap.L().Warn("Failed to clear webhook registration", zap.Error(err))
		}

		b.Run(tg)
		return
	}

	callback := fmt.Sprintf("https://%s/bot/%s", viper.GetString("webhook.domain"), viper.GetString("bot.token"))

	wh, err := tgbotapi.NewWebhook(callback)
	if err != nil {
		panic(fmt.Errorf("failed to build webhook config, %w", err))
	}

	if _, err := tg.Request(wh); err != nil {
		panic(fmt.Errorf("failed to register webhook, %w", err))
	}

	a := api.NewRouter(b)

	zap.L().Info("Webhook server starting", zap.Int("port", viper.GetInt("webhook.port")))

	err = a.Router.Run(fmt.Sprintf(":%d", viper.GetInt("webhook.port")))
	if err != nil {
		panic(err)
	}
}

func dumpMedia(database *gorm.DB) {
	var rows []model.Media

	if err := database.Find(&rows).Error; err != nil {
		panic(fmt.Errorf("failed to read media table, %w", err))
	}

	if len(rows) == 0 {
		fmt.Println("No media found in the database")
		return
	}

	for _, row := range rows {
		thumb := "-"
		if row.ThumbID != nil {
			thumb = *row.ThumbID
		}

		fmt.Printf("%d\t%s\t%s\t%s\t%s\t%s\n",
			row.ID, row.PublicID, row.FileType, row.FileID, thumb, row.CreatedAt.Format(time.RFC3339))
	}
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()

	lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level"))
	if err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
