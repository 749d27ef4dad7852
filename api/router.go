// Package api contains the webhook server used in push-delivery mode
package api

import (
	"televault/media-bot/internal/bot"
	"televault/media-bot/pkg/middleware"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type API struct {
	Router *gin.Engine
	Bot    *bot.Bot
}

// NewRouter wires the gin engine that receives Telegram update
// callbacks when polling is disabled
func NewRouter(b *bot.Bot) *API {
	a := &API{Bot: b}

	router := gin.New()
	a.Router = router

	router.Use(
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat 	-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)
	}

	// POST /bot/:token 		-> Receives update callbacks from Telegram
	router.POST("/bot/:token", a.Webhook)

	return a
}
