package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Webhook consumes a single Telegram update pushed to the callback
// address. The bot token doubles as the path secret, anything else 404s
// so the endpoint doesn't advertise itself
func (a *API) Webhook(c *gin.Context) {
	if c.Param("token") != viper.GetString("bot.token") {
		c.Status(http.StatusNotFound)
		return
	}

	var update tgbotapi.Update

	if err := c.ShouldBindJSON(&update); err != nil {
		zap.L().Warn("Failed to decode update payload",
			zap.String("request_id", c.GetString("requestID")),
			zap.Error(err),
		)

		c.Status(http.StatusBadRequest)
		return
	}

	a.Bot.Dispatch(update)

	c.Status(http.StatusOK)
}
