// Package service holds the archive and ephemeral-cleanup services
// running alongside the update handlers
package service

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// TelegramAPI is the slice of the bot client the services and handlers
// actually call. *tgbotapi.BotAPI satisfies it, tests substitute fakes
type TelegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}
