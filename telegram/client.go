// Copyright (c) 2025 BVK Chaitanya

// Package telegram sends order notifications to a Telegram chat.
package telegram

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type Client struct {
	secrets *Secrets

	bot *bot.Bot

	self *models.User
}

func New(ctx context.Context, secrets *Secrets) (*Client, error) {
	if err := secrets.Check(); err != nil {
		return nil, err
	}

	c := &Client{
		secrets: secrets.Clone(),
	}

	b, err := bot.New(secrets.BotToken, bot.WithSkipGetMe())
	if err != nil {
		return nil, err
	}
	c.bot = b

	self, err := b.GetMe(ctx)
	if err != nil {
		return nil, err
	}
	c.self = self
	return c, nil
}

func (c *Client) Close() error {
	return nil
}

func (c *Client) BotUserName() string {
	return c.self.Username
}

// SendMessage posts a timestamped message to the configured chat.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	msg := time.Now().Format("2006-01-02 15:04:05 MST") + " " + text
	slog.Info("sending notification", "message", text)

	p := &bot.SendMessageParams{
		ChatID: c.secrets.ChatID,
		Text:   msg,
	}
	if _, err := c.bot.SendMessage(ctx, p); err != nil {
		return err
	}
	return nil
}
