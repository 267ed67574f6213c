// Copyright (c) 2025 BVK Chaitanya

package telegram

import (
	"fmt"
)

type Secrets struct {
	BotToken string `json:"token"`

	// ChatID is the chat receiving order notifications. Telegram only
	// reveals a chat id after the user messages the bot once.
	ChatID int64 `json:"chat"`
}

func (v *Secrets) Check() error {
	if len(v.BotToken) == 0 {
		return fmt.Errorf("bot token cannot be empty")
	}
	if v.ChatID == 0 {
		return fmt.Errorf("chat id cannot be zero")
	}
	return nil
}

func (v *Secrets) Clone() *Secrets {
	return &Secrets{
		BotToken: v.BotToken,
		ChatID:   v.ChatID,
	}
}
