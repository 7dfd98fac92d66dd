package service

import (
	"context"

	"github.com/google/uuid"
)

// TimerPrompt is a check-in reminder shown to the timer owner.
type TimerPrompt struct {
	TimerID uuid.UUID
	UserID  uuid.UUID
	Title   string
	Body    string
}

// PromptNotifier presents timer prompts on the user's own device.
type PromptNotifier interface {
	NotifyPrompt(ctx context.Context, prompt *TimerPrompt) error
}
