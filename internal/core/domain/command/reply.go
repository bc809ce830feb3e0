package command

import (
	"context"
	"fmt"
	"fmbot/internal/core/domain"
	"fmbot/internal/core/port"
)

func sendReply(ctx context.Context, sender port.TextSender, message *domain.Message, text string) error {
	_, err := sender.SendMessageReply(ctx, message, text)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}
