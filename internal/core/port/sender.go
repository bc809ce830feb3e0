package port

import (
	"context"
	"fmbot/internal/core/domain"
)

type TextSender interface {
	// SendMessageReply sends a plain text reply to a specified message and returns the sent message ID and
	// an error if any.
	SendMessageReply(ctx context.Context, message *domain.Message, text string) (int, error)
	// SendHTMLReply sends a reply rendered with Telegram's HTML parse mode, with link previews enabled.
	SendHTMLReply(ctx context.Context, message *domain.Message, text string) (int, error)
	// NotifyAndReturnError logs the error, tells the user something went wrong and returns the error.
	NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error
}
