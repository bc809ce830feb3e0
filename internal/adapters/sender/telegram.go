package sender

import (
	"context"
	"fmt"
	"fmbot/internal/core/domain"
	"strings"
	"unicode/utf16"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

//go:generate mockery --name TelegramBot

type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

type TelegramSender struct {
	bot TelegramBot
}

func NewTelegramSender(bot TelegramBot) *TelegramSender {
	return &TelegramSender{bot: bot}
}

// TelegramMessageLimit is the maximum length of a single Telegram text message.
const TelegramMessageLimit = 4096

const genericFailure = "Algo salió mal, probá de nuevo más tarde."

// SendMessageReply sends text as a reply, split into several messages if it is too
// long for one. The ID of the last message sent is returned.
func (s *TelegramSender) SendMessageReply(ctx context.Context, message *domain.Message, text string) (int, error) {
	var id int

	for _, chunk := range chunkText(text, TelegramMessageLimit) {
		sent, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          message.ChatID,
			Text:            chunk,
			ReplyParameters: replyTo(message),
		})
		if err != nil {
			return 0, fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
		}

		id = sent.ID
	}

	return id, nil
}

func (s *TelegramSender) SendHTMLReply(ctx context.Context, message *domain.Message, text string) (int, error) {
	sent, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          message.ChatID,
		Text:            text,
		ParseMode:       models.ParseModeHTML,
		ReplyParameters: replyTo(message),
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return sent.ID, nil
}

// NotifyAndReturnError logs err, replies with a generic failure notice and hands err back.
func (s *TelegramSender) NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error {
	log.Error().Err(err).Int("messageId", message.ID).Int64("chatId", message.ChatID).Msg("command failed")

	if _, sendErr := s.SendMessageReply(ctx, message, genericFailure); sendErr != nil {
		log.Error().Err(sendErr).Msg("failed to send error notification")
	}

	return err
}

func replyTo(message *domain.Message) *models.ReplyParameters {
	if message.ID == 0 {
		return nil
	}

	return &models.ReplyParameters{
		MessageID: message.ID,
		ChatID:    message.ChatID,
	}
}

// chunkText splits text into pieces of at most limit UTF-16 code units, the
// unit Telegram measures message length in. Runes are never split.
func chunkText(text string, limit int) []string {
	var chunks []string
	var b strings.Builder
	units := 0

	for _, r := range text {
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		if units+n > limit && b.Len() > 0 {
			chunks = append(chunks, b.String())
			b.Reset()
			units = 0
		}
		b.WriteRune(r)
		units += n
	}

	if b.Len() > 0 || len(chunks) == 0 {
		chunks = append(chunks, b.String())
	}

	return chunks
}
