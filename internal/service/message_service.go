package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/nurpe/printhub-quotes/internal/model"
)

type MessageService struct {
	messages MessageRepository
	identity *IdentityService
}

func NewMessageService(messages MessageRepository, identity *IdentityService) *MessageService {
	return &MessageService{messages: messages, identity: identity}
}

// Send appends a message to the request thread. The caller declares the
// sender type; both sides of the thread go through this path.
func (s *MessageService) Send(ctx context.Context, quoteRequestID int64, senderType model.SenderType, content string) (int64, error) {
	if senderType != model.SenderAdmin && senderType != model.SenderCustomer {
		return 0, fmt.Errorf("%w: unknown sender type %q", ErrInvalidInput, senderType)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return 0, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	message := model.Message{
		QuoteRequestID: quoteRequestID,
		SenderType:     senderType,
		Content:        content,
	}
	if err := s.messages.Create(ctx, &message); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: quote request %d", ErrNotFound, quoteRequestID)
		}
		return 0, err
	}
	return message.ID, nil
}

func (s *MessageService) ListForRequest(ctx context.Context, quoteRequestID int64) ([]model.Message, error) {
	return s.messages.ListForRequest(ctx, quoteRequestID)
}

func (s *MessageService) List(ctx context.Context, principal model.Principal) ([]model.Message, error) {
	if err := s.identity.requireAdmin(ctx, principal); err != nil {
		return nil, err
	}
	return s.messages.List(ctx)
}
