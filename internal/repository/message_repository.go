package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/printhub-quotes/internal/model"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts the message after verifying the parent request exists.
func (r *MessageRepository) Create(ctx context.Context, message *model.Message) error {
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent model.QuoteRequest
		if err := tx.First(&parent, message.QuoteRequestID).Error; err != nil {
			return err
		}
		return tx.Create(message).Error
	})
}

func (r *MessageRepository) ListForRequest(ctx context.Context, quoteRequestID int64) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("quote_request_id = ?", quoteRequestID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepository) List(ctx context.Context) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
