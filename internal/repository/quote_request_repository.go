package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/printhub-quotes/internal/model"
)

type QuoteRequestRepository struct {
	db *gorm.DB
}

func NewQuoteRequestRepository(db *gorm.DB) *QuoteRequestRepository {
	return &QuoteRequestRepository{db: db}
}

func (r *QuoteRequestRepository) Create(ctx context.Context, req *model.QuoteRequest) error {
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *QuoteRequestRepository) Get(ctx context.Context, id int64) (*model.QuoteRequest, error) {
	var req model.QuoteRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *QuoteRequestRepository) List(ctx context.Context) ([]model.QuoteRequest, error) {
	var requests []model.QuoteRequest
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *QuoteRequestRepository) UpdateStatus(ctx context.Context, id int64, status model.RequestStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.QuoteRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
