package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/printhub-quotes/internal/model"
)

type QuotationRepository struct {
	db *gorm.DB
}

func NewQuotationRepository(db *gorm.DB) *QuotationRepository {
	return &QuotationRepository{db: db}
}

// CreateWithParentStatus inserts the quotation and moves the parent request
// to parentStatus in one transaction. Returns gorm.ErrRecordNotFound when
// the parent request does not exist.
func (r *QuotationRepository) CreateWithParentStatus(
	ctx context.Context,
	quotation *model.Quotation,
	parentStatus model.RequestStatus,
) error {
	if quotation.CreatedAt.IsZero() {
		quotation.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent model.QuoteRequest
		if err := tx.First(&parent, quotation.QuoteRequestID).Error; err != nil {
			return err
		}
		if err := tx.Create(quotation).Error; err != nil {
			return err
		}
		return tx.Model(&model.QuoteRequest{}).
			Where("id = ?", parent.ID).
			Update("status", parentStatus).Error
	})
}

func (r *QuotationRepository) Get(ctx context.Context, id int64) (*model.Quotation, error) {
	var quotation model.Quotation
	if err := r.db.WithContext(ctx).First(&quotation, id).Error; err != nil {
		return nil, err
	}
	return &quotation, nil
}

func (r *QuotationRepository) List(ctx context.Context) ([]model.Quotation, error) {
	var quotations []model.Quotation
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&quotations).Error; err != nil {
		return nil, err
	}
	return quotations, nil
}

// SetStatusWithParent updates the quotation status and cascades parentStatus
// to the owning quote request atomically.
func (r *QuotationRepository) SetStatusWithParent(
	ctx context.Context,
	id int64,
	status model.QuotationStatus,
	parentStatus model.RequestStatus,
) (*model.Quotation, error) {
	var quotation model.Quotation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&quotation, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Quotation{}).
			Where("id = ?", id).
			Update("status", status).Error; err != nil {
			return err
		}
		quotation.Status = status
		return tx.Model(&model.QuoteRequest{}).
			Where("id = ?", quotation.QuoteRequestID).
			Update("status", parentStatus).Error
	})
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}
