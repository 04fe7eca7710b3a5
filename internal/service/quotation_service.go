package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/printhub-quotes/internal/config"
	"github.com/nurpe/printhub-quotes/internal/model"
)

// DocumentGenerator renders a quotation into a printable PDF.
type DocumentGenerator interface {
	Generate(doc model.QuotationDocument) ([]byte, error)
}

type QuotationService struct {
	quotations QuotationRepository
	requests   QuoteRequestRepository
	identity   *IdentityService
	pdf        DocumentGenerator
	shop       model.ShopIdentity
}

func NewQuotationService(
	quotations QuotationRepository,
	requests QuoteRequestRepository,
	identity *IdentityService,
	pdf DocumentGenerator,
	cfg *config.Config,
) *QuotationService {
	return &QuotationService{
		quotations: quotations,
		requests:   requests,
		identity:   identity,
		pdf:        pdf,
		shop: model.ShopIdentity{
			Name:    cfg.Shop.Name,
			Address: cfg.Shop.Address,
			Phone:   cfg.Shop.Phone,
			Email:   cfg.Shop.Email,
		},
	}
}

type CreateQuotationInput struct {
	QuoteRequestID int64
	PriceAmount    int64
	Description    string
	ValidityDate   time.Time
}

// Create issues a quotation against an existing request and moves the request
// to quoted in the same transaction.
func (s *QuotationService) Create(ctx context.Context, principal model.Principal, input CreateQuotationInput) (int64, error) {
	if err := s.identity.requireAdmin(ctx, principal); err != nil {
		return 0, err
	}
	if input.PriceAmount < 0 {
		return 0, fmt.Errorf("%w: price_amount must not be negative", ErrInvalidInput)
	}

	quotation := model.Quotation{
		QuoteRequestID: input.QuoteRequestID,
		PriceAmount:    input.PriceAmount,
		Description:    strings.TrimSpace(input.Description),
		ValidityDate:   input.ValidityDate,
		Status:         model.QuotationStatusPending,
	}
	err := s.quotations.CreateWithParentStatus(ctx, &quotation, model.RequestStatusQuoted)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: quote request %d", ErrNotFound, input.QuoteRequestID)
		}
		return 0, err
	}
	return quotation.ID, nil
}

func (s *QuotationService) Get(ctx context.Context, id int64) (*model.Quotation, error) {
	quotation, err := s.quotations.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return quotation, nil
}

func (s *QuotationService) List(ctx context.Context, principal model.Principal) ([]model.Quotation, error) {
	if err := s.identity.requireAdmin(ctx, principal); err != nil {
		return nil, err
	}
	return s.quotations.List(ctx)
}

// Accept marks the quotation accepted and cascades the status to the parent
// request. Calling it on an already-terminal quotation re-applies the same
// values rather than failing.
func (s *QuotationService) Accept(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, model.QuotationStatusAccepted, model.RequestStatusAccepted)
}

// Decline is symmetric to Accept.
func (s *QuotationService) Decline(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, model.QuotationStatusDeclined, model.RequestStatusDeclined)
}

func (s *QuotationService) setStatus(ctx context.Context, id int64, status model.QuotationStatus, parentStatus model.RequestStatus) error {
	_, err := s.quotations.SetStatusWithParent(ctx, id, status, parentStatus)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: quotation %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}

// RenderPDF builds the printable quotation document. Read policy matches Get:
// anyone holding the id may fetch it.
func (s *QuotationService) RenderPDF(ctx context.Context, id int64) (*ExportResult, error) {
	quotation, err := s.quotations.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: quotation %d", ErrNotFound, id)
		}
		return nil, err
	}
	request, err := s.requests.Get(ctx, quotation.QuoteRequestID)
	if err != nil {
		return nil, err
	}

	content, err := s.pdf.Generate(model.QuotationDocument{
		Quotation: *quotation,
		Request:   *request,
		Shop:      s.shop,
	})
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("quotation-%d.pdf", quotation.ID),
		Content:  content,
	}, nil
}
