package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/printhub-quotes/internal/model"
)

// RegisterGenerator renders the quote-request register as a spreadsheet.
type RegisterGenerator interface {
	Generate(requests []model.QuoteRequest) ([]byte, error)
}

type QuoteRequestService struct {
	requests QuoteRequestRepository
	identity *IdentityService
	excel    RegisterGenerator
}

func NewQuoteRequestService(requests QuoteRequestRepository, identity *IdentityService, excel RegisterGenerator) *QuoteRequestService {
	return &QuoteRequestService{
		requests: requests,
		identity: identity,
		excel:    excel,
	}
}

type SubmitQuoteRequestInput struct {
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	ServicesNeeded string
	DeadlineDate   time.Time
	Message        string
}

// Submit accepts a public quote request. The deadline is taken as given;
// customers may ask for dates already in the past and the admin sorts it out.
func (s *QuoteRequestService) Submit(ctx context.Context, input SubmitQuoteRequestInput) (int64, error) {
	name := strings.TrimSpace(input.CustomerName)
	email := strings.TrimSpace(input.CustomerEmail)
	phone := strings.TrimSpace(input.CustomerPhone)
	services := strings.TrimSpace(input.ServicesNeeded)

	if name == "" {
		return 0, fmt.Errorf("%w: customer_name is required", ErrInvalidInput)
	}
	if email == "" {
		return 0, fmt.Errorf("%w: customer_email is required", ErrInvalidInput)
	}
	if phone == "" {
		return 0, fmt.Errorf("%w: customer_phone is required", ErrInvalidInput)
	}
	if services == "" {
		return 0, fmt.Errorf("%w: services_needed is required", ErrInvalidInput)
	}

	request := model.QuoteRequest{
		CustomerName:   name,
		CustomerEmail:  email,
		CustomerPhone:  phone,
		ServicesNeeded: services,
		DeadlineDate:   input.DeadlineDate,
		Message:        strings.TrimSpace(input.Message),
		Status:         model.RequestStatusPending,
	}
	if err := s.requests.Create(ctx, &request); err != nil {
		return 0, err
	}
	return request.ID, nil
}

// Get returns nil without error when the id is unknown; absence is not an
// error for point lookups.
func (s *QuoteRequestService) Get(ctx context.Context, id int64) (*model.QuoteRequest, error) {
	request, err := s.requests.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return request, nil
}

func (s *QuoteRequestService) List(ctx context.Context, principal model.Principal) ([]model.QuoteRequest, error) {
	if err := s.identity.requireAdmin(ctx, principal); err != nil {
		return nil, err
	}
	return s.requests.List(ctx)
}

// UpdateStatus overwrites the request status unconditionally. The store does
// not enforce a transition graph; the quotation cascades are the only place
// transitions are driven automatically.
func (s *QuoteRequestService) UpdateStatus(ctx context.Context, principal model.Principal, id int64, status model.RequestStatus) error {
	if err := s.identity.requireAdmin(ctx, principal); err != nil {
		return err
	}
	if err := s.requests.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: quote request %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// ExportRegister renders every quote request into an xlsx register for the
// admin dashboard.
func (s *QuoteRequestService) ExportRegister(ctx context.Context, principal model.Principal) (*ExportResult, error) {
	if err := s.identity.requireAdmin(ctx, principal); err != nil {
		return nil, err
	}
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(requests)
	if err != nil {
		return nil, err
	}
	fileName := fmt.Sprintf("quote-requests-%s.xlsx", time.Now().UTC().Format("20060102"))
	return &ExportResult{FileName: fileName, Content: content}, nil
}
