package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nurpe/printhub-quotes/internal/model"
)

// Repository contracts the services depend on. Implemented by the gorm
// repositories; absence is signalled with gorm.ErrRecordNotFound.

type QuoteRequestRepository interface {
	Create(ctx context.Context, req *model.QuoteRequest) error
	Get(ctx context.Context, id int64) (*model.QuoteRequest, error)
	List(ctx context.Context) ([]model.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id int64, status model.RequestStatus) error
}

type QuotationRepository interface {
	CreateWithParentStatus(ctx context.Context, quotation *model.Quotation, parentStatus model.RequestStatus) error
	Get(ctx context.Context, id int64) (*model.Quotation, error)
	List(ctx context.Context) ([]model.Quotation, error)
	SetStatusWithParent(ctx context.Context, id int64, status model.QuotationStatus, parentStatus model.RequestStatus) (*model.Quotation, error)
}

type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	ListForRequest(ctx context.Context, quoteRequestID int64) ([]model.Message, error)
	List(ctx context.Context) ([]model.Message, error)
}

type UserRepository interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	AdminCount(ctx context.Context) (int64, error)
	AddAdmin(ctx context.Context, userID, grantedBy uuid.UUID) error
	RemoveAdmin(ctx context.Context, userID uuid.UUID) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error)
	SaveProfile(ctx context.Context, profile *model.UserProfile) error
}
