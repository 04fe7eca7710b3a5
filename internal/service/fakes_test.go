package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/printhub-quotes/internal/config"
	"github.com/nurpe/printhub-quotes/internal/model"
)

// In-memory repository fakes. Absence is signalled with
// gorm.ErrRecordNotFound, matching the real repositories.

type fakeQuoteRequestRepo struct {
	nextID   int64
	requests map[int64]*model.QuoteRequest
	order    []int64
}

func newFakeQuoteRequestRepo() *fakeQuoteRequestRepo {
	return &fakeQuoteRequestRepo{requests: map[int64]*model.QuoteRequest{}}
}

func (f *fakeQuoteRequestRepo) Create(_ context.Context, req *model.QuoteRequest) error {
	f.nextID++
	req.ID = f.nextID
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}
	stored := *req
	f.requests[req.ID] = &stored
	f.order = append(f.order, req.ID)
	return nil
}

func (f *fakeQuoteRequestRepo) Get(_ context.Context, id int64) (*model.QuoteRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *req
	return &copied, nil
}

func (f *fakeQuoteRequestRepo) List(_ context.Context) ([]model.QuoteRequest, error) {
	out := make([]model.QuoteRequest, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.requests[id])
	}
	return out, nil
}

func (f *fakeQuoteRequestRepo) UpdateStatus(_ context.Context, id int64, status model.RequestStatus) error {
	req, ok := f.requests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	req.Status = status
	return nil
}

type fakeQuotationRepo struct {
	parents    *fakeQuoteRequestRepo
	nextID     int64
	quotations map[int64]*model.Quotation
	order      []int64
}

func newFakeQuotationRepo(parents *fakeQuoteRequestRepo) *fakeQuotationRepo {
	return &fakeQuotationRepo{parents: parents, quotations: map[int64]*model.Quotation{}}
}

func (f *fakeQuotationRepo) CreateWithParentStatus(ctx context.Context, quotation *model.Quotation, parentStatus model.RequestStatus) error {
	if _, ok := f.parents.requests[quotation.QuoteRequestID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.nextID++
	quotation.ID = f.nextID
	if quotation.CreatedAt.IsZero() {
		quotation.CreatedAt = time.Now().UTC()
	}
	stored := *quotation
	f.quotations[quotation.ID] = &stored
	f.order = append(f.order, quotation.ID)
	return f.parents.UpdateStatus(ctx, quotation.QuoteRequestID, parentStatus)
}

func (f *fakeQuotationRepo) Get(_ context.Context, id int64) (*model.Quotation, error) {
	quotation, ok := f.quotations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *quotation
	return &copied, nil
}

func (f *fakeQuotationRepo) List(_ context.Context) ([]model.Quotation, error) {
	out := make([]model.Quotation, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.quotations[id])
	}
	return out, nil
}

func (f *fakeQuotationRepo) SetStatusWithParent(ctx context.Context, id int64, status model.QuotationStatus, parentStatus model.RequestStatus) (*model.Quotation, error) {
	quotation, ok := f.quotations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	quotation.Status = status
	if err := f.parents.UpdateStatus(ctx, quotation.QuoteRequestID, parentStatus); err != nil {
		return nil, err
	}
	copied := *quotation
	return &copied, nil
}

type fakeMessageRepo struct {
	parents  *fakeQuoteRequestRepo
	nextID   int64
	messages []model.Message
}

func newFakeMessageRepo(parents *fakeQuoteRequestRepo) *fakeMessageRepo {
	return &fakeMessageRepo{parents: parents}
}

func (f *fakeMessageRepo) Create(_ context.Context, message *model.Message) error {
	if _, ok := f.parents.requests[message.QuoteRequestID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.nextID++
	message.ID = f.nextID
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeMessageRepo) ListForRequest(_ context.Context, quoteRequestID int64) ([]model.Message, error) {
	var out []model.Message
	for _, message := range f.messages {
		if message.QuoteRequestID == quoteRequestID {
			out = append(out, message)
		}
	}
	sortMessages(out)
	return out, nil
}

func (f *fakeMessageRepo) List(_ context.Context) ([]model.Message, error) {
	out := make([]model.Message, len(f.messages))
	copy(out, f.messages)
	sortMessages(out)
	return out, nil
}

func sortMessages(messages []model.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
}

type fakeUserRepo struct {
	admins   map[uuid.UUID]uuid.UUID
	profiles map[uuid.UUID]model.UserProfile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		admins:   map[uuid.UUID]uuid.UUID{},
		profiles: map[uuid.UUID]model.UserProfile{},
	}
}

func (f *fakeUserRepo) IsAdmin(_ context.Context, userID uuid.UUID) (bool, error) {
	_, ok := f.admins[userID]
	return ok, nil
}

func (f *fakeUserRepo) AdminCount(_ context.Context) (int64, error) {
	return int64(len(f.admins)), nil
}

func (f *fakeUserRepo) AddAdmin(_ context.Context, userID, grantedBy uuid.UUID) error {
	f.admins[userID] = grantedBy
	return nil
}

func (f *fakeUserRepo) RemoveAdmin(_ context.Context, userID uuid.UUID) error {
	delete(f.admins, userID)
	return nil
}

func (f *fakeUserRepo) GetProfile(_ context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

func (f *fakeUserRepo) SaveProfile(_ context.Context, profile *model.UserProfile) error {
	profile.UpdatedAt = time.Now().UTC()
	f.profiles[profile.UserID] = *profile
	return nil
}

type stubRegisterGenerator struct{}

func (stubRegisterGenerator) Generate([]model.QuoteRequest) ([]byte, error) {
	return []byte("xlsx"), nil
}

type stubDocumentGenerator struct{}

func (stubDocumentGenerator) Generate(model.QuotationDocument) ([]byte, error) {
	return []byte("pdf"), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{BootstrapAdmin: true},
		Shop: config.ShopConfig{Name: "PrintHub", Phone: "+7 700 000 0000"},
	}
}

func adminIdentity(users *fakeUserRepo) (*IdentityService, model.Principal) {
	admin := model.Principal{UserID: uuid.New(), Name: "Admin"}
	users.admins[admin.UserID] = admin.UserID
	return NewIdentityService(users, testConfig()), admin
}
