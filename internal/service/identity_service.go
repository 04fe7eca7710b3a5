package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/printhub-quotes/internal/config"
	"github.com/nurpe/printhub-quotes/internal/model"
)

// IdentityService resolves caller roles and owns the admin set and user
// profiles. A caller is admin when present in the admin set, user when it
// has a saved profile, guest otherwise.
type IdentityService struct {
	users          UserRepository
	bootstrapAdmin bool
}

func NewIdentityService(users UserRepository, cfg *config.Config) *IdentityService {
	return &IdentityService{
		users:          users,
		bootstrapAdmin: cfg.Auth.BootstrapAdmin,
	}
}

func (s *IdentityService) RoleOf(ctx context.Context, principal model.Principal) (model.Role, error) {
	if principal.Anonymous() {
		return model.RoleGuest, nil
	}
	isAdmin, err := s.users.IsAdmin(ctx, principal.UserID)
	if err != nil {
		return "", err
	}
	if isAdmin {
		return model.RoleAdmin, nil
	}
	_, err = s.users.GetProfile(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.RoleGuest, nil
		}
		return "", err
	}
	return model.RoleUser, nil
}

func (s *IdentityService) IsAdmin(ctx context.Context, principal model.Principal) (bool, error) {
	if principal.Anonymous() {
		return false, nil
	}
	return s.users.IsAdmin(ctx, principal.UserID)
}

// AssignRole grants or revokes admin membership for target. Only admins may
// call it, except that the very first assignment is open to any authenticated
// caller when bootstrap is enabled and the admin set is empty.
func (s *IdentityService) AssignRole(ctx context.Context, caller model.Principal, target uuid.UUID, role model.Role) error {
	if caller.Anonymous() {
		return ErrPermissionDenied
	}
	if target == uuid.Nil {
		return fmt.Errorf("%w: target user is required", ErrInvalidInput)
	}

	isAdmin, err := s.users.IsAdmin(ctx, caller.UserID)
	if err != nil {
		return err
	}
	if !isAdmin {
		if !s.bootstrapAdmin {
			return ErrPermissionDenied
		}
		count, err := s.users.AdminCount(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrPermissionDenied
		}
	}

	if role == model.RoleAdmin {
		return s.users.AddAdmin(ctx, target, caller.UserID)
	}
	return s.users.RemoveAdmin(ctx, target)
}

func (s *IdentityService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (s *IdentityService) CallerProfile(ctx context.Context, principal model.Principal) (*model.UserProfile, error) {
	if principal.Anonymous() {
		return nil, ErrPermissionDenied
	}
	return s.GetProfile(ctx, principal.UserID)
}

// SaveCallerProfile upserts the caller's own profile. Profiles for other
// users cannot be written through this path.
func (s *IdentityService) SaveCallerProfile(ctx context.Context, principal model.Principal, name string) error {
	if principal.Anonymous() {
		return ErrPermissionDenied
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return s.users.SaveProfile(ctx, &model.UserProfile{
		UserID: principal.UserID,
		Name:   name,
	})
}

func (s *IdentityService) requireAdmin(ctx context.Context, principal model.Principal) error {
	isAdmin, err := s.IsAdmin(ctx, principal)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrPermissionDenied
	}
	return nil
}
