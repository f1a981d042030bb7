package sellerservice

import (
	"context"

	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/ashkanv/shopdesk/pkg/validate"
	"go.uber.org/zap"
)

type Repo interface {
	Get(ctx context.Context, externalID string) (*domain.SellerInfo, error)
	Upsert(ctx context.Context, info *domain.SellerInfo) (created bool, err error)
}

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// Get returns a payout profile. Members may only read their own.
func (s *Service) Get(ctx context.Context, viewer domain.Viewer, externalID string) (*domain.SellerInfo, error) {
	if !viewer.Privileged() && viewer.ExternalID != externalID {
		return nil, domain.ErrForbidden
	}
	return s.repo.Get(ctx, externalID)
}

// Upsert creates or replaces a payout profile and returns what was stored.
// A member can only write their own profile; the external ID is pinned to
// the viewer for them.
func (s *Service) Upsert(ctx context.Context, viewer domain.Viewer, info domain.SellerInfo) (*domain.SellerInfo, Action, error) {
	if !viewer.Privileged() {
		info.ExternalID = viewer.ExternalID
	}
	if info.ExternalID == "" {
		return nil, "", domain.NewValidationError("externalID", "required")
	}
	if info.CardNumber != "" && !validate.IsCardNumber(info.CardNumber) {
		return nil, "", domain.NewValidationError("cardNumber", "failed checksum")
	}
	if info.IBAN != "" && !validate.IsIBAN(info.IBAN) {
		return nil, "", domain.NewValidationError("iban", "must be IR followed by 24 digits")
	}
	if info.Phone != "" && !validate.IsPhone(info.Phone) {
		return nil, "", domain.NewValidationError("phone", "must be 11 digits starting with 0")
	}

	created, err := s.repo.Upsert(ctx, &info)
	if err != nil {
		zap.L().Error("can't upsert seller info", zap.String("externalID", info.ExternalID), zap.Error(err))
		return nil, "", err
	}
	if created {
		return &info, ActionCreated, nil
	}
	return &info, ActionUpdated, nil
}
