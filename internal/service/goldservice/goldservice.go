package goldservice

import (
	"context"
	"fmt"

	"github.com/ashkanv/shopdesk/internal/access"
	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/ashkanv/shopdesk/internal/notify"
	"go.uber.org/zap"
)

type Repo interface {
	List(ctx context.Context) ([]domain.GoldPayment, error)
	UpdateStatusForOwner(ctx context.Context, externalID string, status domain.Status, actor string) (int, error)
}

type Cache interface {
	Get(ctx context.Context) ([]domain.GoldPayment, error)
	Invalidate()
}

type Notifier interface {
	Notify(event notify.Event)
}

type Service struct {
	repo     Repo
	cache    Cache
	notifier Notifier
}

func New(repo Repo, cache Cache, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
	}
}

func (s *Service) List(ctx context.Context, viewer domain.Viewer) ([]domain.GoldPayment, error) {
	records, err := s.cache.Get(ctx)
	if err != nil {
		zap.L().Error("can't list gold payments", zap.Error(err))
		return nil, err
	}
	return access.ForViewer(records, viewer), nil
}

// Transition resolves the synthetic ID against the cached snapshot and then
// updates the status of every row belonging to that record's owner. The
// store has no per-row key, so one transition fans out to all of the
// owner's gold rows; that breadth is confined to this one operation.
func (s *Service) Transition(ctx context.Context, viewer domain.Viewer, id string, target domain.Status) (*domain.GoldPayment, error) {
	if !viewer.Privileged() {
		return nil, domain.ErrForbidden
	}

	record, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateStatusForOwner(ctx, record.ExternalID, target, viewer.Name)
	if err != nil {
		zap.L().Error("can't transition gold payment",
			zap.String("id", id), zap.String("externalID", record.ExternalID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("gold status updated for owner",
		zap.String("externalID", record.ExternalID), zap.Int("rows", updated))

	record.Status = target
	record.ChangedBy = viewer.Name

	s.cache.Invalidate()
	s.notifier.Notify(notify.Event{
		Action: notify.ActionStatusChanged,
		Actor:  viewer.Name,
		Gold:   record,
	})
	return record, nil
}

func (s *Service) resolve(ctx context.Context, id string) (*domain.GoldPayment, error) {
	records, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			rec := records[i]
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("gold payment %s: %w", id, domain.ErrNotFound)
}
