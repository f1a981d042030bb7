package paymentservice

import (
	"context"
	"time"

	"github.com/ashkanv/shopdesk/internal/access"
	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/ashkanv/shopdesk/internal/duedate"
	"github.com/ashkanv/shopdesk/internal/notify"
	"github.com/ashkanv/shopdesk/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// rialPerToman converts the per-unit price into the stored Rial total.
const rialPerToman = 10

type Repo interface {
	List(ctx context.Context) ([]domain.Payment, error)
	Get(ctx context.Context, id string) (*domain.Payment, error)
	Append(ctx context.Context, p *domain.Payment) error
	Update(ctx context.Context, id string, patch domain.PaymentPatch) (*domain.Payment, error)
	SetStatus(ctx context.Context, id string, status domain.Status, actor string) (*domain.Payment, error)
}

type SellerRepo interface {
	Get(ctx context.Context, externalID string) (*domain.SellerInfo, error)
}

type Cache interface {
	Get(ctx context.Context) ([]domain.Payment, error)
	Invalidate()
}

type Notifier interface {
	Notify(event notify.Event)
}

type Service struct {
	repo     Repo
	sellers  SellerRepo
	cache    Cache
	notifier Notifier
	now      func() time.Time
	newID    func() string
}

func New(repo Repo, sellers SellerRepo, cache Cache, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		sellers:  sellers,
		cache:    cache,
		notifier: notifier,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// CreateInput is everything a privileged actor supplies for a new payment.
// ID may be empty, in which case one is generated.
type CreateInput struct {
	ID            string
	RequesterName string
	ExternalID    string
	Amount        float64
	Price         float64
	CardNumber    string
	IBAN          string
	AccountName   string
	Phone         string
	Duration      duedate.Spec
	Note          string
	Game          string
}

// Create validates the input, fills blank bank details from the requester's
// seller profile, derives the total and due date, and appends the record
// with status forced to Pending.
func (s *Service) Create(ctx context.Context, viewer domain.Viewer, in CreateInput) (*domain.Payment, error) {
	if !viewer.Privileged() {
		return nil, domain.ErrForbidden
	}
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	p := &domain.Payment{
		ID:            in.ID,
		RequesterName: in.RequesterName,
		ExternalID:    in.ExternalID,
		Amount:        in.Amount,
		Price:         in.Price,
		TotalRial:     in.Amount * in.Price * rialPerToman,
		CardNumber:    in.CardNumber,
		IBAN:          in.IBAN,
		AccountName:   in.AccountName,
		Phone:         in.Phone,
		Duration:      in.Duration.String(),
		Note:          in.Note,
		Game:          in.Game,
		Status:        domain.StatusPending,
		Paid:          false,
	}
	if p.ID == "" {
		p.ID = s.newID()
	}
	p.CreatedAt = s.now()
	p.DueDate = duedate.Derive(p.CreatedAt, in.Duration)

	s.fillFromSellerProfile(ctx, p)

	if err := s.repo.Append(ctx, p); err != nil {
		zap.L().Error("can't create payment", zap.String("id", p.ID), zap.Error(err))
		return nil, err
	}

	s.cache.Invalidate()
	s.notifier.Notify(notify.Event{
		Action:  notify.ActionCreated,
		Actor:   viewer.Name,
		Payment: p,
	})
	return p, nil
}

// fillFromSellerProfile backfills blank bank fields from the requester's
// stored payout profile. Best effort: a missing profile or an unreachable
// store must not block creation.
func (s *Service) fillFromSellerProfile(ctx context.Context, p *domain.Payment) {
	if p.CardNumber != "" && p.IBAN != "" && p.AccountName != "" && p.Phone != "" {
		return
	}
	info, err := s.sellers.Get(ctx, p.ExternalID)
	if err != nil {
		zap.L().Debug("no seller profile to backfill from", zap.String("externalID", p.ExternalID), zap.Error(err))
		return
	}
	if p.CardNumber == "" {
		p.CardNumber = info.CardNumber
	}
	if p.IBAN == "" {
		p.IBAN = info.IBAN
	}
	if p.AccountName == "" {
		p.AccountName = info.AccountName
	}
	if p.Phone == "" {
		p.Phone = info.Phone
	}
}

// List serves from the cache and restricts the result to what the viewer
// may see.
func (s *Service) List(ctx context.Context, viewer domain.Viewer) ([]domain.Payment, error) {
	payments, err := s.cache.Get(ctx)
	if err != nil {
		zap.L().Error("can't list payments", zap.Error(err))
		return nil, err
	}
	return access.ForViewer(payments, viewer), nil
}

// Update applies a partial edit. A new duration re-derives the due date
// from the stored creation timestamp; nothing else ever recomputes it.
func (s *Service) Update(ctx context.Context, viewer domain.Viewer, id string, patch domain.PaymentPatch) (*domain.Payment, error) {
	if !viewer.Privileged() {
		return nil, domain.ErrForbidden
	}
	if err := validateBankFields(deref(patch.CardNumber), deref(patch.IBAN), deref(patch.Phone)); err != nil {
		return nil, err
	}

	if patch.Amount != nil || patch.Price != nil || patch.Duration != nil {
		current, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		amount := current.Amount
		if patch.Amount != nil {
			amount = *patch.Amount
		}
		price := current.Price
		if patch.Price != nil {
			price = *patch.Price
		}
		total := amount * price * rialPerToman
		patch.TotalRial = &total

		if patch.Duration != nil {
			due := duedate.Derive(current.CreatedAt, duedate.FromText(*patch.Duration))
			patch.DueDate = &due
		}
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		zap.L().Error("can't update payment", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.cache.Invalidate()
	s.notifier.Notify(notify.Event{
		Action:  notify.ActionUpdated,
		Actor:   viewer.Name,
		Payment: updated,
	})
	return updated, nil
}

// Transition moves a payment to the target status. All six directed
// transitions between the three statuses are legal; "deleting" a payment is
// a transition to Cancelled.
func (s *Service) Transition(ctx context.Context, viewer domain.Viewer, id string, target domain.Status) (*domain.Payment, error) {
	if !viewer.Privileged() {
		return nil, domain.ErrForbidden
	}

	updated, err := s.repo.SetStatus(ctx, id, target, viewer.Name)
	if err != nil {
		zap.L().Error("can't transition payment", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.cache.Invalidate()
	s.notifier.Notify(notify.Event{
		Action:  notify.ActionStatusChanged,
		Actor:   viewer.Name,
		Payment: updated,
	})
	return updated, nil
}

// Cancel is the delete path; records are never removed from the store.
func (s *Service) Cancel(ctx context.Context, viewer domain.Viewer, id string) (*domain.Payment, error) {
	return s.Transition(ctx, viewer, id, domain.StatusCancelled)
}

// BatchResult reports one ID's outcome within a batch transition.
type BatchResult struct {
	ID      string
	Payment *domain.Payment
	Err     error
}

// BatchTransition fans the per-ID writes out concurrently and settles them
// all: a failure on one ID never cancels the others.
func (s *Service) BatchTransition(ctx context.Context, viewer domain.Viewer, ids []string, target domain.Status) ([]BatchResult, error) {
	if !viewer.Privileged() {
		return nil, domain.ErrForbidden
	}

	results := make([]BatchResult, len(ids))
	var g errgroup.Group
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			updated, err := s.repo.SetStatus(ctx, id, target, viewer.Name)
			results[i] = BatchResult{ID: id, Payment: updated, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	s.cache.Invalidate()
	for _, res := range results {
		if res.Err == nil {
			s.notifier.Notify(notify.Event{
				Action:  notify.ActionStatusChanged,
				Actor:   viewer.Name,
				Payment: res.Payment,
			})
		}
	}
	return results, nil
}

func validateCreate(in CreateInput) error {
	if in.ExternalID == "" {
		return domain.NewValidationError("externalID", "required")
	}
	if in.Amount <= 0 {
		return domain.NewValidationError("amount", "must be positive")
	}
	if in.Price <= 0 {
		return domain.NewValidationError("price", "must be positive")
	}
	if in.Duration.IsZero() {
		return domain.NewValidationError("duration", "required")
	}
	return validateBankFields(in.CardNumber, in.IBAN, in.Phone)
}

func validateBankFields(card, iban, phone string) error {
	if card != "" && !validate.IsCardNumber(card) {
		return domain.NewValidationError("cardNumber", "failed checksum")
	}
	if iban != "" && !validate.IsIBAN(iban) {
		return domain.NewValidationError("iban", "must be IR followed by 24 digits")
	}
	if phone != "" && !validate.IsPhone(phone) {
		return domain.NewValidationError("phone", "must be 11 digits starting with 0")
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
