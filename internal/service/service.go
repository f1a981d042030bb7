package service

import (
	"time"

	"github.com/ashkanv/shopdesk/internal/cache"
	"github.com/ashkanv/shopdesk/internal/domain"
	goldhandlers "github.com/ashkanv/shopdesk/internal/handlers/gold"
	paymenthandlers "github.com/ashkanv/shopdesk/internal/handlers/payments"
	sellerhandlers "github.com/ashkanv/shopdesk/internal/handlers/sellers"
	"github.com/ashkanv/shopdesk/internal/notify"
	"github.com/ashkanv/shopdesk/internal/repo"
	"github.com/ashkanv/shopdesk/internal/service/goldservice"
	"github.com/ashkanv/shopdesk/internal/service/paymentservice"
	"github.com/ashkanv/shopdesk/internal/service/sellerservice"
)

type Services struct {
	PaymentService paymenthandlers.Service
	GoldService    goldhandlers.Service
	SellerService  sellerhandlers.Service
}

// New wires the services with one reconciliation cache per tracked
// collection; both caches refetch through the repositories.
func New(r *repo.Repositories, notifier notify.Notifier, refreshInterval, inactivityTimeout time.Duration) *Services {
	paymentCache := cache.New[domain.Payment]("payments", r.PaymentRepo.List, refreshInterval, inactivityTimeout)
	goldCache := cache.New[domain.GoldPayment]("gold", r.GoldRepo.List, refreshInterval, inactivityTimeout)

	paymentService := paymentservice.New(r.PaymentRepo, r.SellerRepo, paymentCache, notifier)
	goldService := goldservice.New(r.GoldRepo, goldCache, notifier)
	sellerService := sellerservice.New(r.SellerRepo)

	return &Services{
		PaymentService: paymentService,
		GoldService:    goldService,
		SellerService:  sellerService,
	}
}
