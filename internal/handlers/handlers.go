package handlers

import (
	"net/http"

	_ "github.com/ashkanv/shopdesk/docs"
	goldhandlers "github.com/ashkanv/shopdesk/internal/handlers/gold"
	paymenthandlers "github.com/ashkanv/shopdesk/internal/handlers/payments"
	sellerhandlers "github.com/ashkanv/shopdesk/internal/handlers/sellers"
	"github.com/ashkanv/shopdesk/internal/service"
	"github.com/ashkanv/shopdesk/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type PaymentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	BatchStatus(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type GoldHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
}

type SellerHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	PaymentHandler PaymentHandler
	GoldHandler    GoldHandler
	SellerHandler  SellerHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		GoldHandler:    goldhandlers.New(s.GoldService),
		SellerHandler:  sellerhandlers.New(s.SellerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Route("/payments", func(r chi.Router) {
			r.Get("/", h.PaymentHandler.List)
			r.Post("/", h.PaymentHandler.Create)
			r.Post("/status", h.PaymentHandler.BatchStatus)
			r.Route("/{id}", func(r chi.Router) {
				r.Patch("/", h.PaymentHandler.Update)
				r.Delete("/", h.PaymentHandler.Cancel)
				r.Post("/status", h.PaymentHandler.SetStatus)
			})
		})
		r.Route("/gold", func(r chi.Router) {
			r.Get("/", h.GoldHandler.List)
			r.Post("/{id}/status", h.GoldHandler.SetStatus)
		})
		r.Route("/sellers", func(r chi.Router) {
			r.Put("/", h.SellerHandler.Upsert)
			r.Get("/{externalID}", h.SellerHandler.Get)
		})
	})

	return r
}
