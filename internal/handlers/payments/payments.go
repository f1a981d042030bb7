package payments

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/ashkanv/shopdesk/internal/dto"
	"github.com/ashkanv/shopdesk/internal/repo/rowcodec"
	"github.com/ashkanv/shopdesk/internal/service/paymentservice"
	"github.com/ashkanv/shopdesk/pkg/auth"
	"github.com/ashkanv/shopdesk/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, viewer domain.Viewer, in paymentservice.CreateInput) (*domain.Payment, error)
	List(ctx context.Context, viewer domain.Viewer) ([]domain.Payment, error)
	Update(ctx context.Context, viewer domain.Viewer, id string, patch domain.PaymentPatch) (*domain.Payment, error)
	Transition(ctx context.Context, viewer domain.Viewer, id string, target domain.Status) (*domain.Payment, error)
	Cancel(ctx context.Context, viewer domain.Viewer, id string) (*domain.Payment, error)
	BatchTransition(ctx context.Context, viewer domain.Viewer, ids []string, target domain.Status) ([]paymentservice.BatchResult, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// List godoc
//
//	@Summary		List payments
//	@Description	Returns payments visible to the viewer; members only see their own.
//	@Tags			Payments
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Record store unavailable"
//	@Router			/api/payments [get]
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.ViewerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	payments, err := h.paymentService.List(r.Context(), viewer)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := make([]dto.PaymentResponseDTO, 0, len(payments))
	for i := range payments {
		response = append(response, toDTO(&payments[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Create godoc
//
//	@Summary		Create a payment
//	@Description	Records a new sale with status forced to Pending. Support role only.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			payment	body	dto.CreatePaymentRequestDTO	true	"Payment to create"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.PaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Validation failure"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Support role required"
//	@Failure		500	{object}	utils.Response	"Record store unavailable"
//	@Router			/api/payments [post]
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.ViewerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	req, err := utils.DecodeAndValidate[dto.CreatePaymentRequestDTO](r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	amount, _ := strconv.ParseFloat(req.Amount, 64)
	price, _ := strconv.ParseFloat(req.Price, 64)

	payment, err := h.paymentService.Create(r.Context(), viewer, paymentservice.CreateInput{
		ID:            req.ID,
		RequesterName: req.RequesterName,
		ExternalID:    req.ExternalID,
		Amount:        amount,
		Price:         price,
		CardNumber:    req.CardNumber,
		IBAN:          req.IBAN,
		AccountName:   req.AccountName,
		Phone:         req.Phone,
		Duration:      req.Duration,
		Note:          req.Note,
		Game:          req.Game,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(payment))
}

// Update godoc
//
//	@Summary		Edit a payment
//	@Description	Partial update; absent fields keep their stored value. Support role only.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"Payment ID"
//	@Param			payment	body	dto.UpdatePaymentRequestDTO	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Validation failure"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Support role required"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Record store unavailable"
//	@Router			/api/payments/{id} [patch]
func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.ViewerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	req, err := utils.DecodeAndValidate[dto.UpdatePaymentRequestDTO](r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	payment, err := h.paymentService.Update(r.Context(), viewer, chi.URLParam(r, "id"), toPatch(req))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(payment))
}

// SetStatus godoc
//
//	@Summary		Change a payment's status
//	@Description	Writes only the status cells; other fields stay untouched. Support role only.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string				true	"Payment ID"
//	@Param			status	body	dto.StatusRequestDTO	true	"Target status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Unknown status"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Support role required"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Record store unavailable"
//	@Router			/api/payments/{id}/status [post]
func (h *PaymentHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.ViewerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	req, err := utils.DecodeAndValidate[dto.StatusRequestDTO](r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	target, ok := domain.ParseStatus(req.Status)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown status")
		return
	}

	payment, err := h.paymentService.Transition(r.Context(), viewer, chi.URLParam(r, "id"), target)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(payment))
}

// BatchStatus godoc
//
//	@Summary		Change many payments' status
//	@Description	Applies one target status to every listed ID; IDs settle independently and the response reports each outcome.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			batch	body	dto.BatchStatusRequestDTO	true	"IDs and target status"
//	@Security		BearerAuth
//	@Success		207	{object}	dto.BatchStatusResponseDTO
//	@Failure		400	{object}	utils.Response	"Validation failure"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Support role required"
//	@Router			/api/payments/status [post]
func (h *PaymentHandler) BatchStatus(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.ViewerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	req, err := utils.DecodeAndValidate[dto.BatchStatusRequestDTO](r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	target, ok := domain.ParseStatus(req.Status)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown status")
		return
	}

	results, err := h.paymentService.BatchTransition(r.Context(), viewer, req.IDs, target)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := dto.BatchStatusResponseDTO{Results: make([]dto.BatchItemDTO, 0, len(results))}
	for _, res := range results {
		item := dto.BatchItemDTO{ID: res.ID, OK: res.Err == nil}
		if res.Err != nil {
			item.Error = res.Err.Error()
		}
		if res.Payment != nil {
			d := toDTO(res.Payment)
			item.Payment = &d
		}
		response.Results = append(response.Results, item)
	}
	utils.RespondWithJSON(w, http.StatusMultiStatus, response)
}

// Cancel godoc
//
//	@Summary		Cancel a payment
//	@Description	Deletion is modeled as a transition to Cancelled; rows are never removed.
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path	string	true	"Payment ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Support role required"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Record store unavailable"
//	@Router			/api/payments/{id} [delete]
func (h *PaymentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.ViewerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	payment, err := h.paymentService.Cancel(r.Context(), viewer, chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(payment))
}

func respondServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondWithError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, domain.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Support role required")
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Payment not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toDTO(p *domain.Payment) dto.PaymentResponseDTO {
	return dto.PaymentResponseDTO{
		ID:            p.ID,
		RequesterName: p.RequesterName,
		ExternalID:    p.ExternalID,
		Amount:        p.Amount,
		Price:         p.Price,
		TotalRial:     p.TotalRial,
		CardNumber:    p.CardNumber,
		IBAN:          p.IBAN,
		AccountName:   p.AccountName,
		Phone:         p.Phone,
		Duration:      p.Duration,
		CreatedAt:     rowcodec.FormatTime(p.CreatedAt),
		DueDate:       rowcodec.FormatTime(p.DueDate),
		Note:          p.Note,
		Game:          p.Game,
		Status:        string(p.Status),
		Paid:          p.Paid,
		ChangedBy:     p.ChangedBy,
	}
}

func toPatch(req *dto.UpdatePaymentRequestDTO) domain.PaymentPatch {
	patch := domain.PaymentPatch{
		RequesterName: req.RequesterName,
		CardNumber:    req.CardNumber,
		IBAN:          req.IBAN,
		AccountName:   req.AccountName,
		Phone:         req.Phone,
		Duration:      req.Duration,
		Note:          req.Note,
		Game:          req.Game,
	}
	if req.Amount != nil {
		if v, err := strconv.ParseFloat(*req.Amount, 64); err == nil {
			patch.Amount = &v
		}
	}
	if req.Price != nil {
		if v, err := strconv.ParseFloat(*req.Price, 64); err == nil {
			patch.Price = &v
		}
	}
	return patch
}
