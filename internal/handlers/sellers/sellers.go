package sellers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/ashkanv/shopdesk/internal/dto"
	"github.com/ashkanv/shopdesk/internal/service/sellerservice"
	"github.com/ashkanv/shopdesk/pkg/auth"
	"github.com/ashkanv/shopdesk/pkg/utils"
)

type Service interface {
	Get(ctx context.Context, viewer domain.Viewer, externalID string) (*domain.SellerInfo, error)
	Upsert(ctx context.Context, viewer domain.Viewer, info domain.SellerInfo) (*domain.SellerInfo, sellerservice.Action, error)
}

type SellerHandler struct {
	sellerService Service
}

func New(sellerService Service) *SellerHandler {
	return &SellerHandler{
		sellerService: sellerService,
	}
}

// Get godoc
//
//	@Summary		Get a payout profile
//	@Description	Members may only read their own profile.
//	@Tags			Sellers
//	@Produce		json
//	@Param			externalID	path	string	true	"External user ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SellerResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not your profile"
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Failure		500	{object}	utils.Response	"Record store unavailable"
//	@Router			/api/sellers/{externalID} [get]
func (h *SellerHandler) Get(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.ViewerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	info, err := h.sellerService.Get(r.Context(), viewer, chi.URLParam(r, "externalID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(info))
}

// Upsert godoc
//
//	@Summary		Create or replace a payout profile
//	@Description	At most one profile exists per external ID. Members always write their own.
//	@Tags			Sellers
//	@Accept			json
//	@Produce		json
//	@Param			seller	body	dto.UpsertSellerRequestDTO	true	"Profile to store"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SellerResponseDTO	"Profile updated"
//	@Success		201	{object}	dto.SellerResponseDTO	"Profile created"
//	@Failure		400	{object}	utils.Response	"Validation failure"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Record store unavailable"
//	@Router			/api/sellers [put]
func (h *SellerHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.ViewerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	req, err := utils.DecodeAndValidate[dto.UpsertSellerRequestDTO](r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	info := domain.SellerInfo{
		ExternalID:  req.ExternalID,
		CardNumber:  req.CardNumber,
		IBAN:        req.IBAN,
		AccountName: req.AccountName,
		Phone:       req.Phone,
	}
	stored, action, err := h.sellerService.Upsert(r.Context(), viewer, info)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	code := http.StatusOK
	if action == sellerservice.ActionCreated {
		code = http.StatusCreated
	}
	utils.RespondWithJSON(w, code, toDTO(stored))
}

func respondServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondWithError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, domain.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Not your profile")
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toDTO(info *domain.SellerInfo) dto.SellerResponseDTO {
	return dto.SellerResponseDTO{
		ExternalID:  info.ExternalID,
		CardNumber:  info.CardNumber,
		IBAN:        info.IBAN,
		AccountName: info.AccountName,
		Phone:       info.Phone,
	}
}
