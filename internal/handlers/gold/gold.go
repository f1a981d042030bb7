package gold

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/ashkanv/shopdesk/internal/dto"
	"github.com/ashkanv/shopdesk/internal/repo/rowcodec"
	"github.com/ashkanv/shopdesk/pkg/auth"
	"github.com/ashkanv/shopdesk/pkg/utils"
)

type Service interface {
	List(ctx context.Context, viewer domain.Viewer) ([]domain.GoldPayment, error)
	Transition(ctx context.Context, viewer domain.Viewer, id string, target domain.Status) (*domain.GoldPayment, error)
}

type GoldHandler struct {
	goldService Service
}

func New(goldService Service) *GoldHandler {
	return &GoldHandler{
		goldService: goldService,
	}
}

// List godoc
//
//	@Summary		List gold payments
//	@Description	Returns gold transactions visible to the viewer; members only see their own. IDs are synthesized per read and not stable across refreshes.
//	@Tags			Gold
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.GoldResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Record store unavailable"
//	@Router			/api/gold [get]
func (h *GoldHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.ViewerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	records, err := h.goldService.List(r.Context(), viewer)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := make([]dto.GoldResponseDTO, 0, len(records))
	for i := range records {
		response = append(response, toDTO(&records[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SetStatus godoc
//
//	@Summary		Change a gold payment's status
//	@Description	Applies the target status to every gold row of the addressed record's owner. Support role only.
//	@Tags			Gold
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string				true	"Gold payment ID"
//	@Param			status	body	dto.StatusRequestDTO	true	"Target status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.GoldResponseDTO
//	@Failure		400	{object}	utils.Response	"Unknown status"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Support role required"
//	@Failure		404	{object}	utils.Response	"Gold payment not found"
//	@Failure		500	{object}	utils.Response	"Record store unavailable"
//	@Router			/api/gold/{id}/status [post]
func (h *GoldHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
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

	record, err := h.goldService.Transition(r.Context(), viewer, chi.URLParam(r, "id"), target)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(record))
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Support role required")
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Gold payment not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toDTO(g *domain.GoldPayment) dto.GoldResponseDTO {
	return dto.GoldResponseDTO{
		ID:            g.ID,
		ExternalID:    g.ExternalID,
		RequesterName: g.RequesterName,
		Amount:        g.Amount,
		Price:         g.Price,
		TotalRial:     g.TotalRial,
		CreatedAt:     rowcodec.FormatTime(g.CreatedAt),
		Note:          g.Note,
		Status:        string(g.Status),
		ChangedBy:     g.ChangedBy,
	}
}
