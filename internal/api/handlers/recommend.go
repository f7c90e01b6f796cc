package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/deokisok/ootd/internal/api/middleware"
	"github.com/deokisok/ootd/internal/domain"
	"github.com/deokisok/ootd/internal/service"
)

type RecommendHandler struct {
	svc *service.RecommendationService
}

func NewRecommendHandler(svc *service.RecommendationService) *RecommendHandler {
	return &RecommendHandler{svc: svc}
}

type recommendRequest struct {
	Situation   string   `json:"situation"`
	StyleFilter string   `json:"style_filter,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lon         *float64 `json:"lon,omitempty"`
}

func (h *RecommendHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Recommend(r.Context(), user.ID, service.RecommendationRequest{
		Situation:   domain.Situation(req.Situation),
		StyleFilter: domain.Style(req.StyleFilter),
		Temperature: req.Temperature,
		Lat:         req.Lat,
		Lon:         req.Lon,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSituation),
			errors.Is(err, service.ErrInvalidStyle):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrInsufficientWardrobe):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to build recommendation")
		}
		return
	}

	writeJSON(w, http.StatusOK, rec)
}
