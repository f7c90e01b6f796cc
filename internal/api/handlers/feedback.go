package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/deokisok/ootd/internal/api/middleware"
	"github.com/deokisok/ootd/internal/domain"
	"github.com/deokisok/ootd/internal/service"
)

type FeedbackHandler struct {
	svc *service.FeedbackService
}

func NewFeedbackHandler(svc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

type submitFeedbackRequest struct {
	Rating          int    `json:"rating"`
	TempComfort     string `json:"temp_comfort"`
	ColorApproval   string `json:"color_approval"`
	PatternApproval string `json:"pattern_approval"`
	VibeApproval    string `json:"vibe_approval"`
	Note            string `json:"note,omitempty"`
}

func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req submitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.svc.Submit(r.Context(), user.ID, service.SubmitFeedbackRequest{
		Rating:          req.Rating,
		TempComfort:     domain.TempComfort(req.TempComfort),
		ColorApproval:   domain.Approval(req.ColorApproval),
		PatternApproval: domain.Approval(req.PatternApproval),
		VibeApproval:    domain.Approval(req.VibeApproval),
		Note:            req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating),
			errors.Is(err, service.ErrInvalidTempComfort),
			errors.Is(err, service.ErrInvalidApproval):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNoOpenRecommendation):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to record feedback")
		}
		return
	}

	writeJSON(w, http.StatusCreated, record)
}
