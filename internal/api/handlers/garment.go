package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/deokisok/ootd/internal/api/middleware"
	"github.com/deokisok/ootd/internal/domain"
	"github.com/deokisok/ootd/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type GarmentHandler struct {
	svc *service.ClosetService
}

func NewGarmentHandler(svc *service.ClosetService) *GarmentHandler {
	return &GarmentHandler{svc: svc}
}

type garmentPayload struct {
	Category       string `json:"category"`
	Name           string `json:"name,omitempty"`
	Color          string `json:"color,omitempty"`
	Pattern        string `json:"pattern,omitempty"`
	Warmth         string `json:"warmth,omitempty"`
	Vibe           string `json:"vibe,omitempty"`
	PrimaryStyle   string `json:"primary_style,omitempty"`
	SecondaryStyle string `json:"secondary_style,omitempty"`
	ImageRef       string `json:"image_ref,omitempty"`
	ImageBase64    string `json:"image_base64,omitempty"`
}

func (p garmentPayload) toCreateRequest() (service.CreateGarmentRequest, error) {
	req := service.CreateGarmentRequest{
		Category:       p.Category,
		Name:           p.Name,
		Color:          p.Color,
		Pattern:        p.Pattern,
		Warmth:         p.Warmth,
		Vibe:           p.Vibe,
		PrimaryStyle:   p.PrimaryStyle,
		SecondaryStyle: p.SecondaryStyle,
		ImageRef:       p.ImageRef,
	}
	if p.ImageBase64 != "" {
		img, err := base64.StdEncoding.DecodeString(p.ImageBase64)
		if err != nil {
			return req, err
		}
		req.Image = img
	}
	return req, nil
}

func writeClosetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidStyleTag):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrGarmentNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrGarmentNotPending),
		errors.Is(err, service.ErrGarmentAlreadyPending):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "garment operation failed")
	}
}

func (h *GarmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var payload garmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := payload.toCreateRequest()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid image_base64")
		return
	}

	g, err := h.svc.Create(r.Context(), user.ID, req)
	if err != nil {
		writeClosetError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, g)
}

type bulkCreateRequest struct {
	Garments []garmentPayload `json:"garments"`
}

type bulkCreateResponse struct {
	Created []domain.Garment `json:"created"`
	Count   int              `json:"count"`
}

func (h *GarmentHandler) BulkCreate(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body bulkCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(body.Garments) == 0 {
		writeError(w, http.StatusBadRequest, "garments is required")
		return
	}

	reqs := make([]service.CreateGarmentRequest, 0, len(body.Garments))
	for _, p := range body.Garments {
		req, err := p.toCreateRequest()
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid image_base64")
			return
		}
		reqs = append(reqs, req)
	}

	created, err := h.svc.BulkCreate(r.Context(), user.ID, reqs)
	if err != nil {
		writeClosetError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, bulkCreateResponse{Created: created, Count: len(created)})
}

type listGarmentsResponse struct {
	Garments []domain.Garment `json:"garments"`
	Count    int              `json:"count"`
}

func (h *GarmentHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	garments, err := h.svc.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list garments")
		return
	}
	if garments == nil {
		garments = []domain.Garment{}
	}

	writeJSON(w, http.StatusOK, listGarmentsResponse{Garments: garments, Count: len(garments)})
}

func (h *GarmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid garment id")
		return
	}

	g, err := h.svc.Get(r.Context(), user.ID, id)
	if err != nil {
		writeClosetError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, g)
}

type updateGarmentRequest struct {
	Name           *string `json:"name,omitempty"`
	Color          *string `json:"color,omitempty"`
	Pattern        *string `json:"pattern,omitempty"`
	Warmth         *string `json:"warmth,omitempty"`
	Vibe           *string `json:"vibe,omitempty"`
	PrimaryStyle   *string `json:"primary_style,omitempty"`
	SecondaryStyle *string `json:"secondary_style,omitempty"`
	ImageRef       *string `json:"image_ref,omitempty"`
}

func (h *GarmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid garment id")
		return
	}

	var req updateGarmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, err := h.svc.Update(r.Context(), user.ID, id, service.UpdateGarmentRequest{
		Name:           req.Name,
		Color:          req.Color,
		Pattern:        req.Pattern,
		Warmth:         req.Warmth,
		Vibe:           req.Vibe,
		PrimaryStyle:   req.PrimaryStyle,
		SecondaryStyle: req.SecondaryStyle,
		ImageRef:       req.ImageRef,
	})
	if err != nil {
		writeClosetError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, g)
}

// MarkDelete is the first half of the two-step delete.
func (h *GarmentHandler) MarkDelete(w http.ResponseWriter, r *http.Request) {
	h.statusChange(w, r, h.svc.MarkDelete)
}

// ConfirmDelete is the irreversible second half.
func (h *GarmentHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	h.statusChange(w, r, h.svc.ConfirmDelete)
}

func (h *GarmentHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.statusChange(w, r, h.svc.Restore)
}

func (h *GarmentHandler) statusChange(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID, id uuid.UUID) error) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid garment id")
		return
	}

	if err := op(r.Context(), user.ID, id); err != nil {
		writeClosetError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type analyzeRequest struct {
	ImageBase64 string `json:"image_base64"`
}

func (h *GarmentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid garment id")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var image []byte
	if req.ImageBase64 != "" {
		image, err = base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid image_base64")
			return
		}
	}

	g, err := h.svc.Analyze(r.Context(), user.ID, id, image)
	if err != nil {
		writeClosetError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, g)
}
