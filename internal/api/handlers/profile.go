package handlers

import (
	"net/http"

	"github.com/deokisok/ootd/internal/api/middleware"
	"github.com/deokisok/ootd/internal/domain"
)

type ProfileHandler struct {
	store domain.ProfileStore
}

func NewProfileHandler(store domain.ProfileStore) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// Get returns the taste profile snapshot. A user who has never submitted
// feedback gets the zero-value default.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.store.Get(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
