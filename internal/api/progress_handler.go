package api

import (
	"net/http"

	"github.com/lingokit/lingo-api/internal/api/shared"
	progresssvc "github.com/lingokit/lingo-api/internal/service/progress"
)

// ProgressHandler serves read-only progress and achievement views.
type ProgressHandler struct {
	progressService progresssvc.Service
}

// NewProgressHandler creates a new ProgressHandler with the given dependencies.
func NewProgressHandler(progressService progresssvc.Service) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
	}
}

// GetProgress handles GET /progress. It returns the authenticated
// user's stats, completed lesson count, and XP remaining to the next
// level.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	snapshot, err := h.progressService.GetProgress(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, snapshot)
}

// ListAchievements handles GET /achievements. It returns every
// achievement definition together with the user's unlock state.
func (h *ProgressHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	achievements, err := h.progressService.ListAchievements(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, achievements)
}
