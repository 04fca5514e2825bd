package api

import (
	"net/http"

	"github.com/lingokit/lingo-api/internal/api/shared"
	progresssvc "github.com/lingokit/lingo-api/internal/service/progress"
)

// PracticeHandler handles practice session and lesson completion requests.
type PracticeHandler struct {
	progressService progresssvc.Service
}

// NewPracticeHandler creates a new PracticeHandler with the given dependencies.
func NewPracticeHandler(progressService progresssvc.Service) *PracticeHandler {
	return &PracticeHandler{
		progressService: progressService,
	}
}

// StartSession handles POST /practice/sessions. It selects a review
// batch for the authenticated user and opens a session around it.
func (h *PracticeHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req StartSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	session, err := h.progressService.StartSession(r.Context(), userID, req.LanguageID, req.Limit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, session)
}

// SubmitAnswer handles POST /practice/sessions/{id}/answers. It applies
// one answer to the session and returns the updated mastery record.
func (h *PracticeHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	record, err := h.progressService.SubmitAnswer(
		r.Context(), userID, sessionID, req.VocabularyID, *req.Correct)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, record)
}

// CompleteSession handles POST /practice/sessions/{id}/complete. It
// finishes the session and returns its summary, including any newly
// unlocked achievements.
func (h *PracticeHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	summary, err := h.progressService.CompleteSession(r.Context(), userID, sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}

// CompleteLesson handles POST /lessons/{id}/complete. It records the
// completion and returns the awarded XP and resulting stats.
func (h *PracticeHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	userID, lessonID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req CompleteLessonRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, err := h.progressService.CompleteLesson(
		r.Context(), userID, lessonID, req.Score, req.TimeSpentSeconds)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
