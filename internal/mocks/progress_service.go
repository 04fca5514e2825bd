package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
	"github.com/lingokit/lingo-api/internal/service/progress"
)

// MockProgressService implements progress.Service for testing
type MockProgressService struct {
	// Function fields for customizable behavior
	StartSessionFn func(
		ctx context.Context,
		userID, languageID uuid.UUID,
		limit int,
	) (*progress.StartedSession, error)
	SubmitAnswerFn func(
		ctx context.Context,
		userID, sessionID, vocabularyID uuid.UUID,
		correct bool,
	) (*domain.MasteryRecord, error)
	CompleteSessionFn func(
		ctx context.Context,
		userID, sessionID uuid.UUID,
	) (*progress.SessionSummary, error)
	CompleteLessonFn func(
		ctx context.Context,
		userID, lessonID uuid.UUID,
		score, timeSpentSeconds int,
	) (*progress.LessonResult, error)
	GetProgressFn      func(ctx context.Context, userID uuid.UUID) (*progress.Snapshot, error)
	ListAchievementsFn func(ctx context.Context, userID uuid.UUID) ([]progress.AchievementStatus, error)

	// Default values used when functions aren't explicitly defined
	Session      *progress.StartedSession
	Record       *domain.MasteryRecord
	Summary      *progress.SessionSummary
	LessonResult *progress.LessonResult
	Snapshot     *progress.Snapshot
	Achievements []progress.AchievementStatus
	Err          error
}

// StartSession implements the progress.Service interface
func (m *MockProgressService) StartSession(
	ctx context.Context,
	userID, languageID uuid.UUID,
	limit int,
) (*progress.StartedSession, error) {
	if m.StartSessionFn != nil {
		return m.StartSessionFn(ctx, userID, languageID, limit)
	}
	return m.Session, m.Err
}

// SubmitAnswer implements the progress.Service interface
func (m *MockProgressService) SubmitAnswer(
	ctx context.Context,
	userID, sessionID, vocabularyID uuid.UUID,
	correct bool,
) (*domain.MasteryRecord, error) {
	if m.SubmitAnswerFn != nil {
		return m.SubmitAnswerFn(ctx, userID, sessionID, vocabularyID, correct)
	}
	return m.Record, m.Err
}

// CompleteSession implements the progress.Service interface
func (m *MockProgressService) CompleteSession(
	ctx context.Context,
	userID, sessionID uuid.UUID,
) (*progress.SessionSummary, error) {
	if m.CompleteSessionFn != nil {
		return m.CompleteSessionFn(ctx, userID, sessionID)
	}
	return m.Summary, m.Err
}

// CompleteLesson implements the progress.Service interface
func (m *MockProgressService) CompleteLesson(
	ctx context.Context,
	userID, lessonID uuid.UUID,
	score, timeSpentSeconds int,
) (*progress.LessonResult, error) {
	if m.CompleteLessonFn != nil {
		return m.CompleteLessonFn(ctx, userID, lessonID, score, timeSpentSeconds)
	}
	return m.LessonResult, m.Err
}

// GetProgress implements the progress.Service interface
func (m *MockProgressService) GetProgress(
	ctx context.Context,
	userID uuid.UUID,
) (*progress.Snapshot, error) {
	if m.GetProgressFn != nil {
		return m.GetProgressFn(ctx, userID)
	}
	return m.Snapshot, m.Err
}

// ListAchievements implements the progress.Service interface
func (m *MockProgressService) ListAchievements(
	ctx context.Context,
	userID uuid.UUID,
) ([]progress.AchievementStatus, error) {
	if m.ListAchievementsFn != nil {
		return m.ListAchievementsFn(ctx, userID)
	}
	return m.Achievements, m.Err
}

// Ensure MockProgressService implements the progress.Service interface
var _ progress.Service = (*MockProgressService)(nil)
