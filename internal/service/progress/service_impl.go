package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/config"
	"github.com/lingokit/lingo-api/internal/domain"
	engine "github.com/lingokit/lingo-api/internal/domain/progress"
	"github.com/lingokit/lingo-api/internal/platform/logger"
	"github.com/lingokit/lingo-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

// serviceImpl implements the Service interface.
type serviceImpl struct {
	db               *sql.DB
	userStore        store.UserStore
	vocabularyStore  store.VocabularyStore
	masteryStore     store.MasteryStore
	activityStore    store.ActivityStore
	lessonStore      store.LessonStore
	achievementStore store.AchievementStore
	sessions         *SessionRegistry
	cfg              config.PracticeConfig
	logger           *slog.Logger

	// timeFunc, location and runTx are injectable for tests. Streak
	// calendar math runs in location; storage stays UTC. runTx is the
	// transaction boundary for the completion pipeline.
	timeFunc func() time.Time
	location *time.Location
	runTx    func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// NewService creates a new progress Service implementation.
func NewService(
	db *sql.DB,
	userStore store.UserStore,
	vocabularyStore store.VocabularyStore,
	masteryStore store.MasteryStore,
	activityStore store.ActivityStore,
	lessonStore store.LessonStore,
	achievementStore store.AchievementStore,
	sessions *SessionRegistry,
	cfg config.PracticeConfig,
	logger *slog.Logger,
) Service {
	if db == nil {
		panic("db cannot be nil")
	}
	if userStore == nil {
		panic("userStore cannot be nil")
	}
	if vocabularyStore == nil {
		panic("vocabularyStore cannot be nil")
	}
	if masteryStore == nil {
		panic("masteryStore cannot be nil")
	}
	if activityStore == nil {
		panic("activityStore cannot be nil")
	}
	if lessonStore == nil {
		panic("lessonStore cannot be nil")
	}
	if achievementStore == nil {
		panic("achievementStore cannot be nil")
	}
	if sessions == nil {
		panic("sessions cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &serviceImpl{
		db:               db,
		userStore:        userStore,
		vocabularyStore:  vocabularyStore,
		masteryStore:     masteryStore,
		activityStore:    activityStore,
		lessonStore:      lessonStore,
		achievementStore: achievementStore,
		sessions:         sessions,
		cfg:              cfg,
		logger:           logger.With(slog.String("component", "progress_service")),
		timeFunc:         time.Now,
		location:         time.UTC,
		runTx:            store.RunInTransaction,
	}
}

// StartSession implements Service.StartSession.
func (s *serviceImpl) StartSession(
	ctx context.Context,
	userID, languageID uuid.UUID,
	limit int,
) (*StartedSession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = s.cfg.DefaultBatchSize
	}
	if limit > s.cfg.MaxBatchSize {
		limit = s.cfg.MaxBatchSize
	}

	items, err := s.vocabularyStore.ListWithMastery(ctx, userID, languageID)
	if err != nil {
		log.Error("failed to load vocabulary for session",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("language_id", languageID.String()))
		return nil, newServiceError("start_session", "failed to load vocabulary", err)
	}

	now := s.timeFunc().UTC()
	batch := engine.SelectForReview(items, limit, now)

	session := NewSession(userID, languageID, batch, now)
	s.sessions.Add(session)

	log.Info("practice session started",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("batch_size", len(batch)))

	return &StartedSession{
		ID:        session.ID,
		Items:     batch,
		StartedAt: session.StartedAt,
	}, nil
}

// SubmitAnswer implements Service.SubmitAnswer.
// The mastery read-modify-write runs inside a transaction holding a row
// lock on the mastery record, so two concurrent answers for the same
// item serialize instead of silently dropping one update.
func (s *serviceImpl) SubmitAnswer(
	ctx context.Context,
	userID, sessionID, vocabularyID uuid.UUID,
	correct bool,
) (*domain.MasteryRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	session, err := s.ownedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.CheckAnswerable(vocabularyID); err != nil {
		log.Warn("answer rejected by session",
			slog.String("error", err.Error()),
			slog.String("session_id", sessionID.String()),
			slog.String("vocabulary_id", vocabularyID.String()))
		return nil, err
	}

	now := s.timeFunc().UTC()
	var updated *domain.MasteryRecord

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		masteryTx := s.masteryStore.WithTx(tx)

		record, err := masteryTx.GetForUpdate(ctx, userID, vocabularyID)
		if err != nil {
			if errors.Is(err, store.ErrMasteryNotFound) {
				// First review of this item; ApplyOutcome handles the
				// nil record as first touch.
				record = nil
			} else {
				return fmt.Errorf("failed to lock mastery record: %w", err)
			}
		}

		next, err := engine.ApplyOutcome(userID, vocabularyID, record, correct, now)
		if err != nil {
			return fmt.Errorf("failed to apply review outcome: %w", err)
		}

		if err := masteryTx.Upsert(ctx, next); err != nil {
			return fmt.Errorf("failed to save mastery record: %w", err)
		}

		updated = next
		return nil
	})

	if err != nil {
		log.Error("failed to submit answer",
			slog.String("error", err.Error()),
			slog.String("session_id", sessionID.String()),
			slog.String("vocabulary_id", vocabularyID.String()))
		return nil, newServiceError("submit_answer", "failed to persist review outcome", err)
	}

	session.CountAnswer(vocabularyID, correct)

	log.Debug("answer submitted",
		slog.String("session_id", sessionID.String()),
		slog.String("vocabulary_id", vocabularyID.String()),
		slog.Bool("correct", correct),
		slog.Int("mastery_level", updated.MasteryLevel))

	return updated, nil
}

// CompleteSession implements Service.CompleteSession.
func (s *serviceImpl) CompleteSession(
	ctx context.Context,
	userID, sessionID uuid.UUID,
) (*SessionSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	session, err := s.ownedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}

	answered, correct, err := session.Complete()
	if err != nil {
		return nil, err
	}

	now := s.timeFunc().UTC()
	stats, err := s.recordCompletion(ctx, userID, s.cfg.SessionXPReward, now)
	if err != nil {
		// The XP/streak write failed, so the session earned nothing yet.
		// Revert the state transition so the client can retry completion.
		session.Reopen()
		log.Error("failed to complete session",
			slog.String("error", err.Error()),
			slog.String("session_id", sessionID.String()),
			slog.String("user_id", userID.String()))
		return nil, err
	}

	summary := &SessionSummary{
		SessionID: sessionID,
		Answered:  answered,
		Correct:   correct,
		XPAwarded: s.cfg.SessionXPReward,
		Stats:     stats,
		Unlocked:  []domain.Achievement{},
	}

	// Achievement evaluation is non-fatal: the XP, streak and activity
	// are already committed, so a failure here degrades the response
	// instead of failing the completion.
	unlocked, achErr := s.evaluateAchievements(ctx, userID, stats, now)
	if achErr != nil {
		log.Error("achievement check failed after session completion",
			slog.String("error", achErr.Error()),
			slog.String("user_id", userID.String()))
		summary.AchievementCheckFailed = true
	} else {
		summary.Unlocked = unlocked
	}

	s.sessions.Remove(sessionID)

	log.Info("practice session completed",
		slog.String("session_id", sessionID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("answered", answered),
		slog.Int("correct", correct),
		slog.Int("xp_awarded", summary.XPAwarded),
		slog.Int("unlocked", len(summary.Unlocked)))

	return summary, nil
}

// CompleteLesson implements Service.CompleteLesson.
func (s *serviceImpl) CompleteLesson(
	ctx context.Context,
	userID, lessonID uuid.UUID,
	score, timeSpentSeconds int,
) (*LessonResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	lesson, err := s.lessonStore.GetByID(ctx, lessonID)
	if err != nil {
		if errors.Is(err, store.ErrLessonNotFound) {
			return nil, err
		}
		return nil, newServiceError("complete_lesson", "failed to load lesson", err)
	}

	now := s.timeFunc().UTC()

	completion, err := domain.NewLessonCompletion(userID, lessonID, score, timeSpentSeconds, now)
	if err != nil {
		return nil, err
	}

	var stats domain.UserStats
	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.lessonStore.WithTx(tx).RecordCompletion(ctx, completion); err != nil {
			return fmt.Errorf("failed to record lesson completion: %w", err)
		}

		updated, err := s.applyCompletionTx(ctx, tx, userID, lesson.XPReward, now)
		if err != nil {
			return err
		}
		stats = updated
		return nil
	})
	if err != nil {
		if errors.Is(err, engine.ErrClockSkew) || store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to complete lesson",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("lesson_id", lessonID.String()))
		return nil, newServiceError("complete_lesson", "failed to persist lesson completion", err)
	}

	result := &LessonResult{
		LessonID:  lessonID,
		XPAwarded: lesson.XPReward,
		Stats:     stats,
		Unlocked:  []domain.Achievement{},
	}

	unlocked, achErr := s.evaluateAchievements(ctx, userID, stats, now)
	if achErr != nil {
		log.Error("achievement check failed after lesson completion",
			slog.String("error", achErr.Error()),
			slog.String("user_id", userID.String()),
			slog.String("lesson_id", lessonID.String()))
		result.AchievementCheckFailed = true
	} else {
		result.Unlocked = unlocked
	}

	log.Info("lesson completed",
		slog.String("user_id", userID.String()),
		slog.String("lesson_id", lessonID.String()),
		slog.Int("score", score),
		slog.Int("xp_awarded", lesson.XPReward))

	return result, nil
}

// GetProgress implements Service.GetProgress.
func (s *serviceImpl) GetProgress(ctx context.Context, userID uuid.UUID) (*Snapshot, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed, err := s.lessonStore.CountCompleted(ctx, userID)
	if err != nil {
		return nil, newServiceError("get_progress", "failed to count completed lessons", err)
	}

	return &Snapshot{
		Stats:            user.Stats,
		CompletedLessons: completed,
		XPToNextLevel:    domain.XPPerLevel - user.Stats.TotalXP%domain.XPPerLevel,
	}, nil
}

// ListAchievements implements Service.ListAchievements.
func (s *serviceImpl) ListAchievements(
	ctx context.Context,
	userID uuid.UUID,
) ([]AchievementStatus, error) {
	definitions, err := s.achievementStore.ListDefinitions(ctx)
	if err != nil {
		return nil, newServiceError("list_achievements", "failed to load definitions", err)
	}

	earned, err := s.achievementStore.ListEarned(ctx, userID)
	if err != nil {
		return nil, newServiceError("list_achievements", "failed to load earned achievements", err)
	}

	earnedAt := make(map[uuid.UUID]time.Time, len(earned))
	for _, ua := range earned {
		earnedAt[ua.AchievementID] = ua.EarnedAt
	}

	statuses := make([]AchievementStatus, 0, len(definitions))
	for _, def := range definitions {
		status := AchievementStatus{Achievement: def}
		if at, ok := earnedAt[def.ID]; ok {
			status.Earned = true
			t := at
			status.EarnedAt = &t
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// ownedSession looks up a session and verifies ownership.
func (s *serviceImpl) ownedSession(userID, sessionID uuid.UUID) (*Session, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.UserID != userID {
		return nil, ErrSessionNotOwned
	}
	return session, nil
}

// recordCompletion runs the shared completion pipeline (XP award,
// activity event, streak update) in one transaction and returns the
// persisted stats.
func (s *serviceImpl) recordCompletion(
	ctx context.Context,
	userID uuid.UUID,
	xpAward int,
	now time.Time,
) (domain.UserStats, error) {
	var stats domain.UserStats
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		updated, err := s.applyCompletionTx(ctx, tx, userID, xpAward, now)
		if err != nil {
			return err
		}
		stats = updated
		return nil
	})
	if err != nil {
		if errors.Is(err, engine.ErrClockSkew) || store.IsNotFoundError(err) {
			return domain.UserStats{}, err
		}
		return domain.UserStats{}, newServiceError(
			"record_completion", "failed to persist completion", err)
	}
	return stats, nil
}

// applyCompletionTx awards XP, appends the activity event and advances
// the streak inside an existing transaction. The streak is read from
// the activity log BEFORE the new event is appended; current and
// longest streak are written together in a single stats update.
func (s *serviceImpl) applyCompletionTx(
	ctx context.Context,
	tx *sql.Tx,
	userID uuid.UUID,
	xpAward int,
	now time.Time,
) (domain.UserStats, error) {
	userTx := s.userStore.WithTx(tx)
	activityTx := s.activityStore.WithTx(tx)

	user, err := userTx.GetByID(ctx, userID)
	if err != nil {
		return domain.UserStats{}, err
	}

	stats, err := user.Stats.AddXP(xpAward)
	if err != nil {
		return domain.UserStats{}, err
	}

	lastEvent, err := activityTx.MostRecent(ctx, userID)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("failed to read activity log: %w", err)
	}

	var lastActivity *time.Time
	if lastEvent != nil {
		lastActivity = &lastEvent.CompletedAt
	}

	streak, err := engine.NextStreak(
		lastActivity, stats.CurrentStreak, stats.LongestStreak, now, s.location)
	if err != nil {
		return domain.UserStats{}, err
	}
	stats.CurrentStreak = streak.Current
	stats.LongestStreak = streak.Longest

	event, err := domain.NewActivityEvent(userID, now)
	if err != nil {
		return domain.UserStats{}, err
	}
	if err := activityTx.Append(ctx, event); err != nil {
		return domain.UserStats{}, fmt.Errorf("failed to append activity event: %w", err)
	}

	if err := userTx.UpdateStats(ctx, userID, stats); err != nil {
		return domain.UserStats{}, fmt.Errorf("failed to update user stats: %w", err)
	}

	return stats, nil
}

// evaluateAchievements checks the user's achievements against the given
// stats and awards any newly met ones. Awards are idempotent at the
// store level, so a concurrent duplicate award never surfaces as an
// error.
func (s *serviceImpl) evaluateAchievements(
	ctx context.Context,
	userID uuid.UUID,
	stats domain.UserStats,
	now time.Time,
) ([]domain.Achievement, error) {
	definitions, err := s.achievementStore.ListDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievement definitions: %w", err)
	}

	earned, err := s.achievementStore.ListEarnedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load earned achievements: %w", err)
	}

	lessonCount, err := s.lessonStore.CountCompleted(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed lessons: %w", err)
	}

	unlocked := engine.CheckAchievements(stats, lessonCount, definitions, earned)
	for _, achievement := range unlocked {
		award := &domain.UserAchievement{
			UserID:        userID,
			AchievementID: achievement.ID,
			EarnedAt:      now,
		}
		if err := s.achievementStore.Award(ctx, award); err != nil {
			return nil, fmt.Errorf("failed to award achievement %s: %w", achievement.ID, err)
		}
	}

	return unlocked, nil
}
