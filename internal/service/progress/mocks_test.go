package progress

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/lingokit/lingo-api/internal/domain"
	engine "github.com/lingokit/lingo-api/internal/domain/progress"
	"github.com/lingokit/lingo-api/internal/store"
)

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) UpdateStats(
	ctx context.Context,
	userID uuid.UUID,
	stats domain.UserStats,
) error {
	args := m.Called(ctx, userID, stats)
	return args.Error(0)
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// MockVocabularyStore mocks the store.VocabularyStore interface
type MockVocabularyStore struct {
	mock.Mock
}

func (m *MockVocabularyStore) Create(ctx context.Context, item *domain.VocabularyItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockVocabularyStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.VocabularyItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VocabularyItem), args.Error(1)
}

func (m *MockVocabularyStore) ListWithMastery(
	ctx context.Context,
	userID, languageID uuid.UUID,
) ([]engine.ItemWithMastery, error) {
	args := m.Called(ctx, userID, languageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]engine.ItemWithMastery), args.Error(1)
}

func (m *MockVocabularyStore) WithTx(tx *sql.Tx) store.VocabularyStore {
	return m
}

// MockMasteryStore mocks the store.MasteryStore interface
type MockMasteryStore struct {
	mock.Mock
}

func (m *MockMasteryStore) Get(
	ctx context.Context,
	userID, vocabularyID uuid.UUID,
) (*domain.MasteryRecord, error) {
	args := m.Called(ctx, userID, vocabularyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MasteryRecord), args.Error(1)
}

func (m *MockMasteryStore) GetForUpdate(
	ctx context.Context,
	userID, vocabularyID uuid.UUID,
) (*domain.MasteryRecord, error) {
	args := m.Called(ctx, userID, vocabularyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MasteryRecord), args.Error(1)
}

func (m *MockMasteryStore) Upsert(ctx context.Context, record *domain.MasteryRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMasteryStore) WithTx(tx *sql.Tx) store.MasteryStore {
	return m
}

// MockActivityStore mocks the store.ActivityStore interface
type MockActivityStore struct {
	mock.Mock
}

func (m *MockActivityStore) Append(ctx context.Context, event *domain.ActivityEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockActivityStore) MostRecent(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.ActivityEvent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityEvent), args.Error(1)
}

func (m *MockActivityStore) WithTx(tx *sql.Tx) store.ActivityStore {
	return m
}

// MockLessonStore mocks the store.LessonStore interface
type MockLessonStore struct {
	mock.Mock
}

func (m *MockLessonStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lesson), args.Error(1)
}

func (m *MockLessonStore) RecordCompletion(
	ctx context.Context,
	completion *domain.LessonCompletion,
) error {
	args := m.Called(ctx, completion)
	return args.Error(0)
}

func (m *MockLessonStore) CountCompleted(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockLessonStore) WithTx(tx *sql.Tx) store.LessonStore {
	return m
}

// MockAchievementStore mocks the store.AchievementStore interface
type MockAchievementStore struct {
	mock.Mock
}

func (m *MockAchievementStore) ListDefinitions(ctx context.Context) ([]domain.Achievement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

func (m *MockAchievementStore) ListEarnedIDs(
	ctx context.Context,
	userID uuid.UUID,
) (map[uuid.UUID]struct{}, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]struct{}), args.Error(1)
}

func (m *MockAchievementStore) ListEarned(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.UserAchievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserAchievement), args.Error(1)
}

func (m *MockAchievementStore) Award(
	ctx context.Context,
	userAchievement *domain.UserAchievement,
) error {
	args := m.Called(ctx, userAchievement)
	return args.Error(0)
}

func (m *MockAchievementStore) WithTx(tx *sql.Tx) store.AchievementStore {
	return m
}
