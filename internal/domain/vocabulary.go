package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Vocabulary-specific validation errors
var (
	// ErrVocabularyIDEmpty is returned when a vocabulary item ID is empty or nil.
	ErrVocabularyIDEmpty = errors.New("vocabulary item ID cannot be empty")

	// ErrVocabularyLanguageEmpty is returned when a vocabulary item has no language.
	ErrVocabularyLanguageEmpty = errors.New("vocabulary item language ID cannot be empty")

	// ErrVocabularyWordEmpty is returned when a vocabulary item has no word.
	ErrVocabularyWordEmpty = errors.New("vocabulary item word cannot be empty")

	// ErrVocabularyTranslationEmpty is returned when a vocabulary item has no translation.
	ErrVocabularyTranslationEmpty = errors.New("vocabulary item translation cannot be empty")

	// ErrVocabularyDifficultyInvalid is returned when the difficulty level is not positive.
	ErrVocabularyDifficultyInvalid = errors.New("vocabulary item difficulty level must be at least 1")
)

// VocabularyItem is an immutable piece of reference data: a single word
// in a target language together with its translation. Per-user learning
// state lives in MasteryRecord, never here.
type VocabularyItem struct {
	ID              uuid.UUID `json:"id"`
	LanguageID      uuid.UUID `json:"language_id"`
	Word            string    `json:"word"`
	Translation     string    `json:"translation"`
	Pronunciation   string    `json:"pronunciation,omitempty"`
	DifficultyLevel int       `json:"difficulty_level"`
}

// NewVocabularyItem creates a new VocabularyItem with a fresh ID.
// Returns an error if validation fails.
func NewVocabularyItem(
	languageID uuid.UUID,
	word, translation, pronunciation string,
	difficultyLevel int,
) (*VocabularyItem, error) {
	item := &VocabularyItem{
		ID:              uuid.New(),
		LanguageID:      languageID,
		Word:            word,
		Translation:     translation,
		Pronunciation:   pronunciation,
		DifficultyLevel: difficultyLevel,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the VocabularyItem has valid data.
// Returns an error if any field fails validation.
func (v *VocabularyItem) Validate() error {
	if v.ID == uuid.Nil {
		return ErrVocabularyIDEmpty
	}

	if v.LanguageID == uuid.Nil {
		return ErrVocabularyLanguageEmpty
	}

	if v.Word == "" {
		return ErrVocabularyWordEmpty
	}

	if v.Translation == "" {
		return ErrVocabularyTranslationEmpty
	}

	if v.DifficultyLevel < 1 {
		return ErrVocabularyDifficultyInvalid
	}

	return nil
}
