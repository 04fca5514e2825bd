package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/lingokit/lingo-api/internal/store"
)

// mockResult implements sql.Result for testing
type mockResult struct {
	rowsAffected int64
	err          error
}

func (m mockResult) LastInsertId() (int64, error) {
	return 0, nil
}

func (m mockResult) RowsAffected() (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.rowsAffected, nil
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedError error
	}{
		{
			name:          "nil_error",
			err:           nil,
			expectedError: nil,
		},
		{
			name:          "sql_no_rows",
			err:           sql.ErrNoRows,
			expectedError: store.ErrNotFound,
		},
		{
			name: "unique_violation",
			err: &pgconn.PgError{
				Code:           uniqueViolationCode,
				ConstraintName: "users_email_key",
			},
			expectedError: store.ErrDuplicate,
		},
		{
			name: "foreign_key_violation",
			err: &pgconn.PgError{
				Code:           foreignKeyViolationCode,
				ConstraintName: "mastery_records_user_id_fkey",
			},
			expectedError: store.ErrInvalidEntity,
		},
		{
			name: "check_constraint_violation",
			err: &pgconn.PgError{
				Code:           checkViolationCode,
				ConstraintName: "mastery_records_mastery_level_check",
			},
			expectedError: store.ErrInvalidEntity,
		},
		{
			name: "generic_error",
			err:  fmt.Errorf("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)

			if tt.err == nil {
				assert.NoError(t, mapped)
				return
			}

			if tt.expectedError != nil {
				assert.ErrorIs(t, mapped, tt.expectedError)
			} else {
				// Unmapped errors pass through unchanged.
				assert.Equal(t, tt.err, mapped)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.True(t, IsUniqueViolation(
		fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: uniqueViolationCode})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: foreignKeyViolationCode}))
	assert.False(t, IsUniqueViolation(errors.New("plain error")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: foreignKeyViolationCode}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.False(t, IsForeignKeyViolation(nil))
}

func TestCheckRowsAffected(t *testing.T) {
	tests := []struct {
		name          string
		result        sql.Result
		entityName    string
		expectedError error
	}{
		{
			name:       "rows_affected",
			result:     mockResult{rowsAffected: 1},
			entityName: "user",
		},
		{
			name:          "no_rows_affected",
			result:        mockResult{rowsAffected: 0},
			entityName:    "user",
			expectedError: store.ErrNotFound,
		},
		{
			name:          "no_rows_affected_no_entity_name",
			result:        mockResult{rowsAffected: 0},
			expectedError: store.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRowsAffected(tt.result, tt.entityName)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("nil_result", func(t *testing.T) {
		assert.Error(t, CheckRowsAffected(nil, "user"))
	})

	t.Run("rows_affected_error", func(t *testing.T) {
		err := CheckRowsAffected(mockResult{err: errors.New("driver error")}, "user")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrNotFound)
	})
}
