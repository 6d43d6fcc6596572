package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestToDomainError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
		assert.NoError(t, MapError(nil))
	})

	t.Run("domain error passes through wrapping", func(t *testing.T) {
		original := NewValidationError("bad status", map[string]any{"status": "Nope"})
		wrapped := fmt.Errorf("select filter: %w", original)

		de := ToDomainError(wrapped)
		assert.Equal(t, "VALIDATION_FAILED", de.Code)
		assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
		assert.Equal(t, "Nope", de.Details["status"])
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		de := ToDomainError(fmt.Errorf("get ticket: %w", pgx.ErrNoRows))
		assert.Equal(t, "NOT_FOUND", de.Code)
		assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	})

	t.Run("unknown errors become internal", func(t *testing.T) {
		cause := errors.New("boom")
		de := ToDomainError(cause)
		assert.Equal(t, "INTERNAL_ERROR", de.Code)
		assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
		assert.ErrorIs(t, de, cause)
	})
}

func TestDomainErrorMessage(t *testing.T) {
	err := NewUnavailable("ticket source unavailable", errors.New("dial tcp: refused"))
	assert.Equal(t, "ticket source unavailable: dial tcp: refused", err.Error())
	assert.Equal(t, "ticket not found", NewNotFound("ticket", nil).Error())
}
