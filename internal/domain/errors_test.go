package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
)

func TestValidationError_EsErrInvalidInput(t *testing.T) {
	err := fmt.Errorf("crear venta: %w", domain.Invalid("quantity", "debe ser mayor que 0"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.EqualError(t, err, "crear venta: quantity: debe ser mayor que 0")

	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "quantity", ve.Field)
}

func TestErrInsufficientStock_EsConflicto(t *testing.T) {
	assert.ErrorIs(t, domain.ErrInsufficientStock, domain.ErrConflict)
	assert.NotErrorIs(t, domain.ErrDuplicate, domain.ErrConflict)
}
