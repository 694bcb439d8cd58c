package validation_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/g-inventory/internal/domain"
	"github.com/jhoicas/g-inventory/pkg/validation"
)

type sample struct {
	Name  string          `json:"name" validate:"required,max=5"`
	Value decimal.Decimal `json:"value" validate:"money"`
}

func TestStruct_OK(t *testing.T) {
	err := validation.Struct(sample{Name: "abc", Value: decimal.RequireFromString("10.50")})
	assert.NoError(t, err)
}

func TestStruct_FieldErrors(t *testing.T) {
	err := validation.Struct(sample{Name: "demasiado largo", Value: decimal.RequireFromString("-1")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "max", verr.Fields["name"])
	assert.Equal(t, "money", verr.Fields["value"])
}

func TestStruct_MoneyScale(t *testing.T) {
	err := validation.Struct(sample{Name: "a", Value: decimal.RequireFromString("1.234")})
	require.Error(t, err)

	err = validation.Struct(sample{Name: "a", Value: decimal.RequireFromString("1.230")})
	assert.NoError(t, err)
}

func TestStruct_BcryptLen(t *testing.T) {
	type cred struct {
		Password string `json:"password" validate:"omitempty,bcryptlen"`
	}
	// 36 runas de 2 bytes caben; 37 no
	assert.NoError(t, validation.Struct(cred{Password: strings.Repeat("ñ", 36)}))

	err := validation.Struct(cred{Password: strings.Repeat("ñ", 37)})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "bcryptlen", verr.Fields["password"])
}
