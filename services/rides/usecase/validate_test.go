package usecase

import (
	"testing"

	"github.com/piresc/campusride/services/rides"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateFare_Bounds(t *testing.T) {
	for _, raw := range []string{"0", "55.50", "99999999.99"} {
		amount := decimal.RequireFromString(raw)
		assert.NoError(t, validateFare("offered_fare", &amount), raw)
	}
	for _, raw := range []string{"-0.01", "100000000", "1e12"} {
		amount := decimal.RequireFromString(raw)
		assert.ErrorIs(t, validateFare("offered_fare", &amount), rides.ErrValidation, raw)
	}
	assert.NoError(t, validateFare("offered_fare", nil))
}
