package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credit-plan-engine/internal/models"
)

func TestAmount_UnmarshalNumber(t *testing.T) {
	var a models.Amount
	require.NoError(t, json.Unmarshal([]byte(`1000.25`), &a))
	assert.Equal(t, models.Amount(1000.25), a)
}

func TestAmount_UnmarshalString(t *testing.T) {
	cases := map[string]models.Amount{
		`"1000.25"`: 1000.25,
		`"1000,25"`: 1000.25,
		`" 15,5 "`:  15.5,
		`"0"`:       0,
	}

	for raw, want := range cases {
		var a models.Amount
		require.NoError(t, json.Unmarshal([]byte(raw), &a), "raw=%s", raw)
		assert.Equal(t, want, a, "raw=%s", raw)
	}
}

func TestAmount_UnmarshalInvalid(t *testing.T) {
	for _, raw := range []string{`"abc"`, `""`, `"12,34,56"`, `true`} {
		var a models.Amount
		err := json.Unmarshal([]byte(raw), &a)
		assert.ErrorIs(t, err, models.ErrInvalidAmount, "raw=%s", raw)
	}
}

func TestParseAmount(t *testing.T) {
	v, err := models.ParseAmount("123,45")
	require.NoError(t, err)
	assert.Equal(t, 123.45, v)

	_, err = models.ParseAmount("not money")
	assert.ErrorIs(t, err, models.ErrInvalidAmount)
}
