package payrate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolve_Precedence(t *testing.T) {
	roleRates := map[string]decimal.Decimal{
		"cook": decimal.NewFromInt(12),
	}
	defaultRate := decimal.NewFromInt(15)

	override := decimal.NewNullDecimal(decimal.NewFromInt(20))

	// Individual override wins over everything.
	got := Resolve(override, "cook", roleRates, defaultRate)
	assert.True(t, got.Equal(decimal.NewFromInt(20)))

	// No override: the role rate applies.
	got = Resolve(decimal.NullDecimal{}, "cook", roleRates, defaultRate)
	assert.True(t, got.Equal(decimal.NewFromInt(12)))

	// Unknown role falls through to the default.
	got = Resolve(decimal.NullDecimal{}, "barista", roleRates, defaultRate)
	assert.True(t, got.Equal(decimal.NewFromInt(15)))
}

func TestResolve_ClearedOverrideFallsBack(t *testing.T) {
	roleRates := map[string]decimal.Decimal{
		"cook": decimal.NewFromInt(12),
	}

	// A cleared override behaves exactly like one that never existed.
	got := Resolve(decimal.NullDecimal{}, "cook", roleRates, decimal.NewFromInt(15))
	assert.True(t, got.Equal(decimal.NewFromInt(12)))
}

func TestResolve_ZeroOverrideIsHonored(t *testing.T) {
	// Zero is a valid rate, distinct from an absent override.
	override := decimal.NewNullDecimal(decimal.Zero)
	got := Resolve(override, "cook", nil, decimal.NewFromInt(15))
	assert.True(t, got.Equal(decimal.Zero))
}
