package models_test

import (
	"testing"

	"gbce/internal/models"
	"gbce/internal/testutil"
)

func TestInstrument_DividendYield(t *testing.T) {
	t.Run("ordinary", func(t *testing.T) {
		ale := &models.Instrument{Symbol: "ALE", Category: models.CategoryOrdinary, ParValue: 60, LastDividend: 23, FixedRate: models.NoFixedRate}

		yield, err := ale.DividendYield(100)
		testutil.AssertNoError(t, err)
		testutil.AssertFloatEquals(t, 0.23, yield, 1e-9)
	})

	t.Run("preferred_uses_fixed_rate_on_par", func(t *testing.T) {
		gin := &models.Instrument{Symbol: "GIN", Category: models.CategoryPreferred, ParValue: 100, LastDividend: 8, FixedRate: 2}

		yield, err := gin.DividendYield(100)
		testutil.AssertNoError(t, err)
		testutil.AssertFloatEquals(t, 0.02, yield, 1e-9)
	})

	t.Run("undefined_at_zero_price", func(t *testing.T) {
		ale := &models.Instrument{Symbol: "ALE", Category: models.CategoryOrdinary, LastDividend: 23}

		_, err := ale.DividendYield(0)
		testutil.AssertAppError(t, err, "UNDEFINED_RATIO")
	})

	t.Run("undefined_at_negative_price", func(t *testing.T) {
		gin := &models.Instrument{Symbol: "GIN", Category: models.CategoryPreferred, ParValue: 100, FixedRate: 2}

		_, err := gin.DividendYield(-1)
		testutil.AssertAppError(t, err, "UNDEFINED_RATIO")
	})
}

func TestInstrument_PERatio(t *testing.T) {
	t.Run("ordinary", func(t *testing.T) {
		pop := &models.Instrument{Symbol: "POP", Category: models.CategoryOrdinary, ParValue: 100, LastDividend: 8}

		testutil.AssertFloatEquals(t, 12.5, pop.PERatio(100), 1e-9)
	})

	t.Run("zero_dividend_yields_zero_ratio", func(t *testing.T) {
		tea := &models.Instrument{Symbol: "TEA", Category: models.CategoryOrdinary, ParValue: 100, LastDividend: 0}

		if ratio := tea.PERatio(100); ratio != 0 {
			t.Errorf("expected ratio 0 for zero dividend, got %v", ratio)
		}
		if ratio := tea.PERatio(12345); ratio != 0 {
			t.Errorf("expected ratio 0 regardless of price, got %v", ratio)
		}
	})

	t.Run("preferred_uses_computed_dividend", func(t *testing.T) {
		// Current dividend = 2/100 * 100 = 2, so ratio = 100/2.
		gin := &models.Instrument{Symbol: "GIN", Category: models.CategoryPreferred, ParValue: 100, LastDividend: 8, FixedRate: 2}

		testutil.AssertFloatEquals(t, 50, gin.PERatio(100), 1e-9)
	})
}
