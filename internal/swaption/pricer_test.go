package swaption

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elamnapov/rfq-parser-app/internal/swap"
)

func pricerSwap(t *testing.T, tenor string, fixedFreq swap.PaymentFrequency) *swap.Swap {
	t.Helper()

	payLeg, err := swap.NewLeg().
		Currency("USD").Notional(10_000_000).FixedRate(0.05).
		DayCount(swap.DayCountAct360).Frequency(fixedFreq).Build()
	require.NoError(t, err)

	receiveLeg, err := swap.NewLeg().
		Currency("USD").Notional(10_000_000).FloatingIndex(swap.IndexSOFR).
		DayCount(swap.DayCountAct360).Frequency(swap.FrequencyQuarterly).Build()
	require.NoError(t, err)

	s, err := swap.NewVanillaSwap(payLeg, receiveLeg, tenor, "2024-01-15")
	require.NoError(t, err)
	return s
}

func TestCalculateAnnuity(t *testing.T) {
	s := pricerSwap(t, "2Y", swap.FrequencyQuarterly)

	// Eight quarterly payments discounted continuously at 4%.
	expected := 0.0
	for i := 1; i <= 8; i++ {
		expected += math.Exp(-0.04*float64(i)/4.0) * 0.25
	}

	assert.InDelta(t, expected, CalculateAnnuity(s, 0.04), 1e-12)
}

func TestCalculateAnnuityUsesFixedLegFrequency(t *testing.T) {
	// Fixed leg is semi-annual even though the floating leg is quarterly.
	s := pricerSwap(t, "1Y", swap.FrequencySemiAnnual)

	expected := 0.0
	for i := 1; i <= 2; i++ {
		expected += math.Exp(-0.05*float64(i)/2.0) * 0.5
	}

	assert.InDelta(t, expected, CalculateAnnuity(s, 0.05), 1e-12)
}

func TestCalculateAnnuityFallsBackToPayLegForBasisSwaps(t *testing.T) {
	payLeg, err := swap.NewLeg().
		Currency("USD").Notional(1_000_000).FloatingIndex(swap.IndexSOFR).
		Frequency(swap.FrequencyAnnual).Build()
	require.NoError(t, err)

	receiveLeg, err := swap.NewLeg().
		Currency("USD").Notional(1_000_000).FloatingIndex(swap.IndexLiborUSD).
		Frequency(swap.FrequencyMonthly).Build()
	require.NoError(t, err)

	s, err := swap.NewBasisSwap(payLeg, receiveLeg, "2Y", "2024-01-15")
	require.NoError(t, err)

	// Pay leg is annual: two payments.
	expected := math.Exp(-0.03)*1.0 + math.Exp(-0.06)*1.0
	assert.InDelta(t, expected, CalculateAnnuity(s, 0.03), 1e-12)
}

func TestCalculateAnnuityDegenerateFallback(t *testing.T) {
	// Unparseable tenor yields no payments, so the annuity degenerates to 1.
	s := pricerSwap(t, "spot", swap.FrequencySemiAnnual)
	assert.Equal(t, 1.0, CalculateAnnuity(s, 0.05))

	// Tenor shorter than one payment period floors to zero payments.
	s = pricerSwap(t, "6M", swap.FrequencyAnnual)
	assert.Equal(t, 1.0, CalculateAnnuity(s, 0.05))
}

func TestBlackPricePayerReceiverParity(t *testing.T) {
	underlying := pricerSwap(t, "5Y", swap.FrequencySemiAnnual)

	payer, err := NewEuropean(TypePayer, underlying, "2025-01-15", 0.05, 0)
	require.NoError(t, err)
	receiver, err := NewEuropean(TypeReceiver, underlying, "2025-01-15", 0.05, 0)
	require.NoError(t, err)

	forward, vol, expiry := 0.055, 0.25, 1.0
	payerPrice := BlackPrice(payer, forward, vol, expiry)
	receiverPrice := BlackPrice(receiver, forward, vol, expiry)

	assert.Greater(t, payerPrice, 0.0)
	assert.Greater(t, receiverPrice, 0.0)

	// Black-76 parity: payer − receiver = notional × annuity × (F − K).
	parity := underlying.Notional() * CalculateAnnuity(underlying, forward) * (forward - 0.05)
	assert.InDelta(t, parity, payerPrice-receiverPrice, 1e-6)
}

func TestBlackPriceMonotonicInVolatility(t *testing.T) {
	payer, err := NewEuropean(TypePayer, pricerSwap(t, "5Y", swap.FrequencySemiAnnual),
		"2025-01-15", 0.05, 0)
	require.NoError(t, err)

	prev := 0.0
	for _, vol := range []float64{0.05, 0.10, 0.20, 0.40} {
		price := BlackPrice(payer, 0.05, vol, 1.0)
		assert.Greater(t, price, prev, "vol %v", vol)
		prev = price
	}
}

func TestBlackPriceUnguardedPreconditions(t *testing.T) {
	payer, err := NewEuropean(TypePayer, pricerSwap(t, "5Y", swap.FrequencySemiAnnual),
		"2025-01-15", 0.05, 0)
	require.NoError(t, err)

	// Zero volatility and zero expiry are caller errors; the pricer
	// propagates the non-finite result rather than masking it.
	assert.True(t, math.IsNaN(BlackPrice(payer, 0.05, 0, 1.0)))
	assert.True(t, math.IsNaN(BlackPrice(payer, 0.05, 0.2, 0)))
}

func TestImpliedVolatilityRoundTrip(t *testing.T) {
	// Short tenor keeps the annuity near 1, where the solver's simplified
	// vega is accurate.
	payer, err := NewEuropean(TypePayer, pricerSwap(t, "1Y", swap.FrequencyAnnual),
		"2025-01-15", 0.05, 0)
	require.NoError(t, err)

	for _, trueVol := range []float64{0.10, 0.20, 0.35} {
		price := BlackPrice(payer, 0.055, trueVol, 1.0)
		implied := ImpliedVolatility(payer, price, 0.055, 1.0)
		assert.InDelta(t, trueVol, implied, 1e-4, "true vol %v", trueVol)
	}
}

func TestImpliedVolatilityReturnsLastEstimate(t *testing.T) {
	payer, err := NewEuropean(TypePayer, pricerSwap(t, "1Y", swap.FrequencyAnnual),
		"2025-01-15", 0.05, 0)
	require.NoError(t, err)

	// An unreachable market price cannot converge; the solver still
	// returns its final (positive) estimate rather than failing.
	vol := ImpliedVolatility(payer, -5_000_000, 0.055, 1.0)
	assert.Greater(t, vol, 0.0)
}
