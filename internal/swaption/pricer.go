package swaption

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/elamnapov/rfq-parser-app/internal/swap"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// CalculateAnnuity computes the annuity factor of the underlying swap's
// payment schedule under continuous compounding at discountRate: the sum
// over payment dates of exp(−r·tᵢ) times the payment-period length. The
// payment frequency is taken from the fixed leg, falling back to the pay
// leg when neither leg is fixed. Returns 1.0 when the tenor or frequency
// cannot be determined.
func CalculateAnnuity(s *swap.Swap, discountRate float64) float64 {
	// Frequency comes from the fixed leg; a swap with no fixed leg falls
	// back to the pay leg.
	leg := s.PayLeg()
	if leg != nil && !leg.IsFixed() && s.ReceiveLeg() != nil && s.ReceiveLeg().IsFixed() {
		leg = s.ReceiveLeg()
	}
	if leg == nil {
		return 1.0
	}

	perYear := leg.Frequency().PaymentsPerYear()
	tenorYears := float64(swap.TenorToMonths(s.Tenor())) / 12.0
	if perYear <= 0 || tenorYears <= 0 {
		return 1.0
	}

	numPayments := int(math.Floor(tenorYears * float64(perYear)))
	if numPayments <= 0 {
		return 1.0
	}

	period := 1.0 / float64(perYear)
	annuity := 0.0
	for i := 1; i <= numPayments; i++ {
		t := float64(i) * period
		annuity += math.Exp(-discountRate*t) * period
	}
	return annuity
}

// BlackPrice prices a swaption with the Black-76 formula:
//
//	d1 = (ln(F/K) + 0.5σ²T) / (σ√T),  d2 = d1 − σ√T
//	payer    = F·Φ(d1) − K·Φ(d2)
//	receiver = K·Φ(−d2) − F·Φ(−d1)
//	price    = notional × annuity × term
//
// where the annuity discounts at the forward rate. The formula is
// undefined for volatility ≤ 0, timeToExpiry ≤ 0, or non-positive forward
// or strike; callers must guard those inputs, as the result will be NaN or
// infinite rather than an error.
func BlackPrice(s *Swaption, forwardRate, volatility, timeToExpiry float64) float64 {
	strike := s.StrikeRate()
	notional := s.Underlying().Notional()

	sqrtT := math.Sqrt(timeToExpiry)
	d1 := (math.Log(forwardRate/strike) + 0.5*volatility*volatility*timeToExpiry) /
		(volatility * sqrtT)
	d2 := d1 - volatility*sqrtT

	var term float64
	if s.IsPayer() {
		term = forwardRate*stdNormal.CDF(d1) - strike*stdNormal.CDF(d2)
	} else {
		term = strike*stdNormal.CDF(-d2) - forwardRate*stdNormal.CDF(-d1)
	}

	return notional * CalculateAnnuity(s.Underlying(), forwardRate) * term
}

// ImpliedVolatility solves BlackPrice for the volatility that reproduces
// marketPrice, by Newton-Raphson from σ = 0.20 with at most 100 iterations
// and a 1e-6 price tolerance. A vanishing vega stops the iteration early,
// and a non-positive update is clamped to 0.01. The last σ held is
// returned either way; convergence is not guaranteed.
func ImpliedVolatility(s *Swaption, marketPrice, forwardRate, timeToExpiry float64) float64 {
	const (
		maxIterations = 100
		tolerance     = 1e-6
	)

	vol := 0.20
	for i := 0; i < maxIterations; i++ {
		price := BlackPrice(s, forwardRate, vol, timeToExpiry)
		diff := price - marketPrice

		if math.Abs(diff) < tolerance {
			return vol
		}

		strike := s.StrikeRate()
		sqrtT := math.Sqrt(timeToExpiry)
		d1 := (math.Log(forwardRate/strike) + 0.5*vol*vol*timeToExpiry) /
			(vol * sqrtT)
		vega := s.Underlying().Notional() * forwardRate * stdNormal.Prob(d1) * sqrtT

		if math.Abs(vega) < 1e-10 {
			break
		}

		vol -= diff / vega
		if vol <= 0 {
			vol = 0.01
		}
	}

	return vol
}
