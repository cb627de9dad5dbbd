package swap

import (
	"fmt"
	"strings"
)

// Type is the structural category of a swap.
type Type string

const (
	TypeVanilla       Type = "VANILLA"
	TypeBasis         Type = "BASIS"
	TypeCrossCurrency Type = "CROSS_CURRENCY"
	// TypeOvernight is declared for completeness but has no factory and no
	// validation support yet; Validate always flags it.
	TypeOvernight Type = "OVERNIGHT"
)

// AssumedFloatingRate is the placeholder used for floating leg payments in
// place of a real fixing lookup. A production system would query the
// index's published fixing for the period.
const AssumedFloatingRate = 0.045

// Swap is an interest rate swap composed of a pay leg and a receive leg.
// Swaps are only created through the New*Swap factories, which reject
// structurally invalid leg combinations up front. A single Swap may back
// any number of swaptions.
type Swap struct {
	swapType      Type
	payLeg        *Leg
	receiveLeg    *Leg
	tenor         string // unit-suffixed token such as "5Y" or "3M"
	effectiveDate string
	fxRate        float64 // cross-currency only
	hasFXRate     bool
}

// NewVanillaSwap creates a fixed-for-floating swap. Exactly one leg must
// be fixed and one floating, and both must share a currency.
func NewVanillaSwap(payLeg, receiveLeg *Leg, tenor, effectiveDate string) (*Swap, error) {
	if !isValidVanilla(payLeg, receiveLeg) {
		return nil, fmt.Errorf("invalid vanilla swap structure: one leg must be fixed, one floating, same currency")
	}
	return &Swap{
		swapType:      TypeVanilla,
		payLeg:        payLeg,
		receiveLeg:    receiveLeg,
		tenor:         tenor,
		effectiveDate: effectiveDate,
	}, nil
}

// NewBasisSwap creates a floating-for-floating swap. Both legs must float
// on distinct indices in the same currency.
func NewBasisSwap(payLeg, receiveLeg *Leg, tenor, effectiveDate string) (*Swap, error) {
	if !isValidBasis(payLeg, receiveLeg) {
		return nil, fmt.Errorf("invalid basis swap structure: both legs must float on distinct indices, same currency")
	}
	return &Swap{
		swapType:      TypeBasis,
		payLeg:        payLeg,
		receiveLeg:    receiveLeg,
		tenor:         tenor,
		effectiveDate: effectiveDate,
	}, nil
}

// NewCrossCurrencySwap creates a swap whose legs pay in different
// currencies, converted at fxRate (receive-leg currency into pay-leg
// currency). fxRate must be positive.
func NewCrossCurrencySwap(payLeg, receiveLeg *Leg, tenor, effectiveDate string, fxRate float64) (*Swap, error) {
	if !isValidCrossCurrency(payLeg, receiveLeg) {
		return nil, fmt.Errorf("invalid cross-currency swap structure: legs must have different currencies")
	}
	if fxRate <= 0 {
		return nil, fmt.Errorf("fx rate must be positive, got %v", fxRate)
	}
	return &Swap{
		swapType:      TypeCrossCurrency,
		payLeg:        payLeg,
		receiveLeg:    receiveLeg,
		tenor:         tenor,
		effectiveDate: effectiveDate,
		fxRate:        fxRate,
		hasFXRate:     true,
	}, nil
}

// Type returns the swap's structural category.
func (s *Swap) Type() Type { return s.swapType }

// PayLeg returns the leg the holder pays.
func (s *Swap) PayLeg() *Leg { return s.payLeg }

// ReceiveLeg returns the leg the holder receives.
func (s *Swap) ReceiveLeg() *Leg { return s.receiveLeg }

// Tenor returns the swap's tenor token (e.g. "5Y").
func (s *Swap) Tenor() string { return s.tenor }

// EffectiveDate returns the swap's effective date string.
func (s *Swap) EffectiveDate() string { return s.effectiveDate }

// FXRate returns the cross-currency conversion rate and whether one is set.
func (s *Swap) FXRate() (float64, bool) { return s.fxRate, s.hasFXRate }

// IsValid reports whether Validate finds no defects.
func (s *Swap) IsValid() bool { return len(s.Validate()) == 0 }

// Validate re-checks the swap's structure and returns every defect found
// as a human-readable string. Factories enforce the same predicates at
// construction; this exists for callers that want a full report.
func (s *Swap) Validate() []string {
	var errs []string

	if s.payLeg == nil || s.receiveLeg == nil {
		errs = append(errs, "both pay and receive legs required")
		return errs
	}

	if s.tenor == "" {
		errs = append(errs, "tenor is required")
	}
	if s.effectiveDate == "" {
		errs = append(errs, "effective date is required")
	}

	switch s.swapType {
	case TypeVanilla:
		if !isValidVanilla(s.payLeg, s.receiveLeg) {
			errs = append(errs, "invalid vanilla swap: one leg must be fixed, one floating")
		}
	case TypeBasis:
		if !isValidBasis(s.payLeg, s.receiveLeg) {
			errs = append(errs, "invalid basis swap: both legs must be floating")
		}
	case TypeCrossCurrency:
		if !isValidCrossCurrency(s.payLeg, s.receiveLeg) {
			errs = append(errs, "invalid cross-currency swap: legs must have different currencies")
		}
		if !s.hasFXRate || s.fxRate <= 0 {
			errs = append(errs, "cross-currency swap requires valid FX rate")
		}
	case TypeOvernight:
		errs = append(errs, "overnight swap validation not yet implemented")
	}

	return errs
}

// Notional returns the swap's notional. Cross-currency swaps average the
// pay-leg notional with the receive-leg notional converted at the FX rate;
// every other type (including basis swaps with mismatched leg notionals)
// uses the pay-leg notional alone.
func (s *Swap) Notional() float64 {
	if s.swapType == TypeCrossCurrency && s.hasFXRate {
		return (s.payLeg.notional + s.receiveLeg.notional*s.fxRate) / 2.0
	}
	return s.payLeg.notional
}

// CalculateNetPayment computes the net cash exchanged over a period of the
// given length in days, as receive-leg payment minus pay-leg payment
// (positive means a net inflow to the receive side). Floating legs accrue
// at AssumedFloatingRate plus their spread.
func (s *Swap) CalculateNetPayment(periodDays float64) float64 {
	payment := func(leg *Leg) float64 {
		yearFrac := leg.YearFraction(int(periodDays))
		if leg.IsFixed() {
			return leg.notional * leg.rate.fixed * yearFrac
		}
		spread := 0.0
		if leg.hasSpread {
			spread = leg.spreadBps / 10000.0 // bps to decimal
		}
		return leg.notional * (AssumedFloatingRate + spread) * yearFrac
	}

	return payment(s.receiveLeg) - payment(s.payLeg)
}

// String renders the swap for logs and summaries.
func (s *Swap) String() string {
	var b strings.Builder
	switch s.swapType {
	case TypeVanilla:
		b.WriteString("VANILLA IRS")
	case TypeBasis:
		b.WriteString("BASIS SWAP")
	case TypeCrossCurrency:
		b.WriteString("CROSS-CURRENCY SWAP")
	case TypeOvernight:
		b.WriteString("OVERNIGHT SWAP")
	}
	fmt.Fprintf(&b, " (%s)\nEffective: %s\nPay: %s\nReceive: %s",
		s.tenor, s.effectiveDate, s.payLeg, s.receiveLeg)
	if s.hasFXRate {
		fmt.Fprintf(&b, "\nFX Rate: %v", s.fxRate)
	}
	return b.String()
}

func isValidVanilla(pay, receive *Leg) bool {
	oneFixedOneFloat := (pay.IsFixed() && receive.IsFloating()) ||
		(pay.IsFloating() && receive.IsFixed())
	return oneFixedOneFloat && pay.currency == receive.currency
}

func isValidBasis(pay, receive *Leg) bool {
	if !pay.IsFloating() || !receive.IsFloating() {
		return false
	}
	if pay.currency != receive.currency {
		return false
	}
	return pay.rate.index != receive.rate.index
}

func isValidCrossCurrency(pay, receive *Leg) bool {
	return pay.currency != receive.currency
}
