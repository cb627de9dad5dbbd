// Package swap provides the interest rate swap domain model: swap legs,
// leg construction via a fluent builder, and typed swaps composed of a pay
// and a receive leg.
package swap

import (
	"errors"
	"fmt"
	"strings"
)

// DayCountConvention is the rule for converting a day count into a year
// fraction for interest accrual.
type DayCountConvention string

const (
	// DayCountAct360 is Actual/360, used by most USD derivatives.
	DayCountAct360 DayCountConvention = "ACT_360"
	// DayCountAct365 is Actual/365, used for GBP and some others.
	DayCountAct365 DayCountConvention = "ACT_365"
	// DayCountThirty360 is 30/360, used by corporate bonds and some swaps.
	DayCountThirty360 DayCountConvention = "THIRTY_360"
	// DayCountActAct is Actual/Actual, used by treasuries.
	DayCountActAct DayCountConvention = "ACT_ACT"
)

// PaymentFrequency is how often a leg pays.
type PaymentFrequency string

const (
	FrequencyAnnual     PaymentFrequency = "ANNUAL"
	FrequencySemiAnnual PaymentFrequency = "SEMI_ANNUAL"
	FrequencyQuarterly  PaymentFrequency = "QUARTERLY"
	FrequencyMonthly    PaymentFrequency = "MONTHLY"
)

// PaymentsPerYear returns the number of payments per year, or 0 for an
// unknown frequency.
func (f PaymentFrequency) PaymentsPerYear() int {
	switch f {
	case FrequencyAnnual:
		return 1
	case FrequencySemiAnnual:
		return 2
	case FrequencyQuarterly:
		return 4
	case FrequencyMonthly:
		return 12
	default:
		return 0
	}
}

// FloatingIndex is a floating rate benchmark.
type FloatingIndex string

const (
	IndexSOFR     FloatingIndex = "SOFR"      // Secured Overnight Financing Rate (USD)
	IndexLiborUSD FloatingIndex = "LIBOR_USD" // USD LIBOR (being phased out)
	IndexEuribor  FloatingIndex = "EURIBOR"   // Euro Interbank Offered Rate
	IndexSONIA    FloatingIndex = "SONIA"     // Sterling Overnight Index Average (GBP)
	IndexTONAR    FloatingIndex = "TONAR"     // Tokyo Overnight Average Rate (JPY)
	IndexESTR     FloatingIndex = "ESTR"      // Euro Short-Term Rate
)

// LegKind distinguishes fixed from floating legs.
type LegKind string

const (
	LegFixed    LegKind = "FIXED"
	LegFloating LegKind = "FLOATING"
)

// Accessing the wrong variant of a Rate returns one of these.
var (
	ErrNotFixed    = errors.New("leg is floating, not fixed")
	ErrNotFloating = errors.New("leg is fixed, not floating")
)

// Rate is the tagged fixed-or-floating rate of a leg. The zero value is
// unset; legs are only ever built with one of the two variants.
type Rate struct {
	kind  LegKind
	fixed float64
	index FloatingIndex
}

// FixedRate returns a Rate holding a fixed decimal rate (0.05 == 5%).
func FixedRate(rate float64) Rate {
	return Rate{kind: LegFixed, fixed: rate}
}

// FloatingRate returns a Rate referencing a floating index.
func FloatingRate(index FloatingIndex) Rate {
	return Rate{kind: LegFloating, index: index}
}

// Kind reports which variant the rate holds ("" when unset).
func (r Rate) Kind() LegKind { return r.kind }

// Fixed returns the fixed rate, or ErrNotFixed for a floating rate.
func (r Rate) Fixed() (float64, error) {
	if r.kind != LegFixed {
		return 0, ErrNotFixed
	}
	return r.fixed, nil
}

// Index returns the floating index, or ErrNotFloating for a fixed rate.
func (r Rate) Index() (FloatingIndex, error) {
	if r.kind != LegFloating {
		return "", ErrNotFloating
	}
	return r.index, nil
}

// Leg is one side of an interest rate swap. Legs are immutable; construct
// them through Builder.
type Leg struct {
	currency  string
	notional  float64
	rate      Rate
	dayCount  DayCountConvention
	frequency PaymentFrequency
	spreadBps float64 // spread over the floating index, in basis points
	hasSpread bool
}

// Kind returns whether the leg is fixed or floating.
func (l *Leg) Kind() LegKind { return l.rate.kind }

// Currency returns the leg's 3-letter currency code.
func (l *Leg) Currency() string { return l.currency }

// Notional returns the leg's notional amount.
func (l *Leg) Notional() float64 { return l.notional }

// Rate returns the leg's tagged rate.
func (l *Leg) Rate() Rate { return l.rate }

// DayCount returns the leg's day count convention.
func (l *Leg) DayCount() DayCountConvention { return l.dayCount }

// Frequency returns the leg's payment frequency.
func (l *Leg) Frequency() PaymentFrequency { return l.frequency }

// Spread returns the spread over the floating index in basis points, and
// whether one was set.
func (l *Leg) Spread() (float64, bool) { return l.spreadBps, l.hasSpread }

// IsFixed reports whether the leg pays a fixed rate.
func (l *Leg) IsFixed() bool { return l.rate.kind == LegFixed }

// IsFloating reports whether the leg pays a floating rate.
func (l *Leg) IsFloating() bool { return l.rate.kind == LegFloating }

// FixedRate returns the fixed rate, or ErrNotFixed for a floating leg.
func (l *Leg) FixedRate() (float64, error) { return l.rate.Fixed() }

// FloatingIndex returns the floating index, or ErrNotFloating for a fixed
// leg.
func (l *Leg) FloatingIndex() (FloatingIndex, error) { return l.rate.Index() }

// YearFraction converts a day count into a year fraction under the leg's
// convention. The 30/360 and ACT/ACT treatments are deliberate
// simplifications (no date-roll or leap-year schedule logic): 30/360 uses
// d/360 and ACT/ACT uses d/365.25.
func (l *Leg) YearFraction(days int) float64 {
	switch l.dayCount {
	case DayCountAct365:
		return float64(days) / 365.0
	case DayCountActAct:
		return float64(days) / 365.25
	default: // ACT_360 and THIRTY_360
		return float64(days) / 360.0
	}
}

// String renders the leg for logs and summaries.
func (l *Leg) String() string {
	var b strings.Builder
	if l.IsFixed() {
		fmt.Fprintf(&b, "FIXED %.4f%%", l.rate.fixed*100)
	} else {
		fmt.Fprintf(&b, "FLOATING %s", l.rate.index)
		if l.hasSpread {
			fmt.Fprintf(&b, "+%.1fbps", l.spreadBps)
		}
	}
	fmt.Fprintf(&b, " %s %.0f %s %s", l.currency, l.notional, l.dayCount, l.frequency)
	return b.String()
}

// ParseDayCount converts a string such as "ACT_360" into a convention.
func ParseDayCount(s string) (DayCountConvention, error) {
	dc := DayCountConvention(strings.ToUpper(strings.TrimSpace(s)))
	switch dc {
	case DayCountAct360, DayCountAct365, DayCountThirty360, DayCountActAct:
		return dc, nil
	}
	return "", fmt.Errorf("unknown day count convention: %q", s)
}

// ParseFrequency converts a string such as "QUARTERLY" into a frequency.
func ParseFrequency(s string) (PaymentFrequency, error) {
	freq := PaymentFrequency(strings.ToUpper(strings.TrimSpace(s)))
	switch freq {
	case FrequencyAnnual, FrequencySemiAnnual, FrequencyQuarterly, FrequencyMonthly:
		return freq, nil
	}
	return "", fmt.Errorf("unknown payment frequency: %q", s)
}

// ParseFloatingIndex converts a string such as "SOFR" into an index.
func ParseFloatingIndex(s string) (FloatingIndex, error) {
	index := FloatingIndex(strings.ToUpper(strings.TrimSpace(s)))
	switch index {
	case IndexSOFR, IndexLiborUSD, IndexEuribor, IndexSONIA, IndexTONAR, IndexESTR:
		return index, nil
	}
	return "", fmt.Errorf("unknown floating index: %q", s)
}
