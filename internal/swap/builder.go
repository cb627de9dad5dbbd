package swap

import "fmt"

// Builder constructs a Leg through a fluent interface. Setters mutate the
// builder and return it for chaining; Build validates and produces the
// immutable leg. The zero builder defaults to ACT_360 and SEMI_ANNUAL.
type Builder struct {
	currency  string
	notional  float64
	rate      Rate
	dayCount  DayCountConvention
	frequency PaymentFrequency
	spreadBps float64
	hasSpread bool
}

// NewLeg returns a fresh leg builder.
func NewLeg() *Builder {
	return &Builder{
		dayCount:  DayCountAct360,
		frequency: FrequencySemiAnnual,
	}
}

// Currency sets the leg's 3-letter currency code.
func (b *Builder) Currency(currency string) *Builder {
	b.currency = currency
	return b
}

// Notional sets the leg's notional amount.
func (b *Builder) Notional(notional float64) *Builder {
	b.notional = notional
	return b
}

// FixedRate marks the leg fixed at the given decimal rate.
func (b *Builder) FixedRate(rate float64) *Builder {
	b.rate = FixedRate(rate)
	return b
}

// FloatingIndex marks the leg floating on the given index.
func (b *Builder) FloatingIndex(index FloatingIndex) *Builder {
	b.rate = FloatingRate(index)
	return b
}

// DayCount sets the day count convention.
func (b *Builder) DayCount(dc DayCountConvention) *Builder {
	b.dayCount = dc
	return b
}

// Frequency sets the payment frequency.
func (b *Builder) Frequency(freq PaymentFrequency) *Builder {
	b.frequency = freq
	return b
}

// Spread sets the spread over the floating index, in basis points. Only
// meaningful on floating legs.
func (b *Builder) Spread(bps float64) *Builder {
	b.spreadBps = bps
	b.hasSpread = true
	return b
}

// Build validates the staged fields and returns the leg. Preconditions are
// checked in order: currency must be non-empty, notional positive, and the
// rate set to exactly one of fixed or floating.
func (b *Builder) Build() (*Leg, error) {
	if b.currency == "" {
		return nil, fmt.Errorf("currency is required")
	}
	if b.notional <= 0 {
		return nil, fmt.Errorf("notional must be positive, got %v", b.notional)
	}
	if b.rate.kind == "" {
		return nil, fmt.Errorf("rate must be set (fixed or floating)")
	}

	return &Leg{
		currency:  b.currency,
		notional:  b.notional,
		rate:      b.rate,
		dayCount:  b.dayCount,
		frequency: b.frequency,
		spreadBps: b.spreadBps,
		hasSpread: b.hasSpread,
	}, nil
}
