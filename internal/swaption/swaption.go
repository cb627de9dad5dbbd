// Package swaption provides options on interest rate swaps: exercise-style
// semantics for European, American and Bermudan swaptions, plus Black-76
// pricing with an annuity factor.
package swaption

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/elamnapov/rfq-parser-app/internal/swap"
)

// Type distinguishes the right to pay fixed from the right to receive
// fixed.
type Type string

const (
	// TypePayer is the right to enter the swap paying fixed.
	TypePayer Type = "PAYER"
	// TypeReceiver is the right to enter the swap receiving fixed.
	TypeReceiver Type = "RECEIVER"
)

// ExerciseStyle determines on which dates a swaption may be exercised.
type ExerciseStyle string

const (
	// StyleEuropean allows exercise only at expiry.
	StyleEuropean ExerciseStyle = "EUROPEAN"
	// StyleAmerican allows exercise any time up to expiry.
	StyleAmerican ExerciseStyle = "AMERICAN"
	// StyleBermudan allows exercise on specific dates only.
	StyleBermudan ExerciseStyle = "BERMUDAN"
)

// ErrNotBermudan is returned when exercise dates are added to a swaption
// whose style does not carry an exercise schedule.
var ErrNotBermudan = errors.New("can only add exercise dates to Bermudan swaptions")

// Swaption is an option on an interest rate swap. The underlying swap is
// shared: the same swap may back any number of swaptions. Dates are opaque
// strings compared lexicographically, so they must be in a sortable format
// such as ISO-8601 (YYYY-MM-DD).
type Swaption struct {
	swaptionType  Type
	style         ExerciseStyle
	underlying    *swap.Swap
	expiryDate    string
	strikeRate    float64 // decimal, e.g. 0.05 == 5%
	premium       float64
	exerciseDates []string // Bermudan schedule; [expiry] for European
}

func newSwaption(st Type, style ExerciseStyle, underlying *swap.Swap, expiryDate string, strikeRate, premium float64) (*Swaption, error) {
	if underlying == nil {
		return nil, fmt.Errorf("underlying swap cannot be nil")
	}

	s := &Swaption{
		swaptionType: st,
		style:        style,
		underlying:   underlying,
		expiryDate:   expiryDate,
		strikeRate:   strikeRate,
		premium:      premium,
	}

	if style == StyleEuropean {
		s.exerciseDates = []string{expiryDate}
	}

	return s, nil
}

// NewEuropean creates a swaption exercisable only at expiry. The expiry
// date becomes its single exercise date.
func NewEuropean(st Type, underlying *swap.Swap, expiryDate string, strikeRate, premium float64) (*Swaption, error) {
	return newSwaption(st, StyleEuropean, underlying, expiryDate, strikeRate, premium)
}

// NewAmerican creates a swaption exercisable any time up to expiry.
func NewAmerican(st Type, underlying *swap.Swap, expiryDate string, strikeRate, premium float64) (*Swaption, error) {
	return newSwaption(st, StyleAmerican, underlying, expiryDate, strikeRate, premium)
}

// NewBermudan creates a swaption exercisable on the given dates only. At
// least one exercise date is required.
func NewBermudan(st Type, underlying *swap.Swap, expiryDate string, strikeRate float64, exerciseDates []string, premium float64) (*Swaption, error) {
	if len(exerciseDates) == 0 {
		return nil, fmt.Errorf("bermudan swaption requires at least one exercise date")
	}

	s, err := newSwaption(st, StyleBermudan, underlying, expiryDate, strikeRate, premium)
	if err != nil {
		return nil, err
	}
	s.exerciseDates = append([]string(nil), exerciseDates...)
	return s, nil
}

// Type returns payer or receiver.
func (s *Swaption) Type() Type { return s.swaptionType }

// Style returns the exercise style.
func (s *Swaption) Style() ExerciseStyle { return s.style }

// Underlying returns the shared underlying swap.
func (s *Swaption) Underlying() *swap.Swap { return s.underlying }

// ExpiryDate returns the expiry date string.
func (s *Swaption) ExpiryDate() string { return s.expiryDate }

// StrikeRate returns the strike as a decimal rate.
func (s *Swaption) StrikeRate() float64 { return s.strikeRate }

// Premium returns the premium paid.
func (s *Swaption) Premium() float64 { return s.premium }

// ExerciseDates returns a copy of the exercise schedule.
func (s *Swaption) ExerciseDates() []string {
	return append([]string(nil), s.exerciseDates...)
}

// IsPayer reports whether the holder would pay fixed on exercise.
func (s *Swaption) IsPayer() bool { return s.swaptionType == TypePayer }

// IsReceiver reports whether the holder would receive fixed on exercise.
func (s *Swaption) IsReceiver() bool { return s.swaptionType == TypeReceiver }

// CanExerciseOn reports whether the swaption may be exercised on the given
// date. European requires an exact expiry match, American any date at or
// before expiry, Bermudan membership in the exercise schedule. All
// comparisons are plain string comparisons.
func (s *Swaption) CanExerciseOn(date string) bool {
	switch s.style {
	case StyleEuropean:
		return date == s.expiryDate
	case StyleAmerican:
		return date <= s.expiryDate
	case StyleBermudan:
		for _, d := range s.exerciseDates {
			if d == date {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// IntrinsicValue returns the exercise value at the given current rate:
// max(0, rate − strike) for a payer, max(0, strike − rate) for a receiver.
func (s *Swaption) IntrinsicValue(currentRate float64) float64 {
	diff := currentRate - s.strikeRate
	if s.swaptionType == TypeReceiver {
		diff = -diff
	}
	if diff < 0 {
		return 0
	}
	return diff
}

// AddExerciseDate appends a date to a Bermudan exercise schedule,
// deduplicating and keeping the schedule sorted ascending. Any other style
// returns ErrNotBermudan.
func (s *Swaption) AddExerciseDate(date string) error {
	if s.style != StyleBermudan {
		return ErrNotBermudan
	}

	for _, d := range s.exerciseDates {
		if d == date {
			return nil
		}
	}
	s.exerciseDates = append(s.exerciseDates, date)
	sort.Strings(s.exerciseDates)
	return nil
}

// IsValid reports whether Validate finds no defects.
func (s *Swaption) IsValid() bool { return len(s.Validate()) == 0 }

// Validate returns every defect found, without short-circuiting: underlying
// validity, expiry presence, strike range [0, 1], and for Bermudans a
// non-empty schedule with no exercise date after expiry.
func (s *Swaption) Validate() []string {
	var errs []string

	if s.underlying == nil {
		errs = append(errs, "underlying swap is required")
		return errs
	}

	if !s.underlying.IsValid() {
		errs = append(errs, "underlying swap is invalid")
	}

	if s.expiryDate == "" {
		errs = append(errs, "expiry date is required")
	}

	if s.strikeRate < 0 || s.strikeRate > 1 {
		errs = append(errs, "strike rate must be between 0 and 1 (as decimal)")
	}

	if s.style == StyleBermudan {
		if len(s.exerciseDates) == 0 {
			errs = append(errs, "bermudan swaption requires at least one exercise date")
		}
		for _, d := range s.exerciseDates {
			if d > s.expiryDate {
				errs = append(errs, fmt.Sprintf("exercise date %s is after expiry", d))
			}
		}
	}

	return errs
}

// String renders the swaption for logs and summaries.
func (s *Swaption) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s SWAPTION\nStrike: %.4f%%\nExpiry: %s\nPremium: %v",
		s.swaptionType, s.style, s.strikeRate*100, s.expiryDate, s.premium)
	if s.style == StyleBermudan {
		fmt.Fprintf(&b, "\nExercise dates: %s", strings.Join(s.exerciseDates, ", "))
	}
	fmt.Fprintf(&b, "\n\nUnderlying:\n%s", s.underlying)
	return b.String()
}
