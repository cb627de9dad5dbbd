package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
	tenorPattern    = regexp.MustCompile(`(?i)^\d+[DWMY]$`)
)

var validDirections = map[string]bool{
	"BUY":     true,
	"SELL":    true,
	"TWO_WAY": true,
	"TWO-WAY": true,
	"PAY":     true,
	"RECEIVE": true,
}

func (v *Validator) validateDirection(data map[string]string) *Result {
	direction, ok := getValue(data, "direction")
	if !ok {
		if v.strictMode {
			return &Result{
				Severity:   SeverityError,
				Field:      "direction",
				Message:    "Direction is required",
				Suggestion: "Specify BUY, SELL, or TWO_WAY",
			}
		}
		return nil
	}

	if !validDirections[strings.ToUpper(direction)] {
		return &Result{
			Severity:   SeverityError,
			Field:      "direction",
			Message:    "Invalid direction: " + direction,
			Suggestion: "Valid values: BUY, SELL, TWO_WAY, PAY, RECEIVE",
		}
	}

	return nil
}

func (v *Validator) validateCurrency(data map[string]string) *Result {
	currency, ok := getValue(data, "currency")
	if !ok {
		currency, ok = getValue(data, "notional_currency")
	}

	if !ok {
		if v.strictMode {
			return &Result{
				Severity:   SeverityWarning,
				Field:      "currency",
				Message:    "Currency not specified",
				Suggestion: "Default currency may be assumed",
			}
		}
		return nil
	}

	// Case-sensitive: exactly three uppercase letters.
	if !currencyPattern.MatchString(currency) {
		return &Result{
			Severity:   SeverityError,
			Field:      "currency",
			Message:    "Invalid currency code: " + currency,
			Suggestion: "Use 3-letter ISO code (e.g., USD, EUR, GBP)",
		}
	}

	return nil
}

func (v *Validator) validateNotional(data map[string]string) *Result {
	notionalStr, ok := getValue(data, "notional")
	if !ok {
		notionalStr, ok = getValue(data, "quantity")
	}

	if !ok {
		if v.strictMode {
			return &Result{
				Severity: SeverityError,
				Field:    "notional",
				Message:  "Notional amount is required",
			}
		}
		return nil
	}

	// Branches short-circuit: at most one finding per call.
	notional, err := strconv.ParseFloat(notionalStr, 64)
	if err != nil {
		return &Result{
			Severity:   SeverityError,
			Field:      "notional",
			Message:    "Invalid notional value: " + notionalStr,
			Suggestion: "Must be a valid number",
		}
	}

	if notional <= 0 {
		return &Result{
			Severity: SeverityError,
			Field:    "notional",
			Message:  "Notional must be positive",
		}
	}

	if notional < v.minNotional {
		return &Result{
			Severity:   SeverityWarning,
			Field:      "notional",
			Message:    "Notional below minimum: " + notionalStr,
			Suggestion: fmt.Sprintf("Minimum is %v", v.minNotional),
		}
	}

	if notional > v.maxNotional {
		return &Result{
			Severity:   SeverityWarning,
			Field:      "notional",
			Message:    "Notional exceeds maximum: " + notionalStr,
			Suggestion: fmt.Sprintf("Maximum is %v", v.maxNotional),
		}
	}

	return nil
}

func (v *Validator) validateTenor(data map[string]string) *Result {
	tenor, ok := getValue(data, "tenor")
	if !ok {
		// Tenor is optional, e.g. for spot trades.
		return nil
	}

	if !tenorPattern.MatchString(tenor) {
		return &Result{
			Severity:   SeverityError,
			Field:      "tenor",
			Message:    "Invalid tenor format: " + tenor,
			Suggestion: "Use format like '3M', '1Y', '5Y'",
		}
	}

	return nil
}

func (v *Validator) validateRate(data map[string]string) *Result {
	rateStr, ok := getValue(data, "rate")
	if !ok {
		rateStr, ok = getValue(data, "strike")
	}
	if !ok {
		// Rate is optional, e.g. for market orders.
		return nil
	}

	rate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil {
		return &Result{
			Severity:   SeverityError,
			Field:      "rate",
			Message:    "Invalid rate value: " + rateStr,
			Suggestion: "Must be a valid number",
		}
	}

	if rate < -0.05 || rate > 1.0 {
		return &Result{
			Severity:   SeverityWarning,
			Field:      "rate",
			Message:    "Rate outside typical range: " + rateStr,
			Suggestion: "Typical range: -5% to 100%",
		}
	}

	return nil
}

func (v *Validator) validateDayCount(data map[string]string) *Result {
	dayCount, ok := getValue(data, "day_count")
	if !ok {
		// Day count convention may have a desk default.
		return nil
	}

	upper := strings.ToUpper(dayCount)
	for _, known := range []string{"ACT/360", "ACT/365", "30/360", "ACT/ACT"} {
		if strings.Contains(upper, known) {
			return nil
		}
	}

	return &Result{
		Severity:   SeverityWarning,
		Field:      "day_count",
		Message:    "Unusual day count convention: " + dayCount,
		Suggestion: "Common: ACT/360, ACT/365, 30/360, ACT/ACT",
	}
}
