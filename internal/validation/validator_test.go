package validation

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findByField(results []Result, field string) *Result {
	for i := range results {
		if results[i].Field == field {
			return &results[i]
		}
	}
	return nil
}

func TestValidateCleanRFQ(t *testing.T) {
	v := New()

	data := map[string]string{
		"direction": "BUY",
		"currency":  "USD",
		"notional":  "10000000",
		"tenor":     "5Y",
		"rate":      "0.0525",
		"day_count": "ACT/360",
	}

	assert.Empty(t, v.Validate(data))
	assert.True(t, v.IsValid(data))
}

func TestValidateDirection(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]string
		strict   bool
		severity Severity // "" means no finding expected
	}{
		{"valid BUY", map[string]string{"direction": "BUY"}, false, ""},
		{"valid lowercase sell", map[string]string{"direction": "sell"}, false, ""},
		{"valid TWO-WAY with hyphen", map[string]string{"direction": "TWO-WAY"}, false, ""},
		{"valid PAY", map[string]string{"direction": "pay"}, false, ""},
		{"invalid value", map[string]string{"direction": "HOLD"}, false, SeverityError},
		{"missing lenient", map[string]string{}, false, ""},
		{"missing strict", map[string]string{}, true, SeverityError},
		{"empty counts as missing", map[string]string{"direction": ""}, true, SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(WithStrictMode(tt.strict))
			result := findByField(v.Validate(tt.data), "direction")
			if tt.severity == "" {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
				assert.Equal(t, tt.severity, result.Severity)
			}
		})
	}
}

func TestValidateCurrency(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]string
		strict   bool
		severity Severity
	}{
		{"valid USD", map[string]string{"currency": "USD"}, false, ""},
		{"fallback to notional_currency", map[string]string{"notional_currency": "EUR"}, false, ""},
		{"lowercase rejected", map[string]string{"currency": "usd"}, false, SeverityError},
		{"too long", map[string]string{"currency": "USDT"}, false, SeverityError},
		{"too short", map[string]string{"currency": "US"}, false, SeverityError},
		{"missing lenient", map[string]string{}, false, ""},
		{"missing strict warns", map[string]string{}, true, SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(WithStrictMode(tt.strict))
			result := findByField(v.Validate(tt.data), "currency")
			if tt.severity == "" {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
				assert.Equal(t, tt.severity, result.Severity)
			}
		})
	}
}

func TestValidateNotional(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]string
		strict   bool
		severity Severity
	}{
		{"valid", map[string]string{"notional": "10000000"}, false, ""},
		{"fallback to quantity", map[string]string{"quantity": "5000000"}, false, ""},
		{"non-numeric", map[string]string{"notional": "ten million"}, false, SeverityError},
		{"zero", map[string]string{"notional": "0"}, false, SeverityError},
		{"negative", map[string]string{"notional": "-100"}, false, SeverityError},
		{"below minimum warns", map[string]string{"notional": "500"}, false, SeverityWarning},
		{"above maximum warns", map[string]string{"notional": "2e12"}, false, SeverityWarning},
		{"missing lenient", map[string]string{}, false, ""},
		{"missing strict", map[string]string{}, true, SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(WithStrictMode(tt.strict))
			result := findByField(v.Validate(tt.data), "notional")
			if tt.severity == "" {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
				assert.Equal(t, tt.severity, result.Severity)
			}
		})
	}
}

func TestValidateNotionalShortCircuits(t *testing.T) {
	// A negative notional is also below the minimum, but only the first
	// failing branch fires.
	v := New(WithNotionalBounds(1_000_000, 1e12))
	results := v.Validate(map[string]string{"notional": "-5"})

	var notionalFindings []Result
	for _, r := range results {
		if r.Field == "notional" {
			notionalFindings = append(notionalFindings, r)
		}
	}
	require.Len(t, notionalFindings, 1)
	assert.Equal(t, SeverityError, notionalFindings[0].Severity)
}

func TestValidateNotionalBounds(t *testing.T) {
	v := New(WithNotionalBounds(1_000_000, 100_000_000))

	result := findByField(v.Validate(map[string]string{"notional": "500000"}), "notional")
	require.NotNil(t, result)
	assert.Equal(t, SeverityWarning, result.Severity)
	assert.Contains(t, result.Message, "below minimum")

	result = findByField(v.Validate(map[string]string{"notional": "200000000"}), "notional")
	require.NotNil(t, result)
	assert.Equal(t, SeverityWarning, result.Severity)
	assert.Contains(t, result.Message, "exceeds maximum")
}

func TestValidateTenor(t *testing.T) {
	tests := []struct {
		name  string
		tenor string
		valid bool
	}{
		{"years", "5Y", true},
		{"months", "3M", true},
		{"weeks", "2W", true},
		{"days", "90D", true},
		{"lowercase unit", "5y", true},
		{"missing unit", "5", false},
		{"unit first", "Y5", false},
		{"spaces", "5 Y", false},
		{"garbage", "spot", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			result := findByField(v.Validate(map[string]string{"tenor": tt.tenor}), "tenor")
			if tt.valid {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
				assert.Equal(t, SeverityError, result.Severity)
			}
		})
	}

	// Tenor is optional: spot trades have none.
	assert.Nil(t, findByField(New().Validate(map[string]string{}), "tenor"))
}

func TestValidateRate(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]string
		severity Severity
	}{
		{"typical rate", map[string]string{"rate": "0.05"}, ""},
		{"fallback to strike", map[string]string{"strike": "0.045"}, ""},
		{"slightly negative ok", map[string]string{"rate": "-0.01"}, ""},
		{"boundary low", map[string]string{"rate": "-0.05"}, ""},
		{"boundary high", map[string]string{"rate": "1.0"}, ""},
		{"too negative", map[string]string{"rate": "-0.10"}, SeverityWarning},
		{"above 100 percent", map[string]string{"rate": "1.5"}, SeverityWarning},
		{"non-numeric", map[string]string{"rate": "five percent"}, SeverityError},
		{"missing both", map[string]string{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			result := findByField(v.Validate(tt.data), "rate")
			if tt.severity == "" {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
				assert.Equal(t, tt.severity, result.Severity)
			}
		})
	}
}

func TestValidateDayCount(t *testing.T) {
	tests := []struct {
		name     string
		dayCount string
		warns    bool
	}{
		{"ACT/360", "ACT/360", false},
		{"lowercase act/365", "act/365", false},
		{"30/360", "30/360", false},
		{"embedded in longer text", "ACT/ACT ISDA", false},
		{"unusual convention", "BUS/252", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			result := findByField(v.Validate(map[string]string{"day_count": tt.dayCount}), "day_count")
			if tt.warns {
				require.NotNil(t, result)
				assert.Equal(t, SeverityWarning, result.Severity)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestStrictModeScenario(t *testing.T) {
	v := New(WithStrictMode(true))

	data := map[string]string{
		"direction": "INVALID",
		"currency":  "USD",
		"notional":  "1000000",
	}

	errs := v.Errors(data)
	require.NotEmpty(t, errs)
	assert.NotNil(t, findByField(errs, "direction"))
	assert.False(t, v.IsValid(data))
}

func TestAddRemoveRuleRoundTrip(t *testing.T) {
	v := New()
	data := map[string]string{
		"direction": "BUY",
		"currency":  "XYZ",
		"notional":  "250",
	}

	sortResults := func(rs []Result) {
		sort.Slice(rs, func(i, j int) bool {
			if rs[i].Field != rs[j].Field {
				return rs[i].Field < rs[j].Field
			}
			return rs[i].Message < rs[j].Message
		})
	}

	before := v.Validate(data)
	sortResults(before)

	v.AddRule("settlement", func(data map[string]string) *Result {
		if _, ok := data["settlement_date"]; !ok {
			return &Result{
				Severity: SeverityInfo,
				Field:    "settlement_date",
				Message:  "No settlement date provided",
			}
		}
		return nil
	})

	withRule := v.Validate(data)
	assert.Len(t, withRule, len(before)+1)

	v.RemoveRule("settlement")

	after := v.Validate(data)
	sortResults(after)
	assert.Equal(t, before, after)
}

func TestAddRuleOverwritesExistingName(t *testing.T) {
	v := New()

	// Replace the built-in tenor rule with one that rejects everything.
	v.AddRule("tenor", func(data map[string]string) *Result {
		return &Result{Severity: SeverityError, Field: "tenor", Message: "always fails"}
	})

	results := v.Validate(map[string]string{"tenor": "5Y"})
	result := findByField(results, "tenor")
	require.NotNil(t, result)
	assert.Equal(t, "always fails", result.Message)
}

func TestValidateIdempotent(t *testing.T) {
	v := New()
	data := map[string]string{
		"direction": "SELL",
		"currency":  "usd",
		"notional":  "100",
		"rate":      "2.0",
	}

	first := v.Validate(data)
	second := v.Validate(data)

	sortResults := func(rs []Result) {
		sort.Slice(rs, func(i, j int) bool { return rs[i].Field < rs[j].Field })
	}
	sortResults(first)
	sortResults(second)
	assert.Equal(t, first, second)
}

func TestErrorsAndWarningsFilter(t *testing.T) {
	v := New()
	data := map[string]string{
		"currency": "usd",  // ERROR
		"notional": "500",  // WARNING (below default minimum)
		"rate":     "1.75", // WARNING
	}

	errs := v.Errors(data)
	require.Len(t, errs, 1)
	assert.Equal(t, "currency", errs[0].Field)

	warnings := v.Warnings(data)
	assert.Len(t, warnings, 2)
}

func TestReport(t *testing.T) {
	v := New()
	report := v.ValidateReport(map[string]string{
		"currency": "usd",
		"notional": "500",
	})

	assert.Equal(t, 1, report.ErrorCount())
	assert.Equal(t, 1, report.WarningCount())

	out := report.String()
	assert.Contains(t, out, "Total issues: 2")
	assert.Contains(t, out, "currency")
}
