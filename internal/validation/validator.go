package validation

// Rule inspects parsed RFQ fields and returns a finding, or nil when the
// data passes. Rules receive the full field map, so custom rules can
// correlate across fields just like the built-ins.
type Rule func(data map[string]string) *Result

// Validator runs a named set of rules over parsed RFQ data. A new
// Validator starts with the six built-in rules (direction, currency,
// notional, tenor, rate, day_count) registered; callers may add or remove
// rules at any time. The rule table is not synchronized: do not mutate it
// concurrently with Validate.
type Validator struct {
	rules       map[string]Rule
	strictMode  bool
	minNotional float64
	maxNotional float64
}

// Option configures a Validator at construction.
type Option func(*Validator)

// WithStrictMode makes missing required fields findings instead of silent
// passes.
func WithStrictMode(strict bool) Option {
	return func(v *Validator) { v.strictMode = strict }
}

// WithNotionalBounds overrides the warning thresholds for small and large
// notionals.
func WithNotionalBounds(minNotional, maxNotional float64) Option {
	return func(v *Validator) {
		v.minNotional = minNotional
		v.maxNotional = maxNotional
	}
}

// New creates a Validator with the built-in rules registered and defaults
// of non-strict mode, minimum notional 1,000 and maximum 1e12.
func New(opts ...Option) *Validator {
	v := &Validator{
		rules:       make(map[string]Rule),
		strictMode:  false,
		minNotional: 1_000,
		maxNotional: 1e12,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.rules["direction"] = v.validateDirection
	v.rules["currency"] = v.validateCurrency
	v.rules["notional"] = v.validateNotional
	v.rules["tenor"] = v.validateTenor
	v.rules["rate"] = v.validateRate
	v.rules["day_count"] = v.validateDayCount

	return v
}

// StrictMode reports whether missing required fields are flagged.
func (v *Validator) StrictMode() bool { return v.strictMode }

// AddRule registers a rule under the given name, replacing any rule
// already registered under it.
func (v *Validator) AddRule(name string, rule Rule) {
	v.rules[name] = rule
}

// RemoveRule unregisters the named rule. Unknown names are a no-op.
func (v *Validator) RemoveRule(name string) {
	delete(v.rules, name)
}

// Validate runs every registered rule once and collects the findings. Rule
// execution order is unspecified; callers must not rely on result order.
func (v *Validator) Validate(data map[string]string) []Result {
	var results []Result
	for _, rule := range v.rules {
		if r := rule(data); r != nil {
			results = append(results, *r)
		}
	}
	return results
}

// IsValid reports whether Validate produces no ERROR findings.
func (v *Validator) IsValid(data map[string]string) bool {
	for _, r := range v.Validate(data) {
		if r.IsError() {
			return false
		}
	}
	return true
}

// Errors returns only the ERROR findings for the data.
func (v *Validator) Errors(data map[string]string) []Result {
	var errs []Result
	for _, r := range v.Validate(data) {
		if r.IsError() {
			errs = append(errs, r)
		}
	}
	return errs
}

// Warnings returns only the WARNING findings for the data.
func (v *Validator) Warnings(data map[string]string) []Result {
	var warnings []Result
	for _, r := range v.Validate(data) {
		if r.IsWarning() {
			warnings = append(warnings, r)
		}
	}
	return warnings
}

// ValidateReport runs Validate and wraps the findings in a Report.
func (v *Validator) ValidateReport(data map[string]string) Report {
	return Report{Results: v.Validate(data)}
}

// getValue returns the value for key, treating empty strings as absent.
func getValue(data map[string]string, key string) (string, bool) {
	val, ok := data[key]
	if !ok || val == "" {
		return "", false
	}
	return val, true
}
