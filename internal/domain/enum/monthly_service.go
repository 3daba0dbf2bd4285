package enum

// MonthlyServiceTier represents the recurring monitoring/support fee of a
// quote, expressed as a multiple of the reference minimum wage. The wire
// codes are the literal strings exchanged with clients ("0.5" .. "3"), plus
// the empty string for "no monthly service".
type MonthlyServiceTier string

const (
	MonthlyServiceNone    MonthlyServiceTier = ""
	MonthlyServiceHalf    MonthlyServiceTier = "0.5"
	MonthlyServiceOne     MonthlyServiceTier = "1"
	MonthlyServiceOneHalf MonthlyServiceTier = "1.5"
	MonthlyServiceTwo     MonthlyServiceTier = "2"
	MonthlyServiceTwoHalf MonthlyServiceTier = "2.5"
	MonthlyServiceThree   MonthlyServiceTier = "3"
)

// Valid reports whether the tier is one of the six known codes or empty.
func (t MonthlyServiceTier) Valid() bool {
	switch t {
	case MonthlyServiceNone, MonthlyServiceHalf, MonthlyServiceOne,
		MonthlyServiceOneHalf, MonthlyServiceTwo, MonthlyServiceTwoHalf,
		MonthlyServiceThree:
		return true
	}
	return false
}

// Label returns the Portuguese display label for the tier. Unrecognized
// codes map to the empty string so rendering never fails on bad data.
func (t MonthlyServiceTier) Label() string {
	switch t {
	case MonthlyServiceHalf:
		return "Meio salário mínimo"
	case MonthlyServiceOne:
		return "1 salário mínimo"
	case MonthlyServiceOneHalf:
		return "1,5 salário mínimo"
	case MonthlyServiceTwo:
		return "2 salários mínimos"
	case MonthlyServiceTwoHalf:
		return "2,5 salários mínimos"
	case MonthlyServiceThree:
		return "3 salários mínimos"
	}
	return ""
}

// Multiplier returns the numeric minimum-wage multiple for the tier.
// Empty or unrecognized tiers multiply to zero.
func (t MonthlyServiceTier) Multiplier() float64 {
	switch t {
	case MonthlyServiceHalf:
		return 0.5
	case MonthlyServiceOne:
		return 1
	case MonthlyServiceOneHalf:
		return 1.5
	case MonthlyServiceTwo:
		return 2
	case MonthlyServiceTwoHalf:
		return 2.5
	case MonthlyServiceThree:
		return 3
	}
	return 0
}

// MonetaryValue resolves the tier against the configured reference
// minimum wage.
func (t MonthlyServiceTier) MonetaryValue(minimumWage float64) float64 {
	return minimumWage * t.Multiplier()
}
