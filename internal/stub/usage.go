package stub

import "errors"

// ErrInvalidType reports an unrecognized tier or direction value. The HTTP
// layer maps it to the {"error": "Invalid type"} payload instead of a
// transport-level failure.
var ErrInvalidType = errors.New("Invalid type")

// Tier is the access level of an API key.
type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

// UsageConfig holds the per-tier reporting constants.
type UsageConfig struct {
	FreeCharacterLimit int64
	ProCharacterLimit  int64
	ProCountMultiplier int64
}

// DefaultUsageConfig returns the limits the real service advertises: the
// free plan caps at 500,000 characters per month and the pro plan reports
// an effectively unbounded limit.
func DefaultUsageConfig() UsageConfig {
	return UsageConfig{
		FreeCharacterLimit: 500_000,
		ProCharacterLimit:  1_000_000_000_000,
		ProCountMultiplier: 10,
	}
}

// UsageReport is a count/limit pair for one tier.
type UsageReport struct {
	CharacterCount int64
	CharacterLimit int64
}

// UsageReporter reports the running character counter per tier.
type UsageReporter struct {
	counter *CharacterCounter
	config  UsageConfig
}

// NewUsageReporter creates a UsageReporter reading the given counter.
func NewUsageReporter(counter *CharacterCounter, config UsageConfig) *UsageReporter {
	return &UsageReporter{
		counter: counter,
		config:  config,
	}
}

// Usage returns the count/limit pair for the tier. The free tier reports
// the live counter value; the pro tier reports the counter scaled by the
// configured multiplier. An unknown tier yields ErrInvalidType.
func (u *UsageReporter) Usage(tier Tier) (UsageReport, error) {
	count := u.counter.Total()
	switch tier {
	case TierFree:
		return UsageReport{
			CharacterCount: count,
			CharacterLimit: u.config.FreeCharacterLimit,
		}, nil
	case TierPro:
		return UsageReport{
			CharacterCount: count * u.config.ProCountMultiplier,
			CharacterLimit: u.config.ProCharacterLimit,
		}, nil
	default:
		return UsageReport{}, ErrInvalidType
	}
}
