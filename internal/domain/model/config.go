package model

import "time"

// Config is ADSC's resource-derived configuration, read once at
// construction from the Host and immutable thereafter. No hot-reload.
type Config struct {
	// StabilityDwell is the time window an apparently-good condition
	// must persist before actuation. A negative value disables the
	// entire feature: no outbound request is ever emitted.
	StabilityDwell time.Duration

	// ScoreTolerance is the minimum score advantage required to
	// prefer a non-default slot on score alone. A negative value
	// disables RAT/signal-based switching; equality-based
	// service switching still applies.
	ScoreTolerance int

	// RequirePing indicates a switch decision must be validated by
	// the Switcher (ping test) before actuation.
	RequirePing bool

	// MaxValidationRetries is the maximum number of consecutive
	// validation failures tolerated before ADSC gives up on the
	// current opportunity and resets its retry counter.
	MaxValidationRetries int

	// AllowRoamingSwitch enables the Usable-State-aware evaluation
	// path. When false, the legacy Home-only path is used.
	AllowRoamingSwitch bool

	// FeatureScoreBasedEnabled gates RAT/signal score comparisons;
	// see ScoreSwitchEnabled.
	FeatureScoreBasedEnabled bool
}

// FeatureEnabled reports whether the stability-dwell feature is
// enabled at all. A negative dwell disables every outbound request.
func (c Config) FeatureEnabled() bool {
	return c.StabilityDwell >= 0
}

// ScoreSwitchEnabled reports whether score-based candidate selection
// is active: the feature flag is set and the tolerance itself is
// non-negative.
func (c Config) ScoreSwitchEnabled() bool {
	return c.FeatureScoreBasedEnabled && c.ScoreTolerance >= 0
}
