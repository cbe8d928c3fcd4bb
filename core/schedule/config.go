package schedule

import "fmt"

// TimeOff marks one person as unavailable for a half-open range of future
// period offsets [From, To). It layers hard exclusions on top of the
// roster-level availability filter, so partial-window absences are possible.
type TimeOff struct {
	Person string `json:"person"`
	From   int    `json:"from"`
	To     int    `json:"to"`
}

// Holiday raises the assignment cost for everyone at Location during the
// half-open range of future period offsets [From, To).
type Holiday struct {
	Location string `json:"location"`
	From     int    `json:"from"`
	To       int    `json:"to"`
}

// Config defines the parameters of one scheduling run.
type Config struct {
	// Horizon is the number of future periods to schedule.
	Horizon int `json:"horizon"`
	// Lookback is the number of already-committed periods anchoring the run.
	Lookback int `json:"lookback"`
	// BaseWeight is the objective cost of one ordinary assignment.
	BaseWeight int64 `json:"base_weight"`
	// HolidayWeight replaces BaseWeight inside a matching holiday window.
	HolidayWeight int64 `json:"holiday_weight"`
	// UpperSlackFactor scales the slack domain of the soft upper fairness
	// bound to UpperSlackFactor*maxTarget. Kept configurable; see the soft
	// bound helpers for how it is applied.
	UpperSlackFactor int64     `json:"upper_slack_factor"`
	TimeOff          []TimeOff `json:"time_off"`
	Holidays         []Holiday `json:"holidays"`
}

// SetDefaults applies the default objective weights.
func (c *Config) SetDefaults() {
	if c.BaseWeight == 0 {
		c.BaseWeight = 1
	}
	if c.HolidayWeight == 0 {
		c.HolidayWeight = 10
	}
	if c.UpperSlackFactor == 0 {
		c.UpperSlackFactor = 2
	}
}

// Validate rejects configurations that can never produce a roster.
func (c Config) Validate() error {
	if c.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %d", ErrInvalidConfig, c.Horizon)
	}
	if c.Lookback < 0 {
		return fmt.Errorf("%w: lookback must not be negative, got %d", ErrInvalidConfig, c.Lookback)
	}
	if c.BaseWeight <= 0 || c.HolidayWeight <= 0 {
		return fmt.Errorf("%w: assignment weights must be positive", ErrInvalidConfig)
	}
	if c.UpperSlackFactor < 1 {
		return fmt.Errorf("%w: upper_slack_factor must be at least 1", ErrInvalidConfig)
	}
	for _, t := range c.TimeOff {
		if t.From < 0 || t.To > c.Horizon || t.From >= t.To {
			return fmt.Errorf("%w: time off range [%d,%d) for %s is outside the horizon", ErrInvalidConfig, t.From, t.To, t.Person)
		}
	}
	for _, h := range c.Holidays {
		if h.From < 0 || h.From >= h.To {
			return fmt.Errorf("%w: holiday range [%d,%d) for %s is invalid", ErrInvalidConfig, h.From, h.To, h.Location)
		}
	}
	return nil
}
