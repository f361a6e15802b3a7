package configs

import (
	"fmt"
	"time"
)

// Dispatcher configures the periodic automation scan.
type Dispatcher struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// Schedule is a cron expression or descriptor such as "@every 1m".
	Schedule string `env:"SCHEDULE" envDefault:"0 * * * *"`
	// Timezone is the IANA zone used to decide whether an automation is due.
	Timezone string `env:"TIMEZONE" envDefault:"Local"`
}

// Location resolves Timezone. "Local" and the empty string map to time.Local.
func (c Dispatcher) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("dispatcher timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
