package configs

import "time"

// SMTP configures the outbound mail relay used by the dispatcher.
type SMTP struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	// From is the sender used for every campaign email.
	From    string        `env:"FROM" envDefault:"KK Marketing Platform <no-reply@example.com>"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}
