package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Practice PracticeConfig `mapstructure:"practice" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// PracticeConfig contains the tunables of the practice session flow.
type PracticeConfig struct {
	// DefaultBatchSize is the review batch size used when a client does
	// not ask for a specific limit.
	DefaultBatchSize int `mapstructure:"default_batch_size" validate:"required,gt=0"`

	// MaxBatchSize caps the review batch size a client may request.
	MaxBatchSize int `mapstructure:"max_batch_size" validate:"required,gt=0"`

	// SessionXPReward is the XP awarded for finishing a practice session,
	// independent of any lesson XP.
	SessionXPReward int `mapstructure:"session_xp_reward" validate:"gte=0"`
}
