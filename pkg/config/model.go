package config

import "time"

const (
	EnvironmentVariableNotDefined = "%s variable is not defined"

	AppEnv     = "APP_ENV"
	AppEnvTest = "test"

	ServerPort = "SERVER_PORT"

	DatabaseUrl     = "DATABASE_URL"
	TestDatabaseUrl = "TEST_DATABASE_URL"

	JwtSecret           = "JWT_SECRET"
	JwtExpiresIn        = "JWT_EXPIRES_IN"
	JwtRefreshSecret    = "JWT_REFRESH_SECRET"
	JwtRefreshExpiresIn = "JWT_REFRESH_EXPIRES_IN"
)

const (
	DefaultAccessTokenExpiry  = 168 * time.Hour
	DefaultRefreshTokenExpiry = 720 * time.Hour
)

type Config struct {
	ServerPort string
	Database   DatabaseConfig
	Jwt        JwtConfig
}

type DatabaseConfig struct {
	Url string
}

type JwtConfig struct {
	AccessSecret  []byte
	AccessExpiry  time.Duration
	RefreshSecret []byte
	RefreshExpiry time.Duration
}
