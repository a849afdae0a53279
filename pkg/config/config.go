package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kr/pretty"
)

func ReadConfig() (*Config, error) {
	serverPort := os.Getenv(ServerPort)
	if serverPort == "" {
		serverPort = "8080"
		fmt.Println("server port environment variable is empty its declared 8080 by default")
	}

	databaseConfig, err := ReadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := ReadJwtConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort: serverPort,
		Database:   databaseConfig,
		Jwt:        jwtConfig,
	}, nil
}

func (c *Config) Print() {
	_, _ = pretty.Println(c)
}

// ReadDatabaseConfig selects TEST_DATABASE_URL when APP_ENV is "test",
// DATABASE_URL otherwise.
func ReadDatabaseConfig() (DatabaseConfig, error) {
	urlVariable := DatabaseUrl
	if os.Getenv(AppEnv) == AppEnvTest {
		urlVariable = TestDatabaseUrl
	}

	databaseUrl := os.Getenv(urlVariable)
	if databaseUrl == "" {
		return DatabaseConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, urlVariable)
	}

	return DatabaseConfig{
		Url: databaseUrl,
	}, nil
}

// ReadJwtConfig requires both signing secrets to be set explicitly; there is
// no fallback secret, a missing variable aborts startup.
func ReadJwtConfig() (JwtConfig, error) {
	accessSecret := os.Getenv(JwtSecret)
	if accessSecret == "" {
		return JwtConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, JwtSecret)
	}

	refreshSecret := os.Getenv(JwtRefreshSecret)
	if refreshSecret == "" {
		return JwtConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, JwtRefreshSecret)
	}

	accessExpiry, err := readDuration(JwtExpiresIn, DefaultAccessTokenExpiry)
	if err != nil {
		return JwtConfig{}, err
	}

	refreshExpiry, err := readDuration(JwtRefreshExpiresIn, DefaultRefreshTokenExpiry)
	if err != nil {
		return JwtConfig{}, err
	}

	return JwtConfig{
		AccessSecret:  []byte(accessSecret),
		AccessExpiry:  accessExpiry,
		RefreshSecret: []byte(refreshSecret),
		RefreshExpiry: refreshExpiry,
	}, nil
}

func readDuration(variableName string, defaultValue time.Duration) (time.Duration, error) {
	rawDuration := os.Getenv(variableName)
	if rawDuration == "" {
		return defaultValue, nil
	}

	duration, err := time.ParseDuration(rawDuration)
	if err != nil {
		return 0, fmt.Errorf("%s variable is not a valid duration: %w", variableName, err)
	}

	return duration, nil
}
