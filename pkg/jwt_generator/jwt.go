package jwt_generator

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"commerce-api/pkg/config"
)

type JwtGenerator interface {
	GenerateTokens(name, email string, userId int64) (*Tokens, error)
	GenerateAccessToken(name, email string, userId int64) (string, error)
	VerifyAccessToken(rawJwtToken string) *Claims
	VerifyRefreshToken(rawJwtToken string) *Claims
	DecodeUnverified(rawJwtToken string) (*Claims, error)
}

type jwtGenerator struct {
	jwtConfig config.JwtConfig
	log       *zap.SugaredLogger
}

func NewJwtGenerator(jwtConfig config.JwtConfig, log *zap.SugaredLogger) JwtGenerator {
	return &jwtGenerator{
		jwtConfig: jwtConfig,
		log:       log,
	}
}

// GenerateTokens signs an access and a refresh token from the same claims,
// each with its own secret and expiry.
func (jwtGenerator *jwtGenerator) GenerateTokens(name, email string, userId int64) (*Tokens, error) {
	accessToken, err := jwtGenerator.generateToken(
		jwtGenerator.jwtConfig.AccessSecret,
		jwtGenerator.jwtConfig.AccessExpiry,
		name, email, userId,
	)
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwtGenerator.generateToken(
		jwtGenerator.jwtConfig.RefreshSecret,
		jwtGenerator.jwtConfig.RefreshExpiry,
		name, email, userId,
	)
	if err != nil {
		return nil, err
	}

	return &Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (jwtGenerator *jwtGenerator) GenerateAccessToken(name, email string, userId int64) (string, error) {
	return jwtGenerator.generateToken(
		jwtGenerator.jwtConfig.AccessSecret,
		jwtGenerator.jwtConfig.AccessExpiry,
		name, email, userId,
	)
}

// VerifyAccessToken returns the decoded claims, or nil on any verification
// failure. The failure reason is logged, the caller only gets the nil signal.
func (jwtGenerator *jwtGenerator) VerifyAccessToken(rawJwtToken string) *Claims {
	return jwtGenerator.verifyToken(rawJwtToken, jwtGenerator.jwtConfig.AccessSecret)
}

func (jwtGenerator *jwtGenerator) VerifyRefreshToken(rawJwtToken string) *Claims {
	return jwtGenerator.verifyToken(rawJwtToken, jwtGenerator.jwtConfig.RefreshSecret)
}

// DecodeUnverified decodes the payload without checking the signature.
// Diagnostics only, never an authorization decision.
func (jwtGenerator *jwtGenerator) DecodeUnverified(rawJwtToken string) (*Claims, error) {
	var claims Claims
	parser := jwt.NewParser()
	_, _, err := parser.ParseUnverified(rawJwtToken, &claims)
	if err != nil {
		return nil, err
	}

	return &claims, nil
}

func (jwtGenerator *jwtGenerator) generateToken(
	secret []byte,
	expiry time.Duration,
	name, email string,
	userId int64,
) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Name:   name,
		Email:  email,
		UserId: userId,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    IssuerDefault,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

func (jwtGenerator *jwtGenerator) verifyToken(rawJwtToken string, secret []byte) *Claims {
	var claims Claims
	_, err := jwt.ParseWithClaims(rawJwtToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected jwt signing method")
		}

		return secret, nil
	})
	if err != nil {
		jwtGenerator.log.Warnw(
			"jwt token verification failed",
			zap.Error(err),
		)
		return nil
	}

	return &claims
}
