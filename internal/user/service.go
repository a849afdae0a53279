package user

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"commerce-api/pkg/cerror"
	"commerce-api/pkg/jwt_generator"
	"commerce-api/pkg/password"
)

type Service interface {
	Signup(ctx context.Context, payload *SignupPayload) (*PublicUser, error)
	Login(ctx context.Context, payload *LoginPayload) (*LoginResult, error)
}

type service struct {
	userRepository Repository
	jwtGenerator   jwt_generator.JwtGenerator
}

func NewService(userRepository Repository, jwtGenerator jwt_generator.JwtGenerator) Service {
	return &service{
		userRepository: userRepository,
		jwtGenerator:   jwtGenerator,
	}
}

func (s *service) Signup(ctx context.Context, payload *SignupPayload) (*PublicUser, error) {
	_, err := s.userRepository.FindUserWithEmail(ctx, payload.Email)
	if err == nil {
		return nil, cerror.ErrorUserAlreadyExists
	}
	if !errors.Is(err, cerror.ErrorUserNotFound) {
		return nil, err
	}

	hashedPassword, err := password.Hash(payload.Password)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate hash from password",
			zap.Error(err),
		)
	}

	user, err := s.userRepository.InsertUser(ctx, &User{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: hashedPassword,
		IsAdmin:  payload.IsAdmin,
	})
	if err != nil {
		return nil, err
	}

	return user.Public(), nil
}

func (s *service) Login(ctx context.Context, payload *LoginPayload) (*LoginResult, error) {
	user, err := s.userRepository.FindUserWithEmail(ctx, payload.Email)
	if err != nil {
		return nil, err
	}

	if !password.Compare(payload.Password, user.Password) {
		return nil, cerror.ErrorInvalidCredentials
	}

	tokens, err := s.jwtGenerator.GenerateTokens(user.Name, user.Email, user.UserId)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate access token",
			zap.Error(err),
		)
	}

	return &LoginResult{
		UserData: &LoginUserData{
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
		AccessToken: tokens.AccessToken,
	}, nil
}
