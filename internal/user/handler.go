package user

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"commerce-api/pkg/apiresponse"
	"commerce-api/pkg/cerror"
	"commerce-api/pkg/logger"
	"commerce-api/pkg/server"
	"commerce-api/pkg/validation"
)

type handler struct {
	userService Service
}

func NewHandler(userService Service) server.Handler {
	return &handler{
		userService: userService,
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	auth := app.Group("/api/v1/auth")
	auth.Post(
		"/signup",
		validation.Middleware(validation.Schemas{
			Body: func() interface{} { return new(SignupPayload) },
		}),
		h.Signup,
	)
	auth.Post(
		"/login",
		validation.Middleware(validation.Schemas{
			Body: func() interface{} { return new(LoginPayload) },
		}),
		h.Login,
	)
}

func (h *handler) Signup(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "signup"))

	payload := validation.Value[SignupPayload](ctx, validation.PartBody)
	if payload == nil {
		return cerror.ErrorMalformedRequestBody
	}

	publicUser, err := h.userService.Signup(ctx.Context(), payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return apiresponse.RespondSuccess(ctx, publicUser, MessageRegisterSuccess, fiber.StatusCreated)
}

func (h *handler) Login(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "login"))

	payload := validation.Value[LoginPayload](ctx, validation.PartBody)
	if payload == nil {
		return cerror.ErrorMalformedRequestBody
	}

	loginResult, err := h.userService.Login(ctx.Context(), payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return apiresponse.RespondSuccess(ctx, loginResult, MessageLoginSuccess, fiber.StatusOK)
}
