package cerror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"commerce-api/pkg/apiresponse"
	"commerce-api/pkg/logger"
)

// Middleware is the fiber error handler. Every error escaping a handler is
// logged with its full detail here; the client only ever receives a sanitized
// envelope.
func Middleware(ctx *fiber.Ctx, err error) error {
	log := logger.FromContext(ctx.Context())

	var cerr *CustomError
	if !errors.As(err, &cerr) {
		var fiberError *fiber.Error
		if errors.As(err, &fiberError) {
			return apiresponse.RespondError(ctx, fiberError.Message, fiberError.Code, nil, nil)
		}

		log.Desugar().Error("unhandled error", zap.Error(err))
		return apiresponse.RespondError(
			ctx,
			apiresponse.DefaultErrorMessage,
			fiber.StatusInternalServerError,
			nil,
			nil,
		)
	}

	logWithFields := log.Desugar()
	for _, field := range cerr.LogFields {
		logWithFields = logWithFields.With(field)
	}
	logWithFields.Log(cerr.LogSeverity, cerr.LogMessage)

	message := cerr.PublicMessage
	if message == "" {
		message = apiresponse.DefaultErrorMessage
	}

	if cerr.HttpStatusCode >= fiber.StatusInternalServerError {
		// the cause stays in the server-side logs
		return apiresponse.RespondError(ctx, message, cerr.HttpStatusCode, nil, nil)
	}

	var detail *apiresponse.ErrorDetail
	if cerr.PublicDetail != "" {
		detail = apiresponse.DetailText(cerr.PublicDetail)
	}

	return apiresponse.RespondError(ctx, message, cerr.HttpStatusCode, detail, nil)
}
