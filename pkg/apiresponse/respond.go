package apiresponse

import "github.com/gofiber/fiber/v2"

// RespondSuccess and RespondError are the only seam between the envelope and
// the transport layer: the HTTP status always mirrors the envelope's statusCode.

func RespondSuccess(ctx *fiber.Ctx, data interface{}, message string, statusCode int) error {
	envelope := Success(data, message, statusCode)
	return ctx.Status(envelope.StatusCode).JSON(envelope)
}

func RespondError(ctx *fiber.Ctx, message string, statusCode int, detail *ErrorDetail, data interface{}) error {
	envelope := Error(message, statusCode, detail, data)
	return ctx.Status(envelope.StatusCode).JSON(envelope)
}
