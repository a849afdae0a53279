package cerror

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zapcore"
)

var (
	ErrorMalformedRequestBody = &CustomError{
		HttpStatusCode: fiber.StatusBadRequest,
		PublicMessage:  "Invalid input data",
		LogMessage:     "malformed request body or query parameter",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorUserNotFound = &CustomError{
		HttpStatusCode: fiber.StatusBadRequest,
		PublicMessage:  "User not found",
		PublicDetail:   "Email not found",
		LogMessage:     "user not found",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorUserAlreadyExists = &CustomError{
		HttpStatusCode: fiber.StatusBadRequest,
		PublicMessage:  "User already exists",
		PublicDetail:   "Resource already exists",
		LogMessage:     "user with same email already exists",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorInvalidCredentials = &CustomError{
		HttpStatusCode: fiber.StatusBadRequest,
		PublicMessage:  "Invalid email or password",
		PublicDetail:   "Wrong password",
		LogMessage:     "error occurred while compare passwords",
		LogSeverity:    zapcore.WarnLevel,
	}
)
