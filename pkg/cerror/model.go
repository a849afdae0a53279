package cerror

import (
	"go.uber.org/zap/zapcore"
)

// CustomError separates what the client sees (PublicMessage, PublicDetail)
// from what is logged (LogMessage, LogFields). The raw cause never reaches
// the response body.
type CustomError struct {
	HttpStatusCode int
	PublicMessage  string
	PublicDetail   string
	LogMessage     string
	LogSeverity    zapcore.Level
	LogFields      []zapcore.Field
}

func (cerr *CustomError) Error() string {
	return cerr.LogMessage
}

func NewError(httpStatusCode int, logMessage string, logFields ...zapcore.Field) *CustomError {
	return &CustomError{
		HttpStatusCode: httpStatusCode,
		LogMessage:     logMessage,
		LogSeverity:    zapcore.ErrorLevel,
		LogFields:      logFields,
	}
}

func (cerr *CustomError) SetSeverity(severity zapcore.Level) *CustomError {
	cerr.LogSeverity = severity
	return cerr
}

func (cerr *CustomError) SetPublicMessage(message string) *CustomError {
	cerr.PublicMessage = message
	return cerr
}
