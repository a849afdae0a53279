package apiresponse

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

const (
	DefaultSuccessMessage = "Success"
	DefaultErrorMessage   = "An error occurred"
)

// Envelope is the wire shape of every response. The error field is omitted
// entirely when no detail is attached.
type Envelope struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	Data       interface{}  `json:"data"`
	StatusCode int          `json:"statusCode"`
	Error      *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail is a tagged variant: either a per-part validation error map or a
// plain text detail, never both.
type ErrorDetail struct {
	Text   string
	Fields map[string][]string
}

func DetailText(text string) *ErrorDetail {
	return &ErrorDetail{Text: text}
}

func DetailFields(fields map[string][]string) *ErrorDetail {
	return &ErrorDetail{Fields: fields}
}

func (detail *ErrorDetail) MarshalJSON() ([]byte, error) {
	if detail.Fields != nil {
		return json.Marshal(detail.Fields)
	}

	return json.Marshal(detail.Text)
}

func Success(data interface{}, message string, statusCode int) Envelope {
	if message == "" {
		message = DefaultSuccessMessage
	}

	if statusCode == 0 {
		statusCode = fiber.StatusOK
	}

	return Envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: statusCode,
	}
}

func Error(message string, statusCode int, detail *ErrorDetail, data interface{}) Envelope {
	if message == "" {
		message = DefaultErrorMessage
	}

	if statusCode == 0 {
		statusCode = fiber.StatusInternalServerError
	}

	return Envelope{
		Success:    false,
		Message:    message,
		Data:       data,
		StatusCode: statusCode,
		Error:      detail,
	}
}
