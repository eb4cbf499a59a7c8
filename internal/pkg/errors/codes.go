package errors

import (
	"fmt"
	"net/http"
)

// Code represents an error code with HTTP status and message
type Code struct {
	Code    int    // Business error code
	Status  int    // HTTP status code
	Message string // Error message
}

// Error codes for the notification pipeline
const (
	// Success
	Success = 0

	// Common errors (1000-1999)
	ErrInternal      = 1000
	ErrInvalidParams = 1001

	// Configuration errors (2000-2999)
	ErrConfigMissingParam = 2000
	ErrConfigInvalidPort  = 2001

	// Transport errors (3000-3999)
	ErrSMTPConnection = 3000
	ErrSMTPAuth       = 3001

	// Composition errors (4000-4999)
	ErrComposeSender     = 4000
	ErrComposeRecipients = 4001
	ErrAttachmentRead    = 4002

	// Template errors (5000-5999)
	ErrTemplateRender = 5000

	// Delivery errors (6000-6999)
	ErrDelivery = 6000
)

// codeDefinitions maps error codes to their definitions
var codeDefinitions = map[int]Code{
	Success:          {Success, http.StatusOK, "success"},
	ErrInternal:      {ErrInternal, http.StatusInternalServerError, "internal error"},
	ErrInvalidParams: {ErrInvalidParams, http.StatusBadRequest, "invalid parameters"},

	ErrConfigMissingParam: {ErrConfigMissingParam, http.StatusInternalServerError, "missing required configuration parameter"},
	ErrConfigInvalidPort:  {ErrConfigInvalidPort, http.StatusInternalServerError, "invalid SMTP port"},

	ErrSMTPConnection: {ErrSMTPConnection, http.StatusBadGateway, "failed to connect to SMTP server"},
	ErrSMTPAuth:       {ErrSMTPAuth, http.StatusBadGateway, "SMTP authentication failed"},

	ErrComposeSender:     {ErrComposeSender, http.StatusBadRequest, "invalid sender address"},
	ErrComposeRecipients: {ErrComposeRecipients, http.StatusBadRequest, "invalid or missing recipients"},
	ErrAttachmentRead:    {ErrAttachmentRead, http.StatusBadRequest, "failed to read attachment"},

	ErrTemplateRender: {ErrTemplateRender, http.StatusInternalServerError, "failed to render alert template"},

	ErrDelivery: {ErrDelivery, http.StatusBadGateway, "message rejected by SMTP server"},
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if def, ok := codeDefinitions[code]; ok {
		return def.Message
	}
	return fmt.Sprintf("unknown error (code %d)", code)
}

// GetHTTPStatus returns the HTTP status for an error code
func GetHTTPStatus(code int) int {
	if def, ok := codeDefinitions[code]; ok {
		return def.Status
	}
	return http.StatusInternalServerError
}
