package response

import (
	"encoding/json"
	"net/http"

	"salon-booking-api/pkg/apperror"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, err interface{}) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

func ValidationError(w http.ResponseWriter, errors interface{}) {
	JSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation failed",
		Error:   errors,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, http.StatusForbidden, message, nil)
}

// statusByKind maps business error kinds to HTTP statuses.
var statusByKind = map[apperror.Kind]int{
	apperror.KindNotFound:        http.StatusNotFound,
	apperror.KindInvalidArgument: http.StatusBadRequest,
	apperror.KindInvalidState:    http.StatusUnprocessableEntity,
	apperror.KindConflict:        http.StatusConflict,
	apperror.KindUnauthorized:    http.StatusUnauthorized,
}

// FromError writes the response matching the error's kind. Plain
// errors are treated as internal and their detail is not exposed.
func FromError(w http.ResponseWriter, err error) {
	kind := apperror.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		InternalServerError(w, "")
		return
	}
	Error(w, status, err.Error(), nil)
}
