package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/LashBookingService/internal/domain"
)

const (
	codeInvalidRequest = "invalid_request"
	codeInternal       = "internal_error"

	msgInternalError = "internal server error"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError отправляет ошибку в формате {"code", "message"}
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// RespondBadRequest 400 для ошибок разбора запроса
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, codeInvalidRequest, message)
}

// RespondInternalError 500 без деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, codeInternal, msgInternalError)
}

// RespondDomainError отправляет бизнес-ошибку с кодом по её виду.
// Возвращает false, если err не бизнес-ошибка (ответ не отправлен).
func RespondDomainError(w http.ResponseWriter, err error) bool {
	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		return false
	}
	RespondError(w, StatusForKind(domainErr.Kind), string(domainErr.Kind), domainErr.Detail)
	return true
}

// StatusForKind HTTP статус для вида бизнес-ошибки
func StatusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindInvalidDateFormat,
		domain.KindInvalidTimeFormat,
		domain.KindMissingParameter,
		domain.KindInvalidDuration,
		domain.KindInvalidInput,
		domain.KindDateBlocked,
		domain.KindBusinessClosed,
		domain.KindOutsideBusinessHours:
		return http.StatusBadRequest
	case domain.KindServiceNotFound,
		domain.KindAddOnNotFound,
		domain.KindAppointmentNotFound:
		return http.StatusNotFound
	case domain.KindSlotNotAvailable,
		domain.KindInvalidStatusTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
