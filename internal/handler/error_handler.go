package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagdasarian/church-roster/internal/domain"
	"go.uber.org/zap"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	// пустой пул - не сбой, UI показывает сообщение пользователю
	if errors.As(err, &domainErr) && domainErr.Code == domain.CodeEmptyPool {
		writeJSON(w, http.StatusOK, DomainErrorResponse{Error: domainErr.Message})
		return
	}

	if domainErr != nil && domainErr.Code != domain.CodePersistenceFailure {
		statusCode := getStatusCode(domainErr.Code)
		h.log.Debug("request failed",
			zap.String("path", r.URL.Path),
			zap.String("code", domainErr.Code),
			zap.String("message", domainErr.Message),
		)
		writeJSON(w, statusCode, ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	code := "INTERNAL_ERROR"
	if domainErr != nil {
		code = domainErr.Code
	}
	h.log.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("code", code),
		zap.Error(err),
	)

	// детали ошибок хранилища наружу не отдаем
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeBadRequest:
		return http.StatusBadRequest
	case domain.CodeMinistryExists:
		return http.StatusConflict
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
