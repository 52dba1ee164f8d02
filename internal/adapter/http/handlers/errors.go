package handlers

import (
	"errors"
	"net/http"
	"propertyhub/internal/adapter/http/dto/request"
	"propertyhub/internal/usecase"
	"propertyhub/pkg"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid query parameters", http.StatusBadRequest)
)

// mapValidationError covers the input errors every resource shares. The
// usecase message is safe to show: it names the field, never internals.
func mapValidationError(err error) (*pkg.AppError, bool) {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_ID", err.Error(), http.StatusBadRequest), true
	case errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", err.Error(), http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", err.Error(), http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", err.Error(), http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrInvalidCurrency):
		return pkg.NewDomainErrorSimple("INVALID_CURRENCY", err.Error(), http.StatusBadRequest), true
	}
	return nil, false
}
