package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	authsvc "github.com/heartmarshall/yoruba-science-backend/internal/service/auth"
	usersvc "github.com/heartmarshall/yoruba-science-backend/internal/service/user"
)

// errorResponder translates service errors into failure envelopes.
// notFound and conflict are the resource-specific messages.
type errorResponder struct {
	log      *slog.Logger
	notFound string
	conflict string
}

func (e errorResponder) respond(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *domain.ValidationError
		de *domain.DependencyError
	)

	switch {
	case errors.Is(err, authsvc.ErrAdminExists):
		writeError(w, http.StatusBadRequest, "Admin already exists.")
	case errors.Is(err, usersvc.ErrSelfRoleChange):
		writeError(w, http.StatusBadRequest, "Cannot change your own role")
	case errors.Is(err, usersvc.ErrSelfDeactivation):
		writeError(w, http.StatusBadRequest, "Cannot deactivate your own account")
	case errors.As(err, &de):
		writeError(w, http.StatusBadRequest, fmt.Sprintf(
			"Cannot delete %s with %d articles. Remove articles first or reassign them.", de.Entity, de.Count))
	case errors.As(err, &ve):
		writeValidation(w, ve)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "Validation failed")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, e.notFound)
	case errors.Is(err, domain.ErrBadLogin):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrDeactivated):
		writeError(w, http.StatusUnauthorized, "Account is deactivated")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Not authorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "Insufficient permission for this action")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, e.conflict)
	default:
		e.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}

// writeValidation reports field errors. A single error also forms the
// headline message.
func writeValidation(w http.ResponseWriter, ve *domain.ValidationError) {
	details := make([]fieldDetail, len(ve.Errors))
	for i, fe := range ve.Errors {
		details[i] = fieldDetail{Field: fe.Field, Message: fe.Message}
	}

	message := "Validation failed"
	if len(ve.Errors) == 1 {
		message = ve.Errors[0].Field + ": " + ve.Errors[0].Message
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message, Details: details})
}
