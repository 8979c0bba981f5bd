package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"coletaverde/internal/usecase"
	"coletaverde/pkg"

	"github.com/gin-gonic/gin"
)

var errInternal = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)

// mapError translates use-case failures to transport errors. Conflicts are
// reported as 400 like every other business-rule rejection.
func mapError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrPaymentGatewayUnauthorized) {
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusUnauthorized)
	}
	if errors.Is(err, usecase.ErrPaymentGatewayNotConfigured) {
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	}

	var ue *usecase.Error
	if !errors.As(err, &ue) {
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
	switch ue.Kind {
	case usecase.KindValidation:
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", ue.Message, http.StatusBadRequest)
	case usecase.KindConflict:
		return pkg.NewDomainErrorSimple("CONFLICT", ue.Message, http.StatusBadRequest)
	case usecase.KindNotFound:
		return pkg.NewDomainErrorSimple("NOT_FOUND", ue.Message, http.StatusNotFound)
	case usecase.KindForbidden:
		return pkg.NewDomainErrorSimple("FORBIDDEN", ue.Message, http.StatusForbidden)
	}
	return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.Err != nil {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// respondBindingError reports malformed bodies and failed binding tags.
func respondBindingError(c *gin.Context, err error) {
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", pkg.ValidationMessage(err), http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondBadRequest(c *gin.Context, message string) {
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", message, http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, pkg.OK(http.StatusOK, data))
}

// int64Param parses a positive numeric path parameter.
func int64Param(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "'"+raw+"' is not a valid id")
		return 0, false
	}
	return id, true
}
