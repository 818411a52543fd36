package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/artledger/content-registry/internal/api/shared/errors"
	"github.com/artledger/content-registry/internal/domain"
	"github.com/artledger/content-registry/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondInternalError responds with an internal server error and logs it
func respondInternalError(c *gin.Context, err error, message string) {
	logger.Error(err, zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondDomainError maps a registry error onto the HTTP surface by its
// kind: validation 422, not found 404, authorization 403, payment 402,
// state 409, everything else 500.
func respondDomainError(c *gin.Context, err error) {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(err.Error()))
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(err.Error()))
	case domain.KindAuthorization:
		c.JSON(http.StatusForbidden, apierrors.NewForbiddenError(err.Error()))
	case domain.KindPayment:
		c.JSON(http.StatusPaymentRequired, apierrors.NewPaymentFailedError(err.Error()))
	case domain.KindState:
		c.JSON(http.StatusConflict, apierrors.NewStateConflictError(err.Error()))
	default:
		respondInternalError(c, err, "Internal error")
	}
}
