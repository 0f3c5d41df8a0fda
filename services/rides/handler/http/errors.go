package http

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/middleware"
	"github.com/piresc/campusride/internal/utils"
	"github.com/piresc/campusride/services/rides"
)

var conflictErrors = []error{
	rides.ErrDuplicateOffer,
	rides.ErrRequestNotMatchable,
	rides.ErrOfferExpired,
	rides.ErrInvalidState,
	rides.ErrAlreadyRated,
}

var notFoundErrors = []error{
	rides.ErrRequestNotFound,
	rides.ErrOfferNotFound,
	rides.ErrRideNotFound,
}

// errorResponse maps usecase errors onto HTTP responses
func errorResponse(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, rides.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, rides.ErrUnauthorized):
		return utils.ForbiddenResponse(c, err.Error())
	case isAny(err, notFoundErrors):
		return utils.NotFoundResponse(c, err.Error())
	case isAny(err, conflictErrors):
		return utils.ConflictResponse(c, err.Error())
	}

	middleware.NoticeError(c, err)
	logger.ErrorCtx(c.Request().Context(), "Rides operation failed",
		logger.String("operation", op),
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, "")
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
