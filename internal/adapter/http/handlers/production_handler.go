package handlers

import (
	"errors"
	"net/http"

	request "printworks/internal/adapter/http/dto/request"
	response "printworks/internal/adapter/http/dto/response"
	"printworks/internal/adapter/http/middleware"
	"printworks/internal/domain/entities"
	"printworks/internal/domain/production"
	"printworks/internal/usecase"
	"printworks/pkg"

	"github.com/gin-gonic/gin"
)

type ProductionHandler struct {
	usecase usecase.IProductionUseCase
}

func NewProductionHandler(uc usecase.IProductionUseCase) *ProductionHandler {
	return &ProductionHandler{usecase: uc}
}

func (h *ProductionHandler) Advance(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return
	}

	var payload request.ProductionAdvanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.Advance(c.Request.Context(), caller, c.Param("id"), entities.ProductionStatus(payload.Target), payload.Override)
	if err != nil {
		appErr := mapProductionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequestRecord(rec))
}

func mapProductionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, production.ErrUnknownStage):
		return pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller may not perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request record not found", http.StatusNotFound)
	case errors.Is(err, production.ErrGuardFailed):
		return pkg.NewDomainErrorSimple("GUARD_FAILED", "Production stage change not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleState):
		return pkg.NewDomainErrorSimple("STALE_STATE", "Record changed concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
