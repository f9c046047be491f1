package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	request "printworks/internal/adapter/http/dto/request"
	response "printworks/internal/adapter/http/dto/response"
	"printworks/internal/adapter/http/middleware"
	"printworks/internal/domain/lifecycle"
	"printworks/internal/usecase"
	"printworks/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler exposes the payment bridge: checkout session creation,
// processor webhooks and the payment audit trail.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return
	}

	result, err := h.usecase.CreateCheckout(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCheckoutResult(result))
}

// HandleNotification consumes processor webhooks. Unknown references and
// guard-failed transitions are acknowledged with 200 so the processor stops
// redelivering; only transient conditions return a retryable status.
func (h *CheckoutHandler) HandleNotification(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_INPUT", "Unreadable payload", http.StatusBadRequest).ToHTTPError())
		return
	}

	var payload request.PaymentNotificationRequest
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid notification payload", http.StatusBadRequest).ToHTTPError())
			return
		}
	}

	err = h.usecase.HandleNotification(c.Request.Context(), payload.ToNotification(raw))
	switch {
	case err == nil:
		c.Status(http.StatusOK)
	case errors.Is(err, usecase.ErrUnknownPaymentReference):
		log.Printf("[http][webhook] unknown payment reference dropped session_id=%s external_reference=%s", payload.SessionID, payload.ExternalReference)
		c.Status(http.StatusOK)
	case errors.Is(err, lifecycle.ErrGuardFailed):
		log.Printf("[http][webhook] notification ignored, record not payable session_id=%s", payload.SessionID)
		c.Status(http.StatusOK)
	case errors.Is(err, usecase.ErrStaleState):
		c.JSON(http.StatusConflict, pkg.NewDomainErrorSimple("STALE_STATE", "Record changed concurrently, retry", http.StatusConflict).ToHTTPError())
	default:
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

func (h *CheckoutHandler) ListPaymentEvents(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return
	}

	events, err := h.usecase.ListPaymentEvents(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentEvents(events))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID):
		return pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller may not perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotPriced):
		return pkg.NewDomainErrorSimple("NOT_PRICED", "Record has no priced total to collect", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyLinked):
		return pkg.NewDomainErrorSimple("ALREADY_LINKED", "Record already has a checkout session", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrGuardFailed):
		return pkg.NewDomainErrorSimple("GUARD_FAILED", "Transition not allowed from current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleState):
		return pkg.NewDomainErrorSimple("STALE_STATE", "Record changed concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
