package handlers

import (
	"errors"
	"net/http"

	request "printworks/internal/adapter/http/dto/request"
	response "printworks/internal/adapter/http/dto/response"
	"printworks/internal/adapter/http/middleware"
	"printworks/internal/domain/entities"
	"printworks/internal/domain/lifecycle"
	"printworks/internal/domain/pricing"
	"printworks/internal/usecase"
	"printworks/internal/usecase/interfaces"
	"printworks/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid request payload", http.StatusBadRequest)
	errMissingCaller         = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing authenticated caller", http.StatusUnauthorized)
)

// RequestHandler handles intake, review, approval and terminal transitions
// for request records, plus the sundry ledger.
type RequestHandler struct {
	usecase   usecase.IRequestUseCase
	templates interfaces.ISundryTemplateRepository
}

func NewRequestHandler(uc usecase.IRequestUseCase, templates interfaces.ISundryTemplateRepository) *RequestHandler {
	return &RequestHandler{usecase: uc, templates: templates}
}

func (h *RequestHandler) Submit(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return
	}

	var payload request.SubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.Submit(c.Request.Context(), caller, cmd)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRequestRecord(rec))
}

func (h *RequestHandler) GetByID(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return
	}

	rec, err := h.usecase.GetByID(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequestRecord(rec))
}

func (h *RequestHandler) ListRecords(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return
	}

	filter := interfaces.ListFilter{
		Status:           entities.Status(c.Query("status")),
		Kind:             entities.RequestKind(c.Query("kind")),
		PaymentStatus:    entities.PaymentStatus(c.Query("payment_status")),
		ProductionStatus: entities.ProductionStatus(c.Query("production_status")),
	}

	records, err := h.usecase.ListRecords(c.Request.Context(), caller, filter)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequestRecords(records))
}

func (h *RequestHandler) StartReview(c *gin.Context) {
	h.patchRecord(c, func(caller entities.Caller, id string) (entities.RequestRecord, error) {
		return h.usecase.StartReview(c.Request.Context(), caller, id)
	})
}

func (h *RequestHandler) Approve(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return
	}

	var payload request.ApprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.PriceAndApprove(c.Request.Context(), caller, c.Param("id"), cmd)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequestRecord(rec))
}

func (h *RequestHandler) Reject(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return
	}

	var payload request.RejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.Reject(c.Request.Context(), caller, c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequestRecord(rec))
}

func (h *RequestHandler) Cancel(c *gin.Context) {
	h.patchRecord(c, func(caller entities.Caller, id string) (entities.RequestRecord, error) {
		return h.usecase.Cancel(c.Request.Context(), caller, id)
	})
}

func (h *RequestHandler) AcceptWithoutPayment(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return
	}

	var payload request.AcceptWithoutPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.AcceptWithoutPayment(c.Request.Context(), caller, c.Param("id"), payload.Confirm)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequestRecord(rec))
}

func (h *RequestHandler) AddSundry(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return
	}

	var payload request.SundryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.AddSundry(c.Request.Context(), caller, c.Param("id"), cmd)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequestRecord(rec))
}

func (h *RequestHandler) ListSundryTemplates(c *gin.Context) {
	templates, err := h.templates.List(c.Request.Context())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSundryTemplates(templates))
}

func (h *RequestHandler) patchRecord(
	c *gin.Context,
	updater func(caller entities.Caller, id string) (entities.RequestRecord, error),
) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return
	}

	rec, err := updater(caller, c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequestRecord(rec))
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidSubmission),
		errors.Is(err, usecase.ErrUnknownProduct),
		errors.Is(err, usecase.ErrUnknownProductOption),
		errors.Is(err, pricing.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConfirmationRequired):
		return pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Explicit confirmation required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller may not perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrImmutableAfterPricing):
		return pkg.NewDomainErrorSimple("IMMUTABLE_AFTER_PRICING", "Sundries are frozen once the record is priced", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrGuardFailed):
		return pkg.NewDomainErrorSimple("GUARD_FAILED", "Transition not allowed from current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleState):
		return pkg.NewDomainErrorSimple("STALE_STATE", "Record changed concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
