package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/umersanii/CableManagement-sub001/internal/apierror"
	"github.com/umersanii/CableManagement-sub001/internal/dto"
	"github.com/umersanii/CableManagement-sub001/internal/service"
)

type DocumentsHandler struct{ svc service.DocumentService }

func NewDocumentsHandler(svc service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{svc: svc}
}

func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	return page, limit
}

// ── Invoices ─────────────────────────────────────────────────────────────────

// CreateInvoice godoc
// @Summary      Create an invoice
// @Description  Persists an invoice with its line items. Totals are derived server-side from exact decimal arithmetic.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateInvoiceRequest true "Invoice detail"
// @Success      201  {object} dto.InvoiceResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/invoices [post]
func (h *DocumentsHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetInvoice godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} dto.InvoiceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/invoices/{id} [get]
func (h *DocumentsHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	resp, err := h.svc.GetInvoice(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListInvoices godoc
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Param        page  query int false "Page (default 1)"
// @Param        limit query int false "Records per page (default 50)"
// @Success      200 {object} dto.ListResponse[dto.InvoiceResponse]
// @Router       /v1/invoices [get]
func (h *DocumentsHandler) ListInvoices(c *gin.Context) {
	page, limit := pagination(c)
	resp, err := h.svc.ListInvoices(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list invoices"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Return invoices ──────────────────────────────────────────────────────────

// CreateReturn godoc
// @Summary      Create a return invoice
// @Description  Persists a return against a prior invoice. The running balance decreases by the returned net amount.
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateReturnRequest true "Return detail"
// @Success      201  {object} dto.ReturnResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/returns [post]
func (h *DocumentsHandler) CreateReturn(c *gin.Context) {
	var req dto.CreateReturnRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateReturn(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetReturn godoc
// @Summary      Get a return invoice
// @Tags         returns
// @Produce      json
// @Param        id path string true "Return UUID"
// @Success      200 {object} dto.ReturnResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/returns/{id} [get]
func (h *DocumentsHandler) GetReturn(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	resp, err := h.svc.GetReturn(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListReturns godoc
// @Summary      List return invoices
// @Tags         returns
// @Produce      json
// @Param        page  query int false "Page (default 1)"
// @Param        limit query int false "Records per page (default 50)"
// @Success      200 {object} dto.ListResponse[dto.ReturnResponse]
// @Router       /v1/returns [get]
func (h *DocumentsHandler) ListReturns(c *gin.Context) {
	page, limit := pagination(c)
	resp, err := h.svc.ListReturns(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list returns"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Balance snapshots ────────────────────────────────────────────────────────

// CreateSnapshot godoc
// @Summary      Create a balance snapshot
// @Description  Records point-in-time receivables, payables and bank balance; net worth is derived server-side.
// @Tags         snapshots
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateSnapshotRequest true "Snapshot detail"
// @Success      201  {object} dto.SnapshotResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/snapshots [post]
func (h *DocumentsHandler) CreateSnapshot(c *gin.Context) {
	var req dto.CreateSnapshotRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateSnapshot(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetSnapshot godoc
// @Summary      Get a balance snapshot
// @Tags         snapshots
// @Produce      json
// @Param        id path string true "Snapshot UUID"
// @Success      200 {object} dto.SnapshotResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/snapshots/{id} [get]
func (h *DocumentsHandler) GetSnapshot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	resp, err := h.svc.GetSnapshot(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListSnapshots godoc
// @Summary      List balance snapshots
// @Tags         snapshots
// @Produce      json
// @Param        page  query int false "Page (default 1)"
// @Param        limit query int false "Records per page (default 50)"
// @Success      200 {object} dto.ListResponse[dto.SnapshotResponse]
// @Router       /v1/snapshots [get]
func (h *DocumentsHandler) ListSnapshots(c *gin.Context) {
	page, limit := pagination(c)
	resp, err := h.svc.ListSnapshots(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list snapshots"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
