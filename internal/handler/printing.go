package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/umersanii/CableManagement-sub001/internal/apierror"
	"github.com/umersanii/CableManagement-sub001/internal/dto"
	"github.com/umersanii/CableManagement-sub001/internal/ledger"
	"github.com/umersanii/CableManagement-sub001/internal/model"
	"github.com/umersanii/CableManagement-sub001/internal/printing"
	"github.com/umersanii/CableManagement-sub001/internal/service"
)

type PrintingHandler struct{ svc service.PrintService }

func NewPrintingHandler(svc service.PrintService) *PrintingHandler {
	return &PrintingHandler{svc: svc}
}

func parseKind(raw string) (model.DocumentKind, bool) {
	switch raw {
	case string(model.KindInvoice):
		return model.KindInvoice, true
	case string(model.KindReturn):
		return model.KindReturn, true
	case string(model.KindBalanceSheet):
		return model.KindBalanceSheet, true
	}
	return "", false
}

func docRef(c *gin.Context) (model.DocumentKind, uuid.UUID, bool) {
	kind, ok := parseKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, apierror.New("Unknown document kind"))
		return "", uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return "", uuid.Nil, false
	}
	return kind, id, true
}

// writePrintError maps domain errors onto HTTP statuses without leaking
// internals the client cannot act on.
func writePrintError(c *gin.Context, err error) {
	var invalid *ledger.InvalidRecordError
	switch {
	case errors.Is(err, printing.ErrNoPrinterAvailable):
		c.JSON(http.StatusServiceUnavailable, apierror.New(err.Error()))
	case errors.As(err, &invalid):
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}

// ListPrinters godoc
// @Summary      List available printers
// @Tags         printing
// @Produce      json
// @Success      200 {object} dto.PrinterListResponse
// @Router       /v1/printers [get]
func (h *PrintingHandler) ListPrinters(c *gin.Context) {
	printers, err := h.svc.ListPrinters(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to discover printers"))
		return
	}
	c.JSON(http.StatusOK, dto.PrinterListResponse{Printers: printers})
}

// Preview godoc
// @Summary      Preview a document
// @Description  Renders the document to a temp PDF and opens it in the system viewer. Nothing is sent to a printer.
// @Tags         printing
// @Produce      json
// @Param        kind path string true "Invoice | Return | BalanceSheet"
// @Param        id   path string true "Document UUID"
// @Success      200  {object} dto.PrintJobResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/documents/{kind}/{id}/preview [post]
func (h *PrintingHandler) Preview(c *gin.Context) {
	kind, id, ok := docRef(c)
	if !ok {
		return
	}
	resp, err := h.svc.Preview(c.Request.Context(), kind, id)
	if err != nil {
		writePrintError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Print godoc
// @Summary      Print a document
// @Description  Renders the document and sends it to the chosen printer. Fails fast when no printer is discoverable.
// @Tags         printing
// @Accept       json
// @Produce      json
// @Param        kind path string           true  "Invoice | Return | BalanceSheet"
// @Param        id   path string           true  "Document UUID"
// @Param        body body dto.PrintRequest false "Printer selection"
// @Success      200  {object} dto.PrintJobResponse
// @Failure      400  {object} apierror.APIError
// @Failure      503  {object} apierror.APIError
// @Router       /v1/documents/{kind}/{id}/print [post]
func (h *PrintingHandler) Print(c *gin.Context) {
	kind, id, ok := docRef(c)
	if !ok {
		return
	}
	var req dto.PrintRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
			return
		}
	}
	resp, err := h.svc.Print(c.Request.Context(), kind, id, req.PrinterID)
	if err != nil {
		writePrintError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PrintBatch godoc
// @Summary      Print a batch of documents
// @Description  Prints sequentially with one up-front confirmation. A failing document is recorded and skipped; the rest still print.
// @Tags         printing
// @Accept       json
// @Produce      json
// @Param        body body dto.BatchPrintRequest true "Documents to print"
// @Success      200  {object} dto.BatchResultResponse
// @Failure      400  {object} apierror.APIError
// @Failure      503  {object} apierror.APIError
// @Router       /v1/print/batch [post]
func (h *PrintingHandler) PrintBatch(c *gin.Context) {
	var req dto.BatchPrintRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.PrintBatch(c.Request.Context(), req)
	if err != nil {
		writePrintError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Email godoc
// @Summary      Email a document
// @Description  Renders the document to PDF and queues it for async email delivery with the PDF attached.
// @Tags         printing
// @Accept       json
// @Produce      json
// @Param        kind path string                   true "Invoice | Return | BalanceSheet"
// @Param        id   path string                   true "Document UUID"
// @Param        body body dto.EmailDocumentRequest true "Recipient"
// @Success      202
// @Failure      400  {object} apierror.APIError
// @Router       /v1/documents/{kind}/{id}/email [post]
func (h *PrintingHandler) Email(c *gin.Context) {
	kind, id, ok := docRef(c)
	if !ok {
		return
	}
	var req dto.EmailDocumentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Email(c.Request.Context(), kind, id, req); err != nil {
		writePrintError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// Reclaim godoc
// @Summary      Reclaim expired document artifacts
// @Description  Deletes generated PDFs older than the retention window from the output directory.
// @Tags         maintenance
// @Produce      json
// @Success      200 {object} printing.ReclaimReport
// @Router       /v1/maintenance/reclaim [post]
func (h *PrintingHandler) Reclaim(c *gin.Context) {
	report := h.svc.Reclaim()
	c.JSON(http.StatusOK, report)
}
