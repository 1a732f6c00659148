package handler

import (
	"net/http"

	"retailpos/internal/dto"
	"retailpos/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct {
	svc      service.ReportService
	products service.ProductService
}

func NewReportsHandler(svc service.ReportService, products service.ProductService) *ReportsHandler {
	return &ReportsHandler{svc: svc, products: products}
}

// SalesSummary godoc
// @Summary Revenue summary for a date range
// @Tags reports
// @Produce json
// @Param from query string true "YYYY-MM-DD"
// @Param to query string true "YYYY-MM-DD"
// @Success 200 {object} dto.SalesSummaryResponse
// @Router /v1/reports/sales-summary [get]
func (h *ReportsHandler) SalesSummary(c *gin.Context) {
	var r dto.ReportRange
	if !bindQuery(c, &r) {
		return
	}
	resp, err := h.svc.SalesSummary(c.Request.Context(), r)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) TopProducts(c *gin.Context) {
	var r dto.ReportRange
	if !bindQuery(c, &r) {
		return
	}
	resp, err := h.svc.TopProducts(c.Request.Context(), r)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LowStock lists catalog products at or below their reorder level.
func (h *ReportsHandler) LowStock(c *gin.Context) {
	resp, err := h.products.ListLowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReceiptText returns the sale receipt as fixed-width plain text.
func (h *ReportsHandler) ReceiptText(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	text, err := h.svc.ReceiptText(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusOK, text)
}

// ReceiptPDF generates the PDF receipt on disk and streams it back.
func (h *ReportsHandler) ReceiptPDF(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	path, err := h.svc.ReceiptPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, "receipt.pdf")
}
