package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/matthewtax/ngtax/internal/domain"
	"github.com/matthewtax/ngtax/internal/service"
)

// TaxHandler exposes the tax calculation service over HTTP.
type TaxHandler struct {
	taxService service.TaxService
}

// NewTaxHandler creates a handler over the application service.
func NewTaxHandler(taxService service.TaxService) *TaxHandler {
	return &TaxHandler{taxService: taxService}
}

// RegisterRoutes mounts the API routes on the router.
func (h *TaxHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Health)
	router.POST("/tax/calculate", h.Calculate)
	router.POST("/tax/simulate", h.Simulate)
	router.POST("/report", h.CreateReport)
	router.GET("/report/:id", h.GetReport)
}

// Health reports service liveness.
func (h *TaxHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Calculate runs a tax calculation from the wire payload.
func (h *TaxHandler) Calculate(c *gin.Context) {
	var req service.CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload: " + err.Error()})
		return
	}

	resp, err := h.taxService.Calculate(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Simulate projects investment growth and the CGT due each year.
func (h *TaxHandler) Simulate(c *gin.Context) {
	var req service.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload: " + err.Error()})
		return
	}

	resp, err := h.taxService.Simulate(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateReport calculates, schedules and records a payment schedule.
func (h *TaxHandler) CreateReport(c *gin.Context) {
	var req service.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload: " + err.Error()})
		return
	}

	record, err := h.taxService.CreateReport(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetReport returns a previously created schedule record.
func (h *TaxHandler) GetReport(c *gin.Context) {
	record, ok := h.taxService.GetReport(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// writeError maps service errors onto HTTP responses. Validation errors
// carry the failing field so the UI can render an actionable message.
func writeError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Constraint, "field": ve.Field})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
