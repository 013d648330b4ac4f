package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
	"github.com/pesobooks/bookkeeping_app/internal/dto"
	"github.com/pesobooks/bookkeeping_app/internal/middleware"
)

// reportingHandler serves the diagnostic read endpoint.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the diagnostic routes.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newReportingHandler(rs)
	rg.GET("/companies/:company_id/documents-report", h.companyDocumentsReport)
}

// companyDocumentsReport godoc
// @Summary Diagnostic report over a company's documents
// @Description Per-document digests plus aggregate counts, surfacing zero-value P&L statements and parse failures.
// @Tags reporting
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} dto.CompanyDocumentsReportResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{company_id}/documents-report [get]
func (h *reportingHandler) companyDocumentsReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.CompanyDocumentsReport(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to build documents report")
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyDocumentsReportResponse(*report))
}
