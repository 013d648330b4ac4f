package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
	"github.com/pesobooks/bookkeeping_app/internal/dto"
	"github.com/pesobooks/bookkeeping_app/internal/middleware"
)

// companyHandler handles HTTP requests related to client companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: cs}
}

// registerCompanyRoutes registers routes for managing client companies.
func registerCompanyRoutes(rg *gin.RouterGroup, cs portssvc.CompanySvcFacade) {
	h := newCompanyHandler(cs)
	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listCompanies)
		companies.GET("/:company_id", h.getCompany)
		companies.PATCH("/:company_id/status", h.updateCompanyStatus)
	}
}

// createCompany godoc
// @Summary Register a new client company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Name or slug in use"
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create company")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCompanyResponse(*company))
}

// listCompanies godoc
// @Summary List client companies
// @Tags companies
// @Produce json
// @Success 200 {array} dto.CompanyResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list companies")
		return
	}

	out := make([]dto.CompanyResponse, len(companies))
	for i, company := range companies {
		out[i] = dto.ToCompanyResponse(company)
	}
	c.JSON(http.StatusOK, out)
}

// getCompany godoc
// @Summary Get one client company
// @Tags companies
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /companies/{company_id} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	company, err := h.companyService.GetCompanyByID(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to load company")
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(*company))
}

// updateCompanyStatus godoc
// @Summary Activate or deactivate a company
// @Tags companies
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param status body dto.UpdateCompanyStatusRequest true "New status"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /companies/{company_id}/status [patch]
func (h *companyHandler) updateCompanyStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateCompanyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	company, err := h.companyService.UpdateCompanyStatus(c.Request.Context(), c.Param("company_id"), domain.CompanyStatus(req.Status), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update company status")
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(*company))
}
