package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
	"github.com/pesobooks/bookkeeping_app/internal/dto"
	"github.com/pesobooks/bookkeeping_app/internal/middleware"
)

// categoryHandler serves the read-only category taxonomy.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers the taxonomy routes.
func registerCategoryRoutes(rg *gin.RouterGroup, cs portssvc.CategorySvcFacade) {
	h := newCategoryHandler(cs)
	rg.GET("/categories", h.listCategories)
}

// listCategories godoc
// @Summary List the category taxonomy
// @Description Returns every category with its subcategories. The taxonomy is seeded by migration and read-only at runtime.
// @Tags categories
// @Produce json
// @Success 200 {object} dto.ListCategoriesResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	taxonomy, err := h.categoryService.ListTaxonomy(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(taxonomy))
}
