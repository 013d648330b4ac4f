package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
	"github.com/pesobooks/bookkeeping_app/internal/dto"
	"github.com/pesobooks/bookkeeping_app/internal/middleware"
)

// transactionHandler handles HTTP requests for extracted transactions.
type transactionHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newTransactionHandler(rs portssvc.ReconciliationSvcFacade) *transactionHandler {
	return &transactionHandler{reconciliationService: rs}
}

// registerTransactionRoutes registers the transaction routes.
func registerTransactionRoutes(rg *gin.RouterGroup, rs portssvc.ReconciliationSvcFacade) {
	h := newTransactionHandler(rs)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transaction_id", h.getTransaction)
		transactions.POST("/:transaction_id/reconcile", h.reconcileTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions scoped to a company or a document, optionally filtered by reconciliation state.
// @Tags transactions
// @Produce json
// @Param companyID query string false "Company ID"
// @Param documentID query string false "Document ID"
// @Param reconciled query bool false "Filter by reconciliation state"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Missing scope"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter := portsrepo.TransactionFilter{
		CompanyID:  c.Query("companyID"),
		DocumentID: c.Query("documentID"),
	}
	if raw := c.Query("reconciled"); raw != "" {
		reconciled, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "reconciled must be a boolean"})
			return
		}
		filter.IsReconciled = &reconciled
	}

	txns, err := h.reconciliationService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// getTransaction godoc
// @Summary Get one transaction
// @Tags transactions
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /transactions/{transaction_id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txn, err := h.reconciliationService.GetTransaction(c.Request.Context(), c.Param("transaction_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to load transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(*txn))
}

// reconcileTransaction godoc
// @Summary Reconcile a transaction against the category taxonomy
// @Description Confirms or reassigns the category and stamps the reconciliation. Repeated calls overwrite: latest write wins.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param reconciliation body dto.ReconcileTransactionRequest true "Category assignment"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid category assignment"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /transactions/{transaction_id}/reconcile [post]
func (h *transactionHandler) reconcileTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReconcileTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.reconciliationService.ReconcileTransaction(c.Request.Context(), c.Param("transaction_id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to reconcile transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(*txn))
}
