package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
	"github.com/pesobooks/bookkeeping_app/internal/dto"
	"github.com/pesobooks/bookkeeping_app/internal/middleware"
)

// maxUploadBytes caps document uploads at 25 MiB.
const maxUploadBytes = 25 << 20

// documentHandler handles HTTP requests for the document pipeline.
type documentHandler struct {
	lifecycleService portssvc.DocumentLifecycleSvcFacade
	documentService  portssvc.DocumentSvcFacade
}

func newDocumentHandler(ls portssvc.DocumentLifecycleSvcFacade, ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{lifecycleService: ls, documentService: ds}
}

// registerDocumentRoutes registers the document pipeline routes.
func registerDocumentRoutes(rg *gin.RouterGroup, ls portssvc.DocumentLifecycleSvcFacade, ds portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(ls, ds)

	documents := rg.Group("/documents")
	{
		documents.POST("", h.uploadDocument)
		documents.GET("/:document_id", h.getDocument)
		documents.GET("/:document_id/content", h.getDocumentContent)
		documents.POST("/:document_id/reprocess", h.reprocessDocument)
		documents.DELETE("/:document_id", h.deleteDocument)
	}

	rg.GET("/companies/:company_id/documents", h.listDocuments)
}

// uploadDocument godoc
// @Summary Upload a source document and run analysis
// @Description Stores the file, registers the document and runs extraction synchronously. The response reflects the final status of the run.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param companyID formData string true "Company ID"
// @Param month formData int true "Reporting month (1-12)"
// @Param year formData int true "Reporting year"
// @Param documentType formData string true "STATEMENT, RECEIPT or OTHER"
// @Param storageType formData string false "INTERNAL_CHUNKED or EXTERNAL_OBJECT"
// @Param file formData file true "Document file"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /documents [post]
func (h *documentHandler) uploadDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("File exceeds the %d byte limit", maxUploadBytes)})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	req.FileName = fileHeader.Filename
	req.ContentType = fileHeader.Header.Get("Content-Type")
	if req.ContentType == "" {
		req.ContentType = "application/octet-stream"
	}
	req.Content = content

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, err := h.lifecycleService.UploadDocument(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to upload document")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentResponse(*doc))
}

// getDocument godoc
// @Summary Get one document record
// @Tags documents
// @Produce json
// @Param document_id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /documents/{document_id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	doc, err := h.documentService.GetDocument(c.Request.Context(), c.Param("document_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to load document")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(*doc))
}

// listDocuments godoc
// @Summary List a company's documents
// @Tags documents
// @Produce json
// @Param company_id path string true "Company ID"
// @Param status query string false "Filter by processing status"
// @Success 200 {object} dto.ListDocumentsResponse
// @Security BearerAuth
// @Router /companies/{company_id}/documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var status *domain.ProcessingStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.ProcessingStatus(raw)
		status = &s
	}

	docs, err := h.documentService.ListDocuments(c.Request.Context(), c.Param("company_id"), status)
	if err != nil {
		respondError(c, logger, err, "Failed to list documents")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDocumentsResponse(docs))
}

// getDocumentContent godoc
// @Summary Download the stored document bytes
// @Tags documents
// @Produce octet-stream
// @Param document_id path string true "Document ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /documents/{document_id}/content [get]
func (h *documentHandler) getDocumentContent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	content, contentType, err := h.lifecycleService.GetDocumentContent(c.Request.Context(), c.Param("document_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to read document content")
		return
	}

	c.Data(http.StatusOK, contentType, content)
}

// reprocessDocument godoc
// @Summary Re-dispatch a failed document
// @Description Re-enters PROCESSING from FAILED and runs a fresh analysis over the stored bytes.
// @Tags documents
// @Produce json
// @Param document_id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Document is not in FAILED or is being processed"
// @Security BearerAuth
// @Router /documents/{document_id}/reprocess [post]
func (h *documentHandler) reprocessDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, err := h.lifecycleService.ReprocessDocument(c.Request.Context(), c.Param("document_id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to reprocess document")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(*doc))
}

// deleteDocument godoc
// @Summary Delete a document and its stored bytes
// @Tags documents
// @Produce json
// @Param document_id path string true "Document ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /documents/{document_id} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.lifecycleService.DeleteDocument(c.Request.Context(), c.Param("document_id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete document")
		return
	}

	c.Status(http.StatusNoContent)
}
