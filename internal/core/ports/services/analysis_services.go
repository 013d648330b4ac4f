package services

import (
	"context"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
)

// AnalysisSvcFacade submits document bytes to the LLM capability and
// normalizes the output. The returned error is non-nil only for dispatch
// failures (wrapped apperrors.ErrAnalysisDispatch); malformed model output
// comes back as a result with ParseError set and RawResponse preserved,
// never as an error.
type AnalysisSvcFacade interface {
	Analyze(ctx context.Context, document []byte, contentType string, docType domain.DocumentType) (*domain.AnalysisResult, error)
}
