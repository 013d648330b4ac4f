package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	"github.com/pesobooks/bookkeeping_app/internal/core/ports"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
	"github.com/pesobooks/bookkeeping_app/internal/middleware"
)

// AnalysisService submits document bytes to the model and normalizes the
// output. Malformed model output is a data condition, not an error: it
// comes back as a result with ParseError set and the raw text preserved.
type AnalysisService struct {
	llm          ports.LLMClient
	categoryRepo portsrepo.CategoryRepository
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(llm ports.LLMClient, cr portsrepo.CategoryRepository) portssvc.AnalysisSvcFacade {
	return &AnalysisService{
		llm:          llm,
		categoryRepo: cr,
	}
}

// Ensure AnalysisService implements the portssvc.AnalysisSvcFacade interface
var _ portssvc.AnalysisSvcFacade = (*AnalysisService)(nil)

// analysisPayload is the JSON shape the model is instructed to return.
type analysisPayload struct {
	DocumentType string                        `json:"documentType"`
	Transactions []domain.ExtractedTransaction `json:"transactions"`
	PLStatement  *domain.PLStatement           `json:"plStatement"`
	Summary      string                        `json:"summary"`
	Insights     []string                      `json:"insights"`
}

// Analyze runs one model invocation over the document bytes. Only dispatch
// failures return an error; everything the model sends back, parseable or
// not, becomes an AnalysisResult.
func (s *AnalysisService) Analyze(ctx context.Context, document []byte, contentType string, docType domain.DocumentType) (*domain.AnalysisResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	prompt, err := s.buildPrompt(ctx, docType)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build analysis prompt: %w", apperrors.ErrAnalysisDispatch, err)
	}

	resp, err := s.llm.Generate(ctx, prompt, document, contentType)
	if err != nil {
		if !errors.Is(err, apperrors.ErrAnalysisDispatch) {
			err = fmt.Errorf("%w: %w", apperrors.ErrAnalysisDispatch, err)
		}
		logger.Warn("Model dispatch failed", slog.String("error", err.Error()))
		return nil, err
	}

	result := &domain.AnalysisResult{
		DocumentType: docType,
		RawResponse:  resp.Text,
		Model:        resp.Model,
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(cleanModelJSON(resp.Text)), &payload); err != nil {
		result.ParseError = fmt.Sprintf("model output is not valid JSON: %v", err)
		logger.Warn("Model output failed to parse", slog.String("parse_error", result.ParseError))
		return result, nil
	}
	if reason := validatePayload(payload); reason != "" {
		result.ParseError = reason
		logger.Warn("Model output failed validation", slog.String("parse_error", reason))
		return result, nil
	}

	if payload.DocumentType != "" {
		result.DocumentType = domain.DocumentType(payload.DocumentType)
	}
	result.Transactions = payload.Transactions
	result.PLStatement = payload.PLStatement
	result.Summary = payload.Summary
	result.Insights = payload.Insights

	logger.Info("Analysis completed",
		slog.String("model", resp.Model),
		slog.Int("transactions", len(result.Transactions)),
		slog.Bool("has_pl", result.PLStatement != nil))
	return result, nil
}

// buildPrompt assembles the extraction instructions plus the category
// taxonomy so the model categorizes against real names.
func (s *AnalysisService) buildPrompt(ctx context.Context, docType domain.DocumentType) (string, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list categories: %w", err)
	}

	var taxonomy strings.Builder
	for _, cat := range categories {
		subs, err := s.categoryRepo.ListSubcategories(ctx, cat.CategoryID)
		if err != nil {
			return "", fmt.Errorf("failed to list subcategories of %s: %w", cat.Name, err)
		}
		taxonomy.WriteString("- " + cat.Name + " (" + cat.Kind + ")")
		if len(subs) > 0 {
			names := make([]string, len(subs))
			for i, sub := range subs {
				names[i] = sub.Name
			}
			taxonomy.WriteString(": " + strings.Join(names, ", "))
		}
		taxonomy.WriteString("\n")
	}

	prompt := "You are an accounting assistant. The attached file is a " + documentTypeNoun(docType) + ".\n" +
		"Extract its financial contents and return ONLY a JSON object with this shape:\n" +
		`{"documentType":"STATEMENT|RECEIPT|OTHER","transactions":[{"date":"YYYY-MM-DD","description":"...","amount":123.45,"direction":"DEBIT|CREDIT","checkNo":"","balance":123.45,"category":"...","subcategory":"...","confidence":0.9}],"plStatement":{"totalRevenue":0,"totalExpenses":0},"summary":"...","insights":["..."]}` + "\n" +
		"Rules:\n" +
		"- amount is always a positive number; direction carries the polarity.\n" +
		"- confidence is your categorization certainty between 0 and 1.\n" +
		"- category and subcategory must come from this taxonomy, or be omitted:\n" +
		taxonomy.String() +
		"- plStatement totals must be non-negative; use zeros when the document shows no activity.\n" +
		"- Do NOT use ```json or any Markdown. Output must begin with \"{\" and end with \"}\".\n"

	return prompt, nil
}

// validatePayload returns a non-empty reason when the parsed payload
// violates the structural rules the prompt asked for.
func validatePayload(p analysisPayload) string {
	if p.PLStatement != nil {
		if p.PLStatement.TotalRevenue.IsNegative() || p.PLStatement.TotalExpenses.IsNegative() {
			return "plStatement totals must be non-negative"
		}
	}
	switch p.DocumentType {
	case "", string(domain.DocumentTypeStatement), string(domain.DocumentTypeReceipt), string(domain.DocumentTypeOther):
	default:
		return fmt.Sprintf("unknown documentType %q", p.DocumentType)
	}
	return ""
}

func documentTypeNoun(t domain.DocumentType) string {
	switch t {
	case domain.DocumentTypeStatement:
		return "bank or credit card statement"
	case domain.DocumentTypeReceipt:
		return "purchase receipt"
	default:
		return "financial document"
	}
}

// cleanModelJSON strips Markdown code fences the model sometimes wraps its
// output in despite instructions.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
