package application

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/toolcheck/toolcheck/internal/domain"
)

// SchemaService checks JSON Schema documents for structural correctness.
type SchemaService struct {
	checker domain.SchemaChecker
}

// NewSchemaService creates a SchemaService backed by checker.
func NewSchemaService(checker domain.SchemaChecker) *SchemaService {
	return &SchemaService{checker: checker}
}

// CheckFile loads path, picks the draft from its $schema keyword and checks
// the document against that draft's metaschema. Load failures are returned
// as *domain.InputError; an invalid schema is not an error.
func (s *SchemaService) CheckFile(ctx context.Context, path string) (*domain.SchemaReport, error) {
	data, doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return s.CheckDocument(ctx, path, data, doc)
}

// CheckDocument checks an already parsed document. data and doc must hold
// the same JSON value.
func (s *SchemaService) CheckDocument(ctx context.Context, path string, data []byte, doc any) (*domain.SchemaReport, error) {
	logger := log.FromContext(ctx)

	report := &domain.SchemaReport{
		RunID: uuid.NewString(),
		File:  path,
	}

	obj, isObject := doc.(map[string]any)
	if isObject {
		report.SchemaURI = schemaURI(obj)
		if title, ok := obj["title"]; ok {
			report.Title = fmt.Sprint(title)
		}
	}
	report.Draft = domain.DraftForURI(report.SchemaURI)
	logger.Debug("selected draft", "file", path, "schema", report.SchemaURI, "draft", report.Draft)

	issues, err := s.checker.Check(data, report.Draft)
	if err != nil {
		return nil, fmt.Errorf("validating schema: %w", err)
	}
	report.Errors = issues
	report.Valid = len(issues) == 0

	if report.Valid && isObject && report.MissingSchemaURI() {
		fields, more, err := domain.BuildPreview(data)
		if err != nil {
			logger.Debug("building preview failed", "err", err)
		}
		report.Preview = fields
		report.MoreFields = more
	}
	return report, nil
}

func schemaURI(obj map[string]any) string {
	v, ok := obj["$schema"]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
