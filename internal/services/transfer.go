package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"flowstate/internal/domain"
	"flowstate/internal/logging"
	"flowstate/internal/ports"
)

// ExportFormat selects the export encoding
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatYAML ExportFormat = "yaml"
)

// ImportResult reports what an import changed
type ImportResult struct {
	Imported []domain.Category
	Ignored  []string
}

// TransferService exports, imports and clears the whole store
type TransferService struct {
	store ports.CategoryStore
}

// NewTransferService creates a new TransferService
func NewTransferService(store ports.CategoryStore) *TransferService {
	return &TransferService{store: store}
}

// Export writes one object keyed by category holding each present value verbatim.
// Values that are not valid JSON are skipped with a warning. YAML output is for
// reading only; Import accepts JSON.
func (s *TransferService) Export(ctx context.Context, w io.Writer, format ExportFormat) error {
	values, err := s.collect(ctx)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(values); err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}
	case FormatYAML:
		decoded := make(map[string]any, len(values))
		for k, raw := range values {
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("failed to decode %s: %w", k, err)
			}
			decoded[k] = v
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(decoded); err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}

	logging.Logger.Info("Data exported", "categories", len(values), "format", format)
	return nil
}

func (s *TransferService) collect(ctx context.Context) (map[string]json.RawMessage, error) {
	values := make(map[string]json.RawMessage)
	for _, category := range domain.AllCategories() {
		data, err := s.store.Get(ctx, category)
		if errors.Is(err, domain.ErrCategoryNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", category, err)
		}
		if !json.Valid(data) {
			logging.Logger.Warn("Skipping corrupt category in export", "category", category)
			continue
		}
		values[string(category)] = json.RawMessage(data)
	}
	return values, nil
}

// Import replaces every known category present in the JSON object read from r.
// Unknown keys are ignored. Malformed input changes nothing; the write itself
// is a single all-or-nothing store operation.
func (s *TransferService) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to read import: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ImportResult{}, fmt.Errorf("%w: expected a JSON object", domain.ErrInvalidImport)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", domain.ErrInvalidImport, err)
	}

	var result ImportResult
	values := make(map[domain.Category][]byte, len(payload))
	for key, raw := range payload {
		category, ok := domain.ParseCategory(key)
		if !ok {
			result.Ignored = append(result.Ignored, key)
			continue
		}
		// The canonical key wins over the legacy alias
		if _, seen := values[category]; seen && key != string(category) {
			continue
		}

		var compact bytes.Buffer
		if err := json.Compact(&compact, raw); err != nil {
			return ImportResult{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidImport, key, err)
		}
		values[category] = compact.Bytes()
	}

	if err := s.store.PutMany(ctx, values); err != nil {
		logging.Logger.Error("Import failed", "error", err)
		return ImportResult{}, fmt.Errorf("failed to import: %w", err)
	}

	for category := range values {
		result.Imported = append(result.Imported, category)
	}
	slices.Sort(result.Imported)
	slices.Sort(result.Ignored)

	logging.Logger.Info("Data imported",
		"categories", len(result.Imported),
		"ignored", strings.Join(result.Ignored, ","))
	return result, nil
}

// Clear removes every category
func (s *TransferService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	logging.Logger.Info("All data cleared")
	return nil
}
