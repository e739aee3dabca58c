package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func suitabilitySchema() *Schema {
	return &Schema{
		Name: "suitability-scores-test",
		Definition: map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"node_name": map[string]any{"type": "string"},
					"suitability_score": map[string]any{
						"type": "number",
					},
				},
				"required": []any{"node_name", "suitability_score"},
			},
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`[{"node_name":"fractions","suitability_score":0.7}]`)
	if err := validateResponse(suitabilitySchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponseRejectsMissingField(t *testing.T) {
	raw := json.RawMessage(`[{"node_name":"fractions"}]`)
	err := validateResponse(suitabilitySchema(), raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseRejectsNonJSON(t *testing.T) {
	raw := json.RawMessage(`not json at all`)
	err := validateResponse(suitabilitySchema(), raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`whatever`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}
