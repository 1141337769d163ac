// Package validate turns a raw evaluator response into a schema.Evaluation.
// The response must match the embedded JSON Schema; result codes are not
// enum-checked here because unknown codes map to a safe default later.
package validate

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dshills/wcagaudit/internal/schema"
)

//go:embed evaluation.schema.json
var evaluationSchema string

const schemaURL = "https://wcagaudit.local/evaluation.schema.json"

var compiled = mustCompile()

func mustCompile() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, strings.NewReader(evaluationSchema)); err != nil {
		panic(fmt.Sprintf("adding evaluation schema: %v", err))
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("compiling evaluation schema: %v", err))
	}
	return s
}

// Parse strips markdown fences, checks the JSON against the evaluation
// schema and decodes it. Entries with ids outside the checklist, blank ones
// included, are kept and left for the reconciler to ignore.
func Parse(raw string) (*schema.Evaluation, error) {
	cleaned := stripFences(raw)

	var doc any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, fmt.Errorf("JSON parse failed: %w", err)
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, fmt.Errorf("response does not match evaluation schema: %w", err)
	}

	var ev schema.Evaluation
	if err := json.Unmarshal([]byte(cleaned), &ev); err != nil {
		return nil, fmt.Errorf("decoding evaluation: %w", err)
	}
	return &ev, nil
}

// stripFences removes leading/trailing markdown code fences (```json ... ``` or ``` ... ```).
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		idx := strings.Index(s, "\n")
		if idx >= 0 {
			s = s[idx+1:]
		}
	}
	if strings.HasSuffix(s, "```") {
		idx := strings.LastIndex(s, "\n```")
		if idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}
