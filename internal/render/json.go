package render

import (
	"encoding/json"

	"github.com/dshills/wcagaudit/internal/schema"
)

type jsonRenderer struct{}

func (r *jsonRenderer) Render(report *schema.ReportData) ([]byte, error) {
	if report == nil {
		report = &schema.ReportData{}
	}
	return json.MarshalIndent(report, "", "  ")
}
