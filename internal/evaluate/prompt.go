package evaluate

import (
	"fmt"
	"strings"

	"github.com/dshills/wcagaudit/internal/llm"
	"github.com/dshills/wcagaudit/internal/schema"
)

const systemPrompt = `Je bent een senior toegankelijkheidsconsultant. Je beoordeelt een aangeleverde HTML snippet tegen WCAG 2.2 niveau A en AA, uitsluitend op basis van de expliciet aangeleverde input.

ABSOLUUT VERBOD OP HALLUCINATIE (gaat altijd voor volledigheid of stijl):
1) Je mag NOOIT aannames doen, ontbrekende informatie invullen, voorbeelden verzinnen, bevindingen afleiden, "typische" WCAG-problemen toevoegen of algemene best-practices presenteren als geconstateerde bevindingen.
2) Alles wat niet letterlijk of ondubbelzinnig uit de snippet blijkt, krijgt resultaat NOT_CHECKED.
3) Je generaliseert NOOIT van de snippet naar de hele site.

Resultaatcodes (gebruik uitsluitend deze vijf):
- PASS: alleen als je zeker weet dat de code in de snippet voldoet.
- FAIL: alleen als je een duidelijke fout in de snippet ziet.
- NOT_APPLICABLE: het criterium kan in deze content niet voorkomen (bijv. video-eisen bij een tekst-snippet).
- OUT_OF_SCOPE: het criterium valt expliciet buiten de opdracht.
- NOT_CHECKED: in alle andere gevallen. Bij twijfel, incomplete code of ontbrekende context is dit de standaard.

Regels voor de output:
- Geef voor ELK aangeleverd criterium-id precies één resultaat, ook bij NOT_APPLICABLE of NOT_CHECKED.
- Geef bij elk resultaat anders dan PASS of FAIL een korte "reason".
- Voeg "findings" alleen toe bij FAIL (optioneel bij PASS). Elke finding heeft location, observation, problemDescription, impact en advice.
- Schrijf conclusion en feedback in het Nederlands, gebaseerd op wat in de snippet is waargenomen.
- Geef alleen JSON terug: geen uitleg, geen markdown fences.`

const schemaExample = `{
  "conclusion": "Korte conclusie over de snippet",
  "feedback": "Belangrijkste aanbevelingen",
  "criteria_results": [
    {
      "id": "1.1.1",
      "result": "FAIL",
      "findings": [
        {
          "location": "<img src=\"logo.png\">",
          "observation": "Afbeelding zonder alt-attribuut",
          "problemDescription": "Het tekstalternatief ontbreekt",
          "impact": "Schermlezergebruikers missen de informatie",
          "advice": "Voeg een beschrijvend alt-attribuut toe"
        }
      ]
    },
    {"id": "1.2.1", "result": "NOT_APPLICABLE", "reason": "De snippet bevat geen audio of video."}
  ]
}`

// BuildSystemPrompt returns the fixed decision policy sent with every request.
func BuildSystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt lists every criterion to judge followed by the HTML fragment
// and the expected response shape.
func BuildUserPrompt(html string, refs []schema.CriterionRef) string {
	var sb strings.Builder

	sb.WriteString("Beoordeel de volgende WCAG 2.2 succescriteria (id: naam):\n")
	for _, r := range refs {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", r.ID, r.Name))
	}

	sb.WriteString("\nHTML SNIPPET OM TE ANALYSEREN:\n<snippet>\n")
	sb.WriteString(html)
	if !strings.HasSuffix(html, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("</snippet>\n")

	sb.WriteString("\nGeef het resultaat als JSON met deze structuur:\n")
	sb.WriteString(schemaExample)

	return sb.String()
}

// responseSchema is the structured-output contract for backends that
// support one. Unlike the validation schema it enumerates the result codes.
func responseSchema() *llm.Schema {
	codes := make([]string, 0, len(schema.Codes))
	for _, c := range schema.Codes {
		codes = append(codes, string(c))
	}
	str := func() *llm.Schema { return &llm.Schema{Type: llm.TypeString} }
	return &llm.Schema{
		Type:     llm.TypeObject,
		Required: []string{"conclusion", "feedback", "criteria_results"},
		Properties: map[string]*llm.Schema{
			"conclusion": str(),
			"feedback":   str(),
			"criteria_results": {
				Type: llm.TypeArray,
				Items: &llm.Schema{
					Type:     llm.TypeObject,
					Required: []string{"id", "result"},
					Properties: map[string]*llm.Schema{
						"id":     str(),
						"result": {Type: llm.TypeString, Enum: codes},
						"reason": str(),
						"findings": {
							Type: llm.TypeArray,
							Items: &llm.Schema{
								Type: llm.TypeObject,
								Properties: map[string]*llm.Schema{
									"location":           str(),
									"observation":        str(),
									"problemDescription": str(),
									"impact":             str(),
									"advice":             str(),
								},
							},
						},
					},
				},
			},
		},
	}
}
