package render

import "github.com/dshills/wcagaudit/internal/schema"

// treatment is how one result is shown. Every renderer reads it from here so
// the five-way mapping stays identical across formats.
type treatment struct {
	Label    string // display label
	Class    string // CSS suffix: status-<Class>, card <Class>
	Markdown string // table cell in Markdown
	Default  string // explanation when the criterion has no reason
}

var treatments = map[schema.Result]treatment{
	schema.ResultPass: {
		Label:    schema.ResultPass.Label(),
		Class:    "pass",
		Markdown: "✔ " + schema.ResultPass.Label(),
	},
	schema.ResultFail: {
		Label:    schema.ResultFail.Label(),
		Class:    "fail",
		Markdown: "**✘ " + schema.ResultFail.Label() + "**",
	},
	schema.ResultNotApplicable: {
		Label:    schema.ResultNotApplicable.Label(),
		Class:    "na",
		Markdown: "– " + schema.ResultNotApplicable.Label(),
		Default:  "Deze richtlijn is niet relevant voor de huidige content.",
	},
	schema.ResultOutOfScope: {
		Label:    schema.ResultOutOfScope.Label(),
		Class:    "oos",
		Markdown: "*" + schema.ResultOutOfScope.Label() + "*",
		Default:  "Dit onderdeel valt buiten de scope van dit onderzoek.",
	},
	schema.ResultNotChecked: {
		Label:    schema.ResultNotChecked.Label(),
		Class:    "nc",
		Markdown: "? " + schema.ResultNotChecked.Label(),
		Default:  "Deze richtlijn is op dit moment nog niet onderzocht.",
	},
}

// treat returns the treatment for r. Unknown results are shown as not checked.
func treat(r schema.Result) treatment {
	if t, ok := treatments[r]; ok {
		return t
	}
	return treatments[schema.ResultNotChecked]
}

// Fixed texts shared by the renderers.
const (
	unknown             = "Onbekend"
	defaultVersion      = "1.0"
	defaultSample       = "Aangeleverde HTML snippet"
	findingsPlaceholder = "Hier komen de bevindingen te staan, eventueel voorzien van screenshots met url's."
	noFailuresText      = "Geen criteria die niet voldoen gevonden binnen dit principe."
	introText           = "Dit rapport bevat de resultaten van een automatische validatie op basis van de aangeleverde HTML-code conform WCAG 2.2 niveau AA."
	quoteText           = "Door te voldoen aan WCAG-richtlijnen, kan de digitale wereld voor iedereen toegankelijk en inclusief worden gemaakt."
	disclaimerText      = "We hebben ons best gedaan om dit onderzoek zo nauwkeurig mogelijk te doen en dit document zo volledig mogelijk op te stellen. Ondanks onze zorgvuldigheid kunnen er vanwege de complexiteit van WCAG interpretatieverschillen voorkomen. Dit rapport is gegenereerd door een AI-assistent en dient gevalideerd te worden door een menselijke expert."
	levelsText          = "De richtlijnen zijn opgedeeld in 3 niveaus: A, AA en AAA. Niveau A heeft de minste impact, niveau AAA de meeste. Om een niveau te halen, moet er aan alle richtlijnen van dat niveau worden voldaan."
)
