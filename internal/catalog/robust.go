package catalog

import "github.com/dshills/wcagaudit/internal/schema"

func robust() schema.Principle {
	return schema.Principle{
		Name:        "Robuust",
		Description: "Content is zo opgebouwd dat deze door hulptechnologie verwerkt kan worden.",
		Criteria: []schema.Criterion{
			criterion("4.1.1", "Parsen", schema.LevelA, "FE, BE",
				"Deze richtlijn is verwijderd in WCAG 2.2."),
			criterion("4.1.2", "Naam, rol, waarde", schema.LevelA, "FE, BE",
				"Naam, rol en waarde kunnen door software worden bepaald."),
			criterion("4.1.3", "Statusberichten", schema.LevelAA, "UX/UI, FE",
				"Statusberichten kunnen door hulptechnologie worden bepaald zonder focus te verplaatsen."),
		},
	}
}
