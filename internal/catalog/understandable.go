package catalog

import "github.com/dshills/wcagaudit/internal/schema"

func understandable() schema.Principle {
	return schema.Principle{
		Name:        "Begrijpelijk",
		Description: "Alle gebruikers kunnen informatie en bediening van de interface begrijpen.",
		Criteria: []schema.Criterion{
			criterion("3.1.1", "Taal van de pagina", schema.LevelA, "CMS, FE",
				"De standaardtaal van de pagina kan door software worden bepaald."),
			criterion("3.1.2", "Taal van onderdelen", schema.LevelAA, "FE",
				"Taal van passages kan door software worden bepaald."),
			criterion("3.2.1", "Bij focus", schema.LevelA, "FE",
				"Geen contextwijziging bij focus."),
			criterion("3.2.2", "Bij input", schema.LevelA, "UX/UI, FE",
				"Geen contextwijziging bij wijzigen instelling user interface component."),
			criterion("3.2.3", "Consistente navigatie", schema.LevelAA, "UX/UI, CMS",
				"Navigatiemechanismen die worden herhaald, staan in dezelfde volgorde."),
			criterion("3.2.4", "Consistente identificatie", schema.LevelAA, "UX/UI, FE",
				"Componenten met dezelfde functionaliteit worden consistent geïdentificeerd."),
			criterion("3.2.6", "Consistente hulp", schema.LevelA, "UX/UI, Content",
				"Hulpmechanismen staan op dezelfde relatieve positie."),
			criterion("3.3.1", "Foutidentificatie", schema.LevelA, "UX/UI, FE",
				"Invoerfouten worden geïdentificeerd en beschreven."),
			criterion("3.3.2", "Labels of instructies", schema.LevelA, "UX/UI, CMS, FE, Content",
				"Labels of instructies worden geleverd wanneer content invoer vereist."),
			criterion("3.3.3", "Foutsuggestie", schema.LevelAA, "UX/UI, FE",
				"Indien een invoerfout wordt gedetecteerd, worden suggesties voor verbetering gegeven."),
			criterion("3.3.4", "Foutpreventie (wettelijk, financieel, gegevens)", schema.LevelAA, "UX/UI, FE, BE",
				"Voor webpagina's die juridische verplichtingen of financiële transacties aangaan, zijn er mechanismen om fouten te voorkomen."),
			criterion("3.3.7", "Overbodige invoer", schema.LevelA, "UX/UI, FE, BE",
				"Eerder ingevoerde informatie hoeft niet opnieuw te worden ingevoerd."),
			criterion("3.3.8", "Toegankelijke authenticatie", schema.LevelAA, "UX/UI, FE, BE",
				"Cognitieve functietests zijn niet vereist voor authenticatie of er is een alternatief."),
		},
	}
}
