package catalog

import "github.com/dshills/wcagaudit/internal/schema"

func operable() schema.Principle {
	return schema.Principle{
		Name:        "Bedienbaar",
		Description: "Alle gebruikers kunnen componenten en navigatie bedienen.",
		Criteria: []schema.Criterion{
			criterion("2.1.1", "Toetsenbord", schema.LevelA, "FE",
				"Alle functionaliteit is bedienbaar via een toetsenbord."),
			criterion("2.1.2", "Geen toetsenbordval", schema.LevelA, "FE",
				"Geen toetsenbordval (keyboard trap)."),
			criterion("2.1.4", "Enkel teken sneltoetsen", schema.LevelA, "FE",
				"Sneltoetsen met enkel teken kunnen worden uitgezet of aangepast."),
			criterion("2.2.1", "Timing aanpasbaar", schema.LevelA, "UX/UI, FE, Content",
				"Tijdslimieten kunnen worden aangepast."),
			criterion("2.2.2", "Pauzeren, stoppen, verbergen", schema.LevelA, "UX/UI, FE",
				"Bewegende content kan worden gepauzeerd, gestopt of verborgen."),
			criterion("2.3.1", "Drie flitsen of beneden drempelwaarde", schema.LevelA, "UX/UI, FE",
				"Geen content die meer dan drie keer per seconde flitst."),
			criterion("2.4.1", "Blokken omzeilen", schema.LevelA, "UX/UI, FE",
				"Mechanisme beschikbaar om herhalende blokken te omzeilen."),
			criterion("2.4.2", "Paginatitel", schema.LevelA, "CMS, FE, Content",
				"Webpagina's hebben titels die het onderwerp of doel beschrijven."),
			criterion("2.4.3", "Focus volgorde", schema.LevelA, "FE",
				"Focusbare componenten krijgen focus in een betekenisvolle volgorde."),
			criterion("2.4.4", "Linkdoel (in context)", schema.LevelA, "UX/UI, CMS, Content",
				"Het doel van elke link kan worden bepaald uit de linktekst of context."),
			criterion("2.4.5", "Meerdere manieren", schema.LevelAA, "UX/UI, Content",
				"Meer dan één manier om een webpagina te vinden."),
			criterion("2.4.6", "Koppen en labels", schema.LevelAA, "UX/UI, FE, Content",
				"Koppen en labels beschrijven onderwerp of doel."),
			criterion("2.4.7", "Focus zichtbaar", schema.LevelAA, "UX/UI, FE",
				"De interface toont een zichtbare indicator van de toetsenbordfocus."),
			criterion("2.4.11", "Focus niet verborgen (minimum)", schema.LevelAA, "FE",
				"De focusindicator wordt niet volledig verborgen door andere content."),
			criterion("2.5.1", "Aanwijzergebaren", schema.LevelA, "UX/UI, FE",
				"Alternatieve bediening voor multipoint of path-based gebaren."),
			criterion("2.5.2", "Aanwijzerannulering", schema.LevelA, "FE",
				"Functionaliteit kan worden geannuleerd of ongedaan gemaakt bij aanwijzerbediening."),
			criterion("2.5.3", "Label in naam", schema.LevelA, "FE",
				"De toegankelijke naam bevat de zichtbare tekst van het label."),
			criterion("2.5.4", "Bewegingsactivering", schema.LevelA, "UX/UI, FE",
				"Functionaliteit via beweging kan ook via UI componenten worden bediend."),
			criterion("2.5.7", "Slepende bewegingen", schema.LevelAA, "UX/UI, FE",
				"Alternatief voor slepende bewegingen."),
			criterion("2.5.8", "Grootte van het aanwijsgebied (minimum)", schema.LevelAA, "UX/UI, FE",
				"Klikbaar gebied is minimaal 24x24 pixels."),
		},
	}
}
