package catalog

import "github.com/dshills/wcagaudit/internal/schema"

func perceivable() schema.Principle {
	return schema.Principle{
		Name:        "Waarneembaar",
		Description: "Alle gebruikers kunnen informatie en componenten waarnemen.",
		Criteria: []schema.Criterion{
			criterion("1.1.1", "Niet-tekstuele content", schema.LevelA, "CMS, FE, Content",
				"Alle niet-tekstuele content die aan de gebruiker wordt gepresenteerd, heeft een tekstalternatief dat een gelijkwaardig doel dient."),
			criterion("1.2.1", "Louter-geluid en louter-videobeeld (vooraf opgenomen)", schema.LevelA, "UX/UI, CMS, FE, Content",
				"Louter-geluid en louter-videobeeld content heeft een alternatief."),
			criterion("1.2.2", "Ondertitels voor doven en slechthorenden (vooraf opgenomen)", schema.LevelA, "Content",
				"Ondertitels worden geleverd voor alle vooraf opgenomen audiocontent."),
			criterion("1.2.3", "Audiodescriptie of media-alternatief (vooraf opgenomen)", schema.LevelA, "Content",
				"Alternatief voor op tijd gebaseerde media of audiodescriptie wordt geleverd."),
			criterion("1.2.4", "Ondertitels voor doven en slechthorenden (live)", schema.LevelAA, "Content",
				"Ondertitels worden geleverd voor alle live audiocontent."),
			criterion("1.2.5", "Audiodescriptie (vooraf opgenomen)", schema.LevelAA, "Content",
				"Audiodescriptie wordt geleverd voor alle vooraf opgenomen videocontent."),
			criterion("1.3.1", "Info en relaties", schema.LevelA, "UX/UI, FE, Content",
				"Informatie, structuur en relaties kunnen door software worden bepaald of zijn in tekst beschikbaar."),
			criterion("1.3.2", "Betekenisvolle volgorde", schema.LevelA, "FE",
				"Correcte leesvolgorde kan door software worden bepaald."),
			criterion("1.3.3", "Zintuiglijke eigenschappen", schema.LevelA, "UX/UI",
				"Instructies zijn niet louter afhankelijk van zintuiglijke eigenschappen."),
			criterion("1.3.4", "Weergavestand", schema.LevelAA, "UX/UI, FE",
				"Content beperkt de weergave en bediening niet tot een enkele weergavestand."),
			criterion("1.3.5", "Identificeer het doel van de input", schema.LevelAA, "UX/UI, FE",
				"Het doel van elk invoerveld kan door software worden bepaald."),
			criterion("1.4.1", "Gebruik van kleur", schema.LevelA, "UX/UI, Content",
				"Kleur wordt niet als enige visuele middel gebruikt."),
			criterion("1.4.2", "Geluidsbediening", schema.LevelA, "UX/UI, FE",
				"Audio die automatisch afspeelt kan worden gepauzeerd of gestopt."),
			criterion("1.4.3", "Contrast (minimum)", schema.LevelAA, "UX/UI",
				"Visuele weergave van tekst heeft een contrastverhouding van ten minste 4,5:1."),
			criterion("1.4.4", "Herschalen van tekst", schema.LevelAA, "UX/UI, FE",
				"Tekst kan tot 200% worden herschaald zonder verlies van content."),
			criterion("1.4.5", "Afbeeldingen van tekst", schema.LevelAA, "UX/UI, FE",
				"Gebruik tekst in plaats van afbeeldingen van tekst."),
			criterion("1.4.10", "Reflow", schema.LevelAA, "UX/UI, FE",
				"Content kan worden gepresenteerd zonder verlies van informatie bij 320px breedte."),
			criterion("1.4.11", "Contrast van niet-tekstuele content", schema.LevelAA, "UX/UI",
				"Visuele weergave van UI componenten en grafische objecten heeft contrast van 3:1."),
			criterion("1.4.12", "Tekstafstand", schema.LevelAA, "UX/UI, FE",
				"Geen verlies van content of functionaliteit bij aanpassen tekstafstand."),
			criterion("1.4.13", "Content bij hover of focus", schema.LevelAA, "UX/UI, FE",
				"Extra content bij hover of focus is beheersbaar."),
		},
	}
}
