package namegen

// Built-in Czech dungeon vocabulary. Stems in adjectives take the first word
// of an agreeingNouns entry as their ending, e.g. "Zaklet" + "á krypta".
var (
	adjectives = []string{
		"Zaklet", "Začarovan", "Čarovn", "Magick", "Proklet", "Čern", "Tajn",
		"Skryt", "Temn", "Černočern", "Hrůzn", "Děsiv", "Strašliv",
		"Hrůzostrašn", "Mrtvoln", "Mrtv", "Zapomenut", "Zapovězen", "Záhadn",
		"Ztracen", "Znesvěcen", "Zatracen", "Démonick", "Ďábelsk", "Gnómsk",
		"Vražedn", "Opuštěn",
	}

	agreeingNouns = []string{
		"á krypta", "á hrobka", "á kobka", "ý hrob", "á pyramida", "é vězení",
		"é cely", "é pohřebiště", "ý labyrint", "é bludiště", "é hnízdo",
		"é doupě", "á nora", "á sluj", "á jeskyně", "é komnaty", "é síně",
		"á jáma", "é tunely", "é sídlo", "á svatyně", "ý chrám", "ý pomník",
		"é útočiště", "ý úkryt", "á skrýš", "á základna", "ý trezor",
		"á pokladnice", "á mohyla", "é katakomby", "é stoky", "á citadela",
		"á pevnost", "ý hrad", "á tvrz", "á líheň", "á věž", "ý důl",
		"á šachta",
	}

	plainNouns = []string{
		"Krypta", "Hrobka", "Kobka", "Hrob", "Pyramida", "Pohřebiště",
		"Vězení", "Cely", "Labyrint", "Bludiště", "Hnízdo", "Doupě", "Nora",
		"Sluj", "Jeskyně", "Komnaty", "Síně", "Jáma", "Tunely", "Sídlo",
		"Svatyně", "Chrám", "Pomník", "Útočiště", "Úkryt", "Skrýš",
		"Základna", "Trezor", "Pokladnice", "Mohyla", "Katakomby", "Stoky",
		"Citadela", "Pevnost", "Hrad", "Tvrz", "Líheň", "Věž", "Důl",
		"Šachta",
	}

	qualifiers = []string{
		"hrůzy", "děsu", "smrti", "zatracení", "zapomnění", "šílenství",
		"nekromancie", "krále goblinů", "démonů", "přízraků", "nemrtvých",
		"draků", "slunce", "měsíce", "moří", "oceánů", "prázdnoty", "nicoty",
		"strachu", "plamene", "ohně", "země", "lesa", "temnoty", "zkázy",
		"pavouků", "elementů", "ghúlů", "vampýrů", "prokletých",
		"zatracených", "hvězd", "bezbožných", "padlých andělů",
	}
)
