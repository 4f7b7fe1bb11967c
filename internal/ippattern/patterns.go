package ippattern

import "regexp"

// franchiseEntry pairs a franchise name with the title patterns that
// assign membership and the installment subtitles that mark a later
// entry in the series even when the title carries no numeral.
type franchiseEntry struct {
	name         string
	patterns     []*regexp.Regexp
	installments []*regexp.Regexp
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, regexp.MustCompile(expr))
	}
	return out
}

// franchises is evaluated in declaration order; on ambiguous overlap
// the first-declared entry wins ("Avengers" resolves to Marvel, not any
// later superhero grouping).
var franchises = []franchiseEntry{
	{
		name:     "Avengers",
		patterns: compileAll(`\bavengers\b`),
		installments: compileAll(
			`\bage of ultron\b`,
			`\binfinity war\b`,
			`\bendgame\b`,
			`\bdoomsday\b`,
			`\bsecret wars\b`,
		),
	},
	{
		name:     "Spider-Man",
		patterns: compileAll(`\bspider man\b`, `\bspider verse\b`, `\bvenom\b`, `\bmorbius\b`, `\bkraven\b`, `\bmadame web\b`),
		installments: compileAll(
			`\bhomecoming\b`,
			`\bfar from home\b`,
			`\bno way home\b`,
			`\bbrand new day\b`,
			`\bacross the spider verse\b`,
			`\bbeyond the spider verse\b`,
			`\blet there be carnage\b`,
			`\bthe last dance\b`,
		),
	},
	{
		name:     "Marvel Cinematic Universe",
		patterns: compileAll(
			`\biron man\b`,
			`\bcaptain america\b`,
			`\bthor\b`,
			`\bguardians of the galaxy\b`,
			`\bant man\b`,
			`\bdoctor strange\b`,
			`\bblack panther\b`,
			`\bcaptain marvel\b`,
			`\bblack widow\b`,
			`\bshang chi\b`,
			`\beternals\b`,
			`\bdeadpool\b`,
			`\bwolverine\b`,
			`\bthe marvels\b`,
			`\bthunderbolts\b`,
			`\bfantastic four\b`,
			`\bincredible hulk\b`,
		),
		installments: compileAll(
			`\bthe dark world\b`,
			`\bthe winter soldier\b`,
			`\bcivil war\b`,
			`\bragnarok\b`,
			`\blove and thunder\b`,
			`\bwakanda forever\b`,
			`\bquantumania\b`,
			`\bmultiverse of madness\b`,
			`\bthe first avenger$`,
			`\bbrave new world\b`,
			`\bdeadpool and wolverine\b`,
			`\bthe wasp\b`,
		),
	},
	{
		name:     "DC",
		patterns: compileAll(
			`\bbatman\b`,
			`\bsuperman\b`,
			`\bman of steel\b`,
			`\bwonder woman\b`,
			`\baquaman\b`,
			`\bjustice league\b`,
			`\bsuicide squad\b`,
			`\bshazam\b`,
			`\bthe flash\b`,
			`\bblue beetle\b`,
			`\bblack adam\b`,
			`\bjoker\b`,
			`\bbirds of prey\b`,
			`\bdark knight\b`,
		),
		installments: compileAll(
			`\bdawn of justice\b`,
			`\bfury of the gods\b`,
			`\bthe lost kingdom\b`,
			`\bfolie a deux\b`,
			`\bdark knight rises\b`,
		),
	},
	{
		name:     "Star Wars",
		patterns: compileAll(`\bstar wars\b`, `\brogue one\b`, `\bforce awakens\b`, `\blast jedi\b`, `\brise of skywalker\b`, `\bsolo a star wars story\b`),
		installments: compileAll(
			`\bforce awakens\b`,
			`\blast jedi\b`,
			`\brise of skywalker\b`,
		),
	},
	{
		name:     "Wizarding World",
		patterns: compileAll(`\bharry potter\b`, `\bfantastic beasts\b`, `\bhogwarts\b`),
		installments: compileAll(
			`\bcrimes of grindelwald\b`,
			`\bsecrets of dumbledore\b`,
			`\bdeathly hallows\b`,
		),
	},
	{
		name:     "Fast & Furious",
		patterns: compileAll(`\bfast (?:and|x|five)\b`, `\bfurious\b`, `\bhobbs and shaw\b`, `\bf9\b`),
		installments: compileAll(
			`\bfast five\b`,
			`\bfurious [5-9]\b`,
			`\bfurious seven\b`,
			`\bfate of the furious\b`,
			`\bf9\b`,
			`\bfast x\b`,
			`\bhobbs and shaw\b`,
		),
	},
	{
		name:     "Jurassic Park",
		patterns: compileAll(`\bjurassic\b`),
		installments: compileAll(
			`\bjurassic world\b`,
			`\bfallen kingdom\b`,
			`\bdominion\b`,
			`\brebirth\b`,
		),
	},
	{
		name:     "Despicable Me",
		patterns: compileAll(`\bdespicable me\b`, `\bminions\b`),
		installments: compileAll(
			`\bdespicable me [2-9]\b`,
			`\bminions\b`,
			`\brise of gru\b`,
		),
	},
	{
		name:     "Transformers",
		patterns: compileAll(`\btransformers\b`, `\bbumblebee\b`),
		installments: compileAll(
			`\brevenge of the fallen\b`,
			`\bdark of the moon\b`,
			`\bage of extinction\b`,
			`\bthe last knight\b`,
			`\brise of the beasts\b`,
		),
	},
	{
		name:     "James Bond",
		patterns: compileAll(`\bjames bond\b`, `\bskyfall\b`, `\bspectre\b`, `\bno time to die\b`, `\bquantum of solace\b`, `\bcasino royale\b`),
		installments: compileAll(
			`\bskyfall\b`,
			`\bspectre\b`,
			`\bno time to die\b`,
			`\bquantum of solace\b`,
		),
	},
	{
		name:     "Mission: Impossible",
		patterns: compileAll(`\bmission impossible\b`),
		installments: compileAll(
			`\bghost protocol\b`,
			`\brogue nation\b`,
			`\bfallout\b`,
			`\bdead reckoning\b`,
			`\bfinal reckoning\b`,
		),
	},
	{
		name:     "Jumanji",
		patterns: compileAll(`\bjumanji\b`),
		installments: compileAll(
			`\bwelcome to the jungle\b`,
			`\bthe next level\b`,
		),
	},
	{
		name:     "Hunger Games",
		patterns: compileAll(`\bhunger games\b`),
		installments: compileAll(
			`\bcatching fire\b`,
			`\bmockingjay\b`,
			`\bballad of songbirds\b`,
		),
	},
	{
		name:     "John Wick",
		patterns: compileAll(`\bjohn wick\b`),
		installments: compileAll(
			`\bjohn wick chapter\b`,
			`\bparabellum\b`,
			`\bballerina\b`,
		),
	},
	{
		name:     "Sonic the Hedgehog",
		patterns: compileAll(`\bsonic the hedgehog\b`),
		installments: compileAll(
			`\bsonic the hedgehog [2-9]\b`,
		),
	},
	{
		name:     "Teenage Mutant Ninja Turtles",
		patterns: compileAll(`\bteenage mutant ninja turtles\b`, `\bninja turtles\b`),
		installments: compileAll(
			`\bout of the shadows\b`,
			`\bmutant mayhem\b`,
		),
	},
}

// sequelIndicators catch explicit numbering anywhere titles carry it:
// "Part II", "Chapter 3", "Vol. 2", a terminal roman numeral, or a
// short terminal arabic numeral. Four-digit endings are excluded so
// year-bearing titles ("Blade Runner 2049") stay untouched.
var sequelIndicators = compileAll(
	`\bpart (?:\d+|[ivxlc]+)\b`,
	`\bchapter (?:\d+|[ivxlc]+)\b`,
	`\bvol(?:ume)? \d+\b`,
	`\b(?:ii|iii|iv|v|vi|vii|viii|ix)$`,
	`\b\d{1,2}$`,
	`\breturns\b`,
	`\brevenge of\b`,
	`\bstrikes back\b`,
)

// remakeTitles are the live-action remake and adaptation properties
// tracked by the curated reference list.
var remakeTitles = compileAll(
	`\bbeauty and the beast\b`,
	`\baladdin\b`,
	`\bthe lion king\b`,
	`\bmufasa\b`,
	`\bmulan\b`,
	`\bdumbo\b`,
	`\bcinderella\b`,
	`\bthe jungle book\b`,
	`\balice in wonderland\b`,
	`\bmaleficent\b`,
	`\bchristopher robin\b`,
	`\blady and the tramp\b`,
	`\bpinocchio\b`,
	`\bpeter pan\b`,
	`\bsnow white\b`,
	`\blilo (?:and )?stitch\b`,
	`\b(?:the )?little mermaid\b`,
	`\bmoana\b`,
	`\bhow to train your dragon\b`,
	`\b101 dalmatians\b`,
)

// remakeIndicators are generic title words that flag a reboot or
// re-imagining of existing IP.
var remakeIndicators = compileAll(
	`\bremake\b`,
	`\breboot\b`,
	`\borigins\b`,
	`\bbegins\b`,
	`\brising\b`,
)
