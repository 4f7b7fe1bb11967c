package studio

import "cinefuse/internal/movie"

// studioEntry maps a canonical studio to its tier and the subsidiary or
// alternate labels that appear in distributor strings.
type studioEntry struct {
	canonical string
	tier      movie.StudioTier
	aliases   []string
}

// defaultStudios is the curated alias table. Specialty labels owned by
// majors (Searchlight, Focus, Sony Pictures Classics) are listed as
// mid-tier entries; longest-alias precedence keeps them from being
// swallowed by the parent fragment.
var defaultStudios = []studioEntry{
	{
		canonical: "Walt Disney Studios",
		tier:      movie.TierMajor,
		aliases: []string{
			"walt disney studios motion pictures",
			"walt disney pictures",
			"buena vista",
			"disney",
			"marvel studios",
			"lucasfilm",
			"pixar",
			"20th century studios",
			"twentieth century fox",
			"20th century fox",
			"fox",
		},
	},
	{
		canonical: "Warner Bros.",
		tier:      movie.TierMajor,
		aliases: []string{
			"warner bros",
			"warner brothers",
			"new line cinema",
			"new line",
			"dc films",
		},
	},
	{
		canonical: "Universal Pictures",
		tier:      movie.TierMajor,
		aliases: []string{
			"universal pictures",
			"universal",
			"illumination",
			"dreamworks",
		},
	},
	{
		canonical: "Sony Pictures",
		tier:      movie.TierMajor,
		aliases: []string{
			"sony pictures entertainment",
			"sony pictures releasing",
			"sony",
			"columbia pictures",
			"columbia",
			"tristar",
			"screen gems",
		},
	},
	{
		canonical: "Paramount Pictures",
		tier:      movie.TierMajor,
		aliases: []string{
			"paramount pictures",
			"paramount",
		},
	},
	{
		canonical: "Lionsgate",
		tier:      movie.TierMidTier,
		aliases: []string{
			"lionsgate",
			"lions gate",
			"summit entertainment",
		},
	},
	{
		canonical: "Metro-Goldwyn-Mayer",
		tier:      movie.TierMidTier,
		aliases: []string{
			"metro-goldwyn-mayer",
			"mgm",
			"united artists",
		},
	},
	{
		canonical: "Searchlight Pictures",
		tier:      movie.TierMidTier,
		aliases: []string{
			"fox searchlight",
			"searchlight pictures",
			"searchlight",
		},
	},
	{
		canonical: "Focus Features",
		tier:      movie.TierMidTier,
		aliases: []string{
			"focus features",
		},
	},
	{
		canonical: "Sony Pictures Classics",
		tier:      movie.TierMidTier,
		aliases: []string{
			"sony pictures classics",
		},
	},
	{
		canonical: "STX Entertainment",
		tier:      movie.TierMidTier,
		aliases: []string{
			"stx entertainment",
			"stx films",
		},
	},
	{
		canonical: "Amazon MGM Studios",
		tier:      movie.TierMidTier,
		aliases: []string{
			"amazon mgm",
			"amazon studios",
		},
	},
	{
		canonical: "A24",
		tier:      movie.TierIndependent,
		aliases: []string{
			"a24",
		},
	},
	{
		canonical: "Neon",
		tier:      movie.TierIndependent,
		aliases: []string{
			"neon",
		},
	},
	{
		canonical: "IFC Films",
		tier:      movie.TierIndependent,
		aliases: []string{
			"ifc films",
			"ifc midnight",
		},
	},
	{
		canonical: "Magnolia Pictures",
		tier:      movie.TierIndependent,
		aliases: []string{
			"magnolia pictures",
			"magnolia",
		},
	},
	{
		canonical: "Bleecker Street",
		tier:      movie.TierIndependent,
		aliases: []string{
			"bleecker street",
		},
	},
	{
		canonical: "Roadside Attractions",
		tier:      movie.TierIndependent,
		aliases: []string{
			"roadside attractions",
		},
	},
	{
		canonical: "Annapurna Pictures",
		tier:      movie.TierIndependent,
		aliases: []string{
			"annapurna",
		},
	},
}
