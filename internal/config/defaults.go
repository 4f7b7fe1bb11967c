package config

const (
	defaultDataDir        = "~/.local/share/cinefuse"
	defaultScopeName      = "full"
	defaultScopeYearStart = 2010
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"

	defaultYearTolerance  = 1
	defaultFuzzyThreshold = 0.85
	defaultFuzzyMargin    = 0.05
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Matching: Matching{
			YearTolerance:  defaultYearTolerance,
			FuzzyThreshold: defaultFuzzyThreshold,
			FuzzyMargin:    defaultFuzzyMargin,
		},
		Scope: Scope{
			Name:      defaultScopeName,
			YearStart: defaultScopeYearStart,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
