package movie

import (
	"fmt"
	"strings"
)

// StudioTier is a coarse classification of a distributor.
type StudioTier string

const (
	TierMajor       StudioTier = "major"
	TierMidTier     StudioTier = "mid-tier"
	TierIndependent StudioTier = "independent"
	TierUnknown     StudioTier = "unknown"
)

// ParseStudioTier maps a config string to a StudioTier. It accepts the
// canonical forms plus common spellings ("mid", "indie").
func ParseStudioTier(value string) (StudioTier, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "major":
		return TierMajor, nil
	case "mid-tier", "mid_tier", "mid", "midtier":
		return TierMidTier, nil
	case "independent", "indie":
		return TierIndependent, nil
	case "unknown":
		return TierUnknown, nil
	default:
		return "", fmt.Errorf("studio tier: unsupported value %q", value)
	}
}
