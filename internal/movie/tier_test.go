package movie

import "testing"

func TestParseStudioTier(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    StudioTier
		wantErr bool
	}{
		{name: "canonical major", value: "major", want: TierMajor},
		{name: "canonical mid-tier", value: "mid-tier", want: TierMidTier},
		{name: "mid spelling", value: "mid", want: TierMidTier},
		{name: "underscore spelling", value: "mid_tier", want: TierMidTier},
		{name: "indie spelling", value: "indie", want: TierIndependent},
		{name: "unknown", value: "unknown", want: TierUnknown},
		{name: "case and whitespace", value: "  Major ", want: TierMajor},
		{name: "unsupported value", value: "blockbuster", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStudioTier(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStudioTier(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseStudioTier(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
