package logging

import "testing"

func TestVerbosity_Accepts(t *testing.T) {
	tests := []struct {
		name string
		v    Verbosity
		s    Severity
		want bool
	}{
		{"all accepts debug", All, Debug, true},
		{"all accepts fatal", All, Fatal, true},
		{"off rejects fatal", Off, Fatal, false},
		{"off rejects debug", Off, Debug, false},
		{"threshold equal", V(Warning), Warning, true},
		{"threshold above", V(Warning), Error, true},
		{"threshold below", V(Warning), Info, false},
		{"fatal threshold", V(Fatal), Critical, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Accepts(tt.s); got != tt.want {
				t.Errorf("%v.Accepts(%v) = %v, want %v", tt.v, tt.s, got, tt.want)
			}
		})
	}
}

func TestSeverity_Ordering(t *testing.T) {
	order := []Severity{Debug, Info, Warning, Error, Critical, Fatal}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("%v should order below %v", order[i-1], order[i])
		}
	}
}

func TestParseSeverity(t *testing.T) {
	if ParseSeverity("WARN") != Warning {
		t.Error(`ParseSeverity("WARN") != Warning`)
	}
	if ParseSeverity("informative") != Info {
		t.Error(`ParseSeverity("informative") != Info`)
	}
	if ParseSeverity("nonsense") != Info {
		t.Error("unknown severity should default to Info")
	}
}

func TestParseVerbosity(t *testing.T) {
	if ParseVerbosity("") != All {
		t.Error("empty verbosity should parse as All")
	}
	if ParseVerbosity("off") != Off {
		t.Error(`ParseVerbosity("off") != Off`)
	}
	if ParseVerbosity("error") != V(Error) {
		t.Error(`ParseVerbosity("error") != V(Error)`)
	}
}
