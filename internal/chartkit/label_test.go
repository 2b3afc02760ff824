package chartkit

import (
	"testing"
	"unicode/utf8"
)

func TestAbbreviatorShorten(t *testing.T) {
	abbrev := NewAbbreviator(15, map[string]string{
		"Inference Attacks on FL":         "FL Inference Att",
		"Basic Brain-Computer Interfaces": "Basic BCIs",
	})

	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"within limit passes through", "Quantum Threat", "Quantum Threat"},
		{"exactly at limit passes through", "123456789012345", "123456789012345"},
		{"table entry wins over truncation", "Inference Attacks on FL", "FL Inference Att"},
		{"second table entry", "Basic Brain-Computer Interfaces", "Basic BCIs"},
		{"no entry hard-truncates", "Pervasive Neural Monitoring", "Pervasive Neura"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := abbrev.Shorten(tt.label); got != tt.want {
				t.Errorf("Shorten(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestAbbreviatorNilTable(t *testing.T) {
	abbrev := NewAbbreviator(5, nil)
	if got := abbrev.Shorten("abcdefgh"); got != "abcde" {
		t.Errorf("Shorten with nil table = %q, want %q", got, "abcde")
	}
}

func TestAbbreviatorMultibyteLabels(t *testing.T) {
	abbrev := NewAbbreviator(10, nil)

	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"multibyte within character limit passes through", "データ保護", "データ保護"},
		{"truncation counts characters not bytes", "Données privées Europe", "Données pr"},
		{"cjk label truncates on rune boundary", "プライバシー保護フレームワーク", "プライバシー保護フレ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := abbrev.Shorten(tt.label)
			if got != tt.want {
				t.Errorf("Shorten(%q) = %q, want %q", tt.label, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Shorten(%q) produced invalid UTF-8: %q", tt.label, got)
			}
		})
	}
}

func TestAlternatingOffsets(t *testing.T) {
	offsets := AlternatingOffsets{Lo: 1.5, Hi: 1.8}

	for i := 0; i < 8; i++ {
		got := offsets.At(i)
		want := 1.5
		if i%2 == 1 {
			want = 1.8
		}
		if got != want {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestAlternatingOffsetsStartHigh(t *testing.T) {
	offsets := AlternatingOffsets{Lo: 0.5, Hi: 2.5, StartHigh: true}

	if got := offsets.At(0); got != 2.5 {
		t.Errorf("At(0) with StartHigh = %v, want 2.5", got)
	}
	if got := offsets.At(1); got != 0.5 {
		t.Errorf("At(1) with StartHigh = %v, want 0.5", got)
	}
}

func TestAlternatingOffsetsAnchor(t *testing.T) {
	offsets := AlternatingOffsets{Lo: 1.5, Hi: 1.8}

	if !offsets.Above(1.8) {
		t.Error("offset above midpoint should anchor text above")
	}
	if offsets.Above(1.5) {
		t.Error("offset below midpoint should anchor text below")
	}
}
