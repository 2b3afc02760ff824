package chartkit

import (
	"errors"
	"testing"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

func TestStyleResolverExactMatch(t *testing.T) {
	table := map[Category]StyleEncoding{
		"low":      {Color: HexColor("#10B981"), BorderWidth: 1, Size: 18},
		"medium":   {Color: HexColor("#F59E0B"), BorderWidth: 2, Size: 18},
		"high":     {Color: HexColor("#EF4444"), BorderWidth: 3, Size: 18},
		"critical": {Color: HexColor("#7C2D12"), BorderWidth: 4, Size: 18},
	}
	resolver := NewStyleResolver("severity", table)

	for category, want := range table {
		got, err := resolver.Resolve(category)
		if err != nil {
			t.Fatalf("Resolve(%q) returned error: %v", category, err)
		}
		if got != want {
			t.Errorf("Resolve(%q) = %+v, want %+v", category, got, want)
		}
	}
}

func TestStyleResolverDeterministic(t *testing.T) {
	resolver := NewStyleResolver("severity", map[Category]StyleEncoding{
		"critical": {Color: HexColor("#7C2D12"), Size: 18},
	})

	first, err := resolver.Resolve("critical")
	if err != nil {
		t.Fatalf("first Resolve failed: %v", err)
	}
	second, err := resolver.Resolve("critical")
	if err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}
	if first != second {
		t.Errorf("two resolutions of the same category differ: %+v vs %+v", first, second)
	}
}

func TestStyleResolverUnknownCategory(t *testing.T) {
	resolver := NewStyleResolver("severity", map[Category]StyleEncoding{
		"low": {Color: drawing.ColorGreen},
	})

	_, err := resolver.Resolve("catastrophic")
	if err == nil {
		t.Fatal("expected error for unmapped category, got nil")
	}
	var unknown *UnknownCategoryError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownCategoryError, got %T: %v", err, err)
	}
	if unknown.Resolver != "severity" {
		t.Errorf("error names resolver %q, want %q", unknown.Resolver, "severity")
	}
	if unknown.Category != "catastrophic" {
		t.Errorf("error names category %q, want %q", unknown.Category, "catastrophic")
	}
}

func TestStyleResolverCopiesTable(t *testing.T) {
	table := map[Category]StyleEncoding{
		"low": {Size: 10},
	}
	resolver := NewStyleResolver("severity", table)

	// mutate the caller's map after construction
	table["low"] = StyleEncoding{Size: 99}

	got, err := resolver.Resolve("low")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.Size != 10 {
		t.Errorf("resolver observed caller-side mutation: Size = %v, want 10", got.Size)
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		hex  string
		want drawing.Color
	}{
		{"#10B981", drawing.Color{R: 0x10, G: 0xB9, B: 0x81, A: 255}},
		{"1FB8CD", drawing.Color{R: 0x1F, G: 0xB8, B: 0xCD, A: 255}},
	}
	for _, tt := range tests {
		if got := HexColor(tt.hex); got != tt.want {
			t.Errorf("HexColor(%q) = %+v, want %+v", tt.hex, got, tt.want)
		}
	}
}
