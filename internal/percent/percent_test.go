package percent

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"comma_decimal_with_suffix", "12,5%", 12.5},
		{"plain_integer", "10%", 10},
		{"no_suffix", "7.25", 7.25},
		{"comma_decimal_no_suffix", "3,5", 3.5},
		{"negative", "-3,2%", -3.2},
		{"empty", "", 0},
		{"only_suffix", "%", 0},
		{"garbage", "abc", 0},
		{"whitespace", "  8,0% ", 8},
		{"zero", "0%", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in)
			if got != tt.want {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// Geçersiz girdi asla hata üretmez; sözleşme gereği 0 döner.
func TestParse_InvalidInputReturnsZero(t *testing.T) {
	inputs := []string{"%%", "--5", "1,2,3", "١٢"}
	for _, in := range inputs {
		if got := Parse(in); got != 0 {
			t.Fatalf("Parse(%q) = %v, want 0", in, got)
		}
	}
}

// ParseFloat kabul eder ama sonuc sonlu olmali: NaN/Inf 0 sayilir.
func TestParse_NonFiniteSpellingsReturnZero(t *testing.T) {
	inputs := []string{"NaN", "nan", "nan%", "NaN%", "Inf", "-Inf", "+inf", "Infinity", "infinity%"}
	for _, in := range inputs {
		if got := Parse(in); got != 0 {
			t.Fatalf("Parse(%q) = %v, want 0", in, got)
		}
	}
}
