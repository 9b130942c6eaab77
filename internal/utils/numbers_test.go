package utils

import "testing"

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"12,500", 12500},
		{"12500", 12500},
		{" 1,250,000 ", 1250000},
		{"٢٥٠", 250},
		{"12٬500", 12500},
		{"99.5", 99.5},
		{"٩٩٫٥", 99.5},
	}

	for _, tc := range cases {
		got, err := ParseDecimal(tc.in)
		if err != nil {
			t.Fatalf("ParseDecimal(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDecimal(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDecimalRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "12a"} {
		if _, err := ParseDecimal(in); err == nil {
			t.Fatalf("ParseDecimal(%q) should fail", in)
		}
	}
}

func TestParseInt(t *testing.T) {
	got, err := ParseInt("1,000")
	if err != nil {
		t.Fatalf("ParseInt failed: %v", err)
	}
	if got != 1000 {
		t.Fatalf("ParseInt(\"1,000\") = %d, want 1000", got)
	}

	if _, err := ParseInt("10.5"); err == nil {
		t.Fatalf("ParseInt should reject fractional values")
	}
}

func TestFoldArabicDigits(t *testing.T) {
	if got := FoldArabicDigits("سعر ١٢٣"); got != "سعر 123" {
		t.Fatalf("FoldArabicDigits = %q", got)
	}
	if got := FoldArabicDigits("۴۵"); got != "45" {
		t.Fatalf("FoldArabicDigits extended = %q", got)
	}
}
