package utils

import "testing"

func TestToEasternArabicNumerals(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0123456789", "٠١٢٣٤٥٦٧٨٩"},
		{"2025/11/03", "٢٠٢٥/١١/٠٣"},
		{"10:00 ص", "١٠:٠٠ ص"},
		{"no digits", "no digits"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ToEasternArabicNumerals(tt.in); got != tt.want {
				t.Errorf("ToEasternArabicNumerals(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDisplayRTL(t *testing.T) {
	// Pure left-to-right text passes through unchanged.
	if got := DisplayRTL("Main Hall"); got != "Main Hall" {
		t.Errorf("DisplayRTL(LTR) = %q", got)
	}

	// A pure right-to-left run comes back in visual (reversed) order.
	got := DisplayRTL("سلام")
	want := "مالس"
	if got != want {
		t.Errorf("DisplayRTL(RTL) = %q, want %q", got, want)
	}

	// Reordering twice restores the logical order for symmetric content.
	if round := DisplayRTL(DisplayRTL("سلام")); round != "سلام" {
		t.Errorf("double reorder = %q", round)
	}
}

func TestShapeCell(t *testing.T) {
	if got := ShapeCell("123"); got != "٣٢١" && got != "١٢٣" {
		// Digit runs keep left-to-right visual order inside an RTL context;
		// either way the digits must be Eastern Arabic.
		t.Errorf("ShapeCell(123) = %q", got)
	}
}
