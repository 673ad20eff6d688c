package paint

import "testing"

func TestTextStyleWithColorReturnsCopy(t *testing.T) {
	base := TextStyle{FontSize: 14, Color: ColorBlack}
	styled := base.WithColor(ColorRed)

	if styled.Color != ColorRed {
		t.Errorf("styled color = %v, want red", styled.Color.Hex())
	}
	if base.Color != ColorBlack {
		t.Errorf("base color mutated to %v", base.Color.Hex())
	}
	if styled.FontSize != 14 {
		t.Errorf("FontSize = %v, want 14 (carried over)", styled.FontSize)
	}
}

func TestTextStyleChaining(t *testing.T) {
	s := TextStyle{}.
		WithFamily("Go").
		WithSize(18).
		WithWeight(FontWeightBold).
		WithItalic()

	if s.FontFamily != "Go" || s.FontSize != 18 || s.FontWeight != FontWeightBold || s.FontStyle != FontStyleItalic {
		t.Errorf("chained style = %+v", s)
	}
}

func TestTextStyleMerge(t *testing.T) {
	base := TextStyle{Color: ColorBlack, FontFamily: "Go", FontSize: 16, FontWeight: FontWeightNormal}
	partial := TextStyle{FontSize: 24, FontWeight: FontWeightBold}

	merged := partial.Merge(base)
	if merged.FontSize != 24 {
		t.Errorf("FontSize = %v, want 24 (set field wins)", merged.FontSize)
	}
	if merged.FontWeight != FontWeightBold {
		t.Errorf("FontWeight = %v, want bold (set field wins)", merged.FontWeight)
	}
	if merged.FontFamily != "Go" {
		t.Errorf("FontFamily = %q, want %q (inherited)", merged.FontFamily, "Go")
	}
	if merged.Color != ColorBlack {
		t.Errorf("Color = %v, want black (inherited)", merged.Color.Hex())
	}
}

func TestFontWeightString(t *testing.T) {
	tests := []struct {
		weight FontWeight
		want   string
	}{
		{FontWeightThin, "thin"},
		{FontWeightNormal, "normal"},
		{FontWeightSemibold, "semibold"},
		{FontWeightBold, "bold"},
		{FontWeightBlack, "black"},
		{FontWeight(450), "FontWeight(450)"},
	}
	for _, tt := range tests {
		if got := tt.weight.String(); got != tt.want {
			t.Errorf("FontWeight(%d).String() = %q, want %q", tt.weight, got, tt.want)
		}
	}
}

func TestFontWeightIsBold(t *testing.T) {
	if FontWeightNormal.IsBold() {
		t.Error("normal should not be bold")
	}
	if !FontWeightSemibold.IsBold() {
		t.Error("semibold should be bold")
	}
	if !FontWeightBlack.IsBold() {
		t.Error("black should be bold")
	}
}
