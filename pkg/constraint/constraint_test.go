package constraint

import "testing"

func TestConstraintString(t *testing.T) {
	tests := []struct {
		c    Constraint
		want string
	}{
		{Dimension("avatar", Width, 50), "avatar.width == 50"},
		{Ratio("cover", 1.5), "cover.width == cover.height * 1.5"},
		{eq("title", Leading, "avatar", Trailing, 10), "title.leading == avatar.trailing + 10"},
		{Constraint{First: "a", FirstAttr: Top, Second: Superview, SecondAttr: Top, Multiplier: 1, Priority: High}, "a.top == superview.top @750"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestConstraintModes(t *testing.T) {
	tests := []struct {
		c    Constraint
		want Mode
	}{
		{Dimension("avatar", Height, 10), ModeDimension},
		{Ratio("cover", 2), ModeRatio},
		{eq("a", Top, Superview, Top, 0).Tagged(ModeSubviewsLayout), ModeSubviewsLayout},
		{eq("a", Top, Superview, Top, 0), ModeUnknown},
	}
	for _, tt := range tests {
		if got := tt.c.Mode(); got != tt.want {
			t.Errorf("Mode() of %q = %v, want %v", tt.c.Identifier, got, tt.want)
		}
	}
	if got := Dimension("avatar", Width, 50).Identifier; got != "LG_Dimension: avatar.width == 50" {
		t.Errorf("Identifier = %q", got)
	}
}

func TestConstraintInvolves(t *testing.T) {
	c := eq("title", Leading, "avatar", Trailing, 10)
	if !c.Involves("title") || !c.Involves("avatar") || c.Involves(Superview) {
		t.Errorf("Involves gave wrong answers for %v", c)
	}
}
