package naming

import "testing"

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Primary Button", "primary-button"},
		{"  Card  ", "card"},
		{"Icon.Close", "icon-close"},
		{"Size=Large, State=Hover", "size-large-state-hover"},
		{"foreground/neutral", "foreground-neutral"},
		{"spacing/0.5", "spacing-0-5"},
		{"__weird__--name__", "weird-name"},
		{"Ünïcode", "ünïcode"},
		{"颜色/主要", "颜色-主要"},
		{"größe/a", "größe-a"},
		{"grße/a", "grße-a"},
		{"🎨 / ✨", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToKebabCase(tt.input); got != tt.want {
				t.Errorf("ToKebabCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCSSVariable(t *testing.T) {
	if got := CSSVariable("Colors/Brand Primary"); got != "colors-brand-primary" {
		t.Errorf("CSSVariable() = %q, want %q", got, "colors-brand-primary")
	}
}

func TestCSSVariableOr(t *testing.T) {
	tests := []struct {
		name, id string
		want     string
	}{
		{"color/primary", "VariableID:1:2", "color-primary"},
		{"颜色/主要", "VariableID:1:2", "颜色-主要"},
		{"🎨", "VariableID:12:3", "variableid-12-3"},
		{"//", "S:ab12", "s-ab12"},
		{"", "", "unnamed"},
	}

	for _, tt := range tests {
		if got := CSSVariableOr(tt.name, tt.id); got != tt.want {
			t.Errorf("CSSVariableOr(%q, %q) = %q, want %q", tt.name, tt.id, got, tt.want)
		}
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		keepDots bool
		want     string
	}{
		{"my profile page", false, "MyProfilePage"},
		{"icon.close", true, "Icon.Close"},
		{"icon.close", false, "IconClose"},
		{"Icon/Save", true, "IconSave"},
		{".leading..dots.", true, "Leading.Dots"},
		{"2 columns", false, "E2Columns"},
		{"---", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToPascalCase(tt.input, tt.keepDots); got != tt.want {
				t.Errorf("ToPascalCase(%q, %v) = %q, want %q", tt.input, tt.keepDots, got, tt.want)
			}
		})
	}
}
