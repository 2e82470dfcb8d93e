package settings

import (
	"fmt"
	"strings"
)

type ThemeVariable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ThemeVariables maps the five color tokens onto CSS custom properties.
func ThemeVariables(v View) []ThemeVariable {
	return []ThemeVariable{
		{Name: "--primary", Value: v.PrimaryColor},
		{Name: "--secondary", Value: v.SecondaryColor},
		{Name: "--accent", Value: v.AccentColor},
		{Name: "--background", Value: v.BackgroundColor},
		{Name: "--foreground", Value: v.ForegroundColor},
	}
}

// ThemeCSS renders the variables as a :root rule.
func ThemeCSS(v View) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, tv := range ThemeVariables(v) {
		fmt.Fprintf(&b, "  %s: %s;\n", tv.Name, tv.Value)
	}
	b.WriteString("}\n")
	return b.String()
}
