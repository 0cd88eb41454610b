package palette

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var swatchLabels = [3]string{"base", "complementary-1", "complementary-2"}

// Swatches renders the palette as colored terminal blocks, one line per color.
func Swatches(p Palette) string {
	var b strings.Builder
	hexes := p.Hex()
	for i, hue := range p.Hues() {
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(hexes[i])).
			Render("      ")
		label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%-16s", swatchLabels[i]))
		fmt.Fprintf(&b, "%s %s hue=%-4d %s\n", block, label, hue, hexes[i])
	}
	return b.String()
}
