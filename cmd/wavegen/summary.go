package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tidegen.dev/internal/waves"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFFF"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AFD7FF"))
	faintStyle = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#888888"))
)

func renderSummary(sum waves.Summary, seed, mode string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d waves", sum.Count)))
	b.WriteString(faintStyle.Render(fmt.Sprintf("  seed=%s mode=%s", seed, mode)))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("%-10s %10s %10s %10s %10s", "", "min", "mean", "max", "stddev")))
	for _, row := range []struct {
		name string
		st   waves.Stats
	}{
		{"steepness", sum.Steepness},
		{"length", sum.Wavelength},
		{"velocity", sum.Velocity},
	} {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-10s", row.name)))
		fmt.Fprintf(&b, " %10.4f %10.4f %10.4f %10.4f", row.st.Min, row.st.Mean, row.st.Max, row.st.StdDev)
	}
	return b.String()
}
