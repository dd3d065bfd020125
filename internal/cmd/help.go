package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderExportHelp renders the help text for the export command with lipgloss styling
func renderExportHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginTop(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))

	commandStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14"))

	commentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Italic(true)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Examples"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Export all configured bodies"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("facestl export job.yaml"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Preview the classification without writing files"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("facestl export job.yaml --dry-run"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Override output directory and format"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("facestl export job.yaml -o /tmp/stl --format ascii"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Files written per body"))
	b.WriteString("\n")

	groups := []struct {
		file string
		desc string
	}{
		{"<label>_Inlet.stl", "faces matching inlet_color"},
		{"<label>_Outlet.stl", "faces matching outlet_color"},
		{"<label>_Body.stl", "all remaining faces"},
	}

	maxWidth := 0
	for _, g := range groups {
		if len(g.file) > maxWidth {
			maxWidth = len(g.file)
		}
	}

	for _, g := range groups {
		padding := strings.Repeat(" ", maxWidth-len(g.file)+2)
		b.WriteString("  " + flagStyle.Render(g.file) + padding + commentStyle.Render(g.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(commentStyle.Render("  Empty groups are skipped; start from a config with: facestl init"))
	b.WriteString("\n")

	return b.String()
}
