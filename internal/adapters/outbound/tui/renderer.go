package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/designlint/designlint/internal/domain"
	"github.com/designlint/designlint/internal/domain/fix"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warn    = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lipgloss.Color("#A3E635"), // lime
		"C":  warn,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	critTagStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warn).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	kindStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders the audit result for terminal display.
func RenderReport(report *domain.CoverageReport) string {
	var b strings.Builder

	grade := domain.GradeFor(report.Summary.OverallScore)
	title := headerStyle.Render("designlint")
	subtitle := dimStyle.Render("Design System Compliance · " + report.Summary.AnalyzedRootName)
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%d / 100", report.Summary.OverallScore))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	b.WriteString("  " + titleStyle.Render("Coverage") + "\n")
	b.WriteString(coverageLine("components", report.Summary.ComponentCoverage))
	b.WriteString(coverageLine("tokens", report.Summary.TokenCoverage))
	b.WriteString(coverageLine("styles", report.Summary.StyleCoverage))
	b.WriteString(fmt.Sprintf("  %s %d/%d layers compliant\n",
		dimStyle.Render("total"), report.Summary.CompliantLayers, report.Summary.TotalLayers))
	b.WriteString("\n")

	if len(report.Details.ByKind) > 0 {
		b.WriteString("  " + titleStyle.Render("By kind") + "\n")
		for _, kind := range sortedKinds(report.Details.ByKind) {
			stat := report.Details.ByKind[kind]
			b.WriteString(fmt.Sprintf("  %s %s %d%%  (%d/%d)\n",
				kindStyle.Render(padKind(kind)), bar(stat.Percentage),
				stat.Percentage, stat.Compliant, stat.Total))
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + separatorLine + "\n\n")

	if len(report.Details.NonCompliant) == 0 {
		b.WriteString("  " + passStyle.Render("All layers compliant.") + "\n")
		return b.String()
	}

	b.WriteString("  " + titleStyle.Render(fmt.Sprintf("Non-compliant layers (%d)", len(report.Details.NonCompliant))) + "\n\n")
	for _, layer := range report.Details.NonCompliant {
		renderLayer(&b, layer)
	}
	return b.String()
}

func renderLayer(b *strings.Builder, layer domain.LayerReport) {
	location := layer.Name
	if len(layer.Path) > 0 {
		location = strings.Join(layer.Path, " / ") + " / " + layer.Name
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", kindStyle.Render(string(layer.Kind)), dimStyle.Render(location)))
	for _, issue := range layer.Issues {
		if !issue.Blocking() {
			continue
		}
		b.WriteString(fmt.Sprintf("    %s %s\n", severityTag(issue.Severity), issue.Message))
	}
	b.WriteString("\n")
}

// RenderCandidates renders bulk-fix groupings for terminal display.
func RenderCandidates(c fix.Candidates) string {
	var b strings.Builder

	if len(c.Colors) == 0 && len(c.Spacing) == 0 && len(c.Effects) == 0 {
		return "  " + passStyle.Render("Nothing to fix: every value is bound or styled.") + "\n"
	}

	if len(c.Colors) > 0 {
		b.WriteString("  " + titleStyle.Render("Colors") + "\n")
		for _, cand := range c.Colors {
			b.WriteString(fmt.Sprintf("    #%s → %s  (%d occurrences)\n",
				cand.Color.Hex(), cand.VariableName, len(cand.Occurrences)))
		}
		b.WriteString("\n")
	}
	if len(c.Spacing) > 0 {
		b.WriteString("  " + titleStyle.Render("Spacing and radius") + "\n")
		for _, cand := range c.Spacing {
			b.WriteString(fmt.Sprintf("    %s=%g → %s  (%d occurrences)\n",
				cand.Attribute, cand.Value, cand.VariableName, len(cand.Occurrences)))
		}
		b.WriteString("\n")
	}
	if len(c.Effects) > 0 {
		b.WriteString("  " + titleStyle.Render("Effect stacks") + "\n")
		for _, cand := range c.Effects {
			b.WriteString(fmt.Sprintf("    %s  (%d layers)\n",
				cand.StyleName, len(cand.MemberNodeIDs)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderHistory renders saved audit entries, most recent last.
func RenderHistory(entries []domain.AuditEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No audit history yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Audit history") + "\n\n")
	for _, e := range entries {
		commit := ""
		if e.CommitHash != "" {
			commit = " " + faintStyle.Render(shortHash(e.CommitHash))
		}
		b.WriteString(fmt.Sprintf("  %s  %s %3d/100  %d/%d layers%s\n",
			dimStyle.Render(e.Timestamp), e.Document, e.OverallScore,
			e.CompliantLayers, e.TotalLayers, commit))
	}
	return b.String()
}

func coverageLine(name string, value int) string {
	return fmt.Sprintf("  %s %s %d%%\n", dimStyle.Render(fmt.Sprintf("%-10s", name)), bar(value), value)
}

func bar(percentage int) string {
	const width = 20
	filled := percentage * width / 100
	if filled > width {
		filled = width
	}
	style := passStyle
	switch {
	case percentage < 50:
		style = critTagStyle
	case percentage < 80:
		style = warnTagStyle
	}
	return style.Render(strings.Repeat("█", filled)) + faintStyle.Render(strings.Repeat("░", width-filled))
}

func severityTag(s domain.Severity) string {
	switch s {
	case domain.SeverityCritical:
		return critTagStyle.Render("CRIT")
	case domain.SeverityWarning:
		return warnTagStyle.Render("WARN")
	default:
		return infoTagStyle.Render("INFO")
	}
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return danger
}

func sortedKinds(byKind map[domain.Kind]domain.TypeStat) []domain.Kind {
	kinds := make([]domain.Kind, 0, len(byKind))
	for kind := range byKind {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func padKind(kind domain.Kind) string {
	return fmt.Sprintf("%-18s", string(kind))
}
