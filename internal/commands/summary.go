package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bootgen-dev/bootgen/internal/project"
	"github.com/bootgen-dev/bootgen/internal/scaffold"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dryStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	fileStyle  = lipgloss.NewStyle().Faint(true)
	stepsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// runCommand is how the generated project is started
func runCommand(tool project.BuildTool) string {
	if tool == project.BuildGradle {
		return "gradle bootRun"
	}
	return "mvn spring-boot:run"
}

func renderSummary(r *scaffold.Report, tool project.BuildTool, warnings []project.Warning) string {
	var b strings.Builder

	if r.DryRun {
		b.WriteString(dryStyle.Render(fmt.Sprintf("Dry run: %d files would be written under %s", len(r.Plan.Artifacts), r.Root)))
	} else {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Project generated in %s", r.ProjectDir())))
	}
	b.WriteString("\n")

	for _, f := range r.Plan.Files() {
		b.WriteString(fileStyle.Render("  " + f))
		b.WriteString("\n")
	}

	if len(warnings) > 0 {
		b.WriteString("\n")
		for _, w := range warnings {
			b.WriteString(warnStyle.Render("! " + w.String()))
			b.WriteString("\n")
		}
	}

	if !r.DryRun {
		b.WriteString("\n")
		b.WriteString(stepsStyle.Render(strings.Join([]string{
			"Next steps:",
			"  cd " + r.ProjectDir(),
			"  " + runCommand(tool),
		}, "\n")))
		b.WriteString("\n")
	}

	return b.String()
}
