package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bootgen-dev/bootgen/internal/codegen"
	"github.com/bootgen-dev/bootgen/internal/project"
	"github.com/bootgen-dev/bootgen/internal/scaffold"
)

func TestRenderSummary(t *testing.T) {
	report := &scaffold.Report{
		Plan: &scaffold.Plan{
			Directories: []string{"demo"},
			Artifacts: []codegen.Artifact{
				{Path: "demo/pom.xml", Content: "<project/>"},
			},
		},
		Root: "/out",
	}
	warnings := []project.Warning{project.Warnf(project.WarnDialectOmitted, "set one")}

	got := renderSummary(report, project.BuildMaven, warnings)
	assert.Contains(t, got, "/out/demo")
	assert.Contains(t, got, "demo/pom.xml")
	assert.Contains(t, got, "dialect-omitted: set one")
	assert.Contains(t, got, "mvn spring-boot:run")

	report.DryRun = true
	got = renderSummary(report, project.BuildGradle, nil)
	assert.Contains(t, got, "Dry run: 1 files would be written under /out")
	assert.NotContains(t, got, "gradle bootRun")
}

func TestRunCommand(t *testing.T) {
	assert.Equal(t, "mvn spring-boot:run", runCommand(project.BuildMaven))
	assert.Equal(t, "gradle bootRun", runCommand(project.BuildGradle))
}
