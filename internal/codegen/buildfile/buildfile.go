// Package buildfile assembles the build manifest (pom.xml or build.gradle)
// for a generated project.
package buildfile

import (
	"fmt"

	"github.com/bootgen-dev/bootgen/internal/project"
)

// Options are the inputs to the build manifest
type Options struct {
	Tool        project.BuildTool
	ProjectName string
	BasePackage string
	Database    project.DatabaseType

	// MainClass is the fully qualified entry point. Defaults to
	// BasePackage + ".Application".
	MainClass string
}

// Result is the assembled manifest plus any fallback advisories
type Result struct {
	Content  string
	Warnings []project.Warning
}

// FileName returns the manifest file name for a build tool
func FileName(tool project.BuildTool) (string, error) {
	switch tool {
	case project.BuildMaven:
		return "pom.xml", nil
	case project.BuildGradle:
		return "build.gradle", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedBuildTool, tool)
	}
}

// SettingsFileName is the gradle companion manifest
const SettingsFileName = "settings.gradle"

// Settings renders settings.gradle so the gradle project name follows the
// project name rather than the output directory.
func Settings(projectName string) string {
	return fmt.Sprintf("rootProject.name = %s\n", quoteGroovy(projectName))
}

// Assemble builds the manifest text for opts.Tool
func Assemble(opts Options) (Result, error) {
	if opts.MainClass == "" {
		opts.MainClass = opts.BasePackage + ".Application"
	}

	drv, warning, err := driver(opts.Database)
	if err != nil {
		return Result{}, err
	}

	var res Result
	if warning != nil {
		res.Warnings = append(res.Warnings, *warning)
	}

	switch opts.Tool {
	case project.BuildMaven:
		res.Content = pom(opts, drv)
	case project.BuildGradle:
		res.Content = gradle(opts, drv)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedBuildTool, opts.Tool)
	}
	return res, nil
}
