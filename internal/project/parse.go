package project

import (
	"fmt"
	"regexp"
	"strings"
)

// ParseBuildTool maps user input to a BuildTool. Empty input selects maven;
// anything unrecognized also falls back to maven and returns a warning.
func ParseBuildTool(s string) (BuildTool, *Warning) {
	switch BuildTool(strings.ToLower(strings.TrimSpace(s))) {
	case "", BuildMaven:
		return BuildMaven, nil
	case BuildGradle:
		return BuildGradle, nil
	default:
		w := Warnf(WarnUnknownBuildTool, "unknown build tool %q, using %s", s, BuildMaven)
		return BuildMaven, &w
	}
}

// ParseConfigFormat maps user input to a ConfigFormat. Empty input selects
// properties. Unknown formats are an error: an empty configuration file would
// silently break the generated project.
func ParseConfigFormat(s string) (ConfigFormat, error) {
	switch f := ConfigFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatProperties, nil
	case FormatProperties, FormatYAML:
		return f, nil
	case "yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (expected properties or yml)", ErrUnsupportedFormat, s)
	}
}

// ParseDatabaseType maps user input to a DatabaseType. Empty input selects
// h2; anything unrecognized becomes DatabaseOther with a warning.
func ParseDatabaseType(s string) (DatabaseType, *Warning) {
	switch d := DatabaseType(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return DatabaseH2, nil
	case DatabaseH2, DatabaseMySQL, DatabasePostgreSQL:
		return d, nil
	default:
		w := Warnf(WarnUnknownDatabaseType, "unknown database type %q, falling back to %s defaults", s, DatabaseH2)
		return DatabaseOther, &w
	}
}

var javaPackagePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*(\.[a-z_][a-z0-9_]*)*$`)

// IsJavaPackage reports whether s is a dotted, lower-case Java package name
func IsJavaPackage(s string) bool {
	return javaPackagePattern.MatchString(s)
}

// Validate checks the fields every generation run needs
func (s Spec) Validate() error {
	if strings.TrimSpace(s.ProjectName) == "" {
		return fmt.Errorf("%w: project name", ErrMissingField)
	}
	if strings.ContainsAny(s.ProjectName, `/\`) || s.ProjectName == "." || s.ProjectName == ".." {
		return fmt.Errorf("%w: project name %q must be a single directory name", ErrMissingField, s.ProjectName)
	}
	if s.BasePackage == "" {
		return fmt.Errorf("%w: base package", ErrMissingField)
	}
	if !IsJavaPackage(s.BasePackage) {
		return fmt.Errorf("%w: %q", ErrInvalidBasePackage, s.BasePackage)
	}
	if !s.ConfigFormat.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, s.ConfigFormat)
	}
	if s.Database.Type.External() && strings.TrimSpace(s.Database.Name) == "" {
		return fmt.Errorf("%w: database name for %s", ErrMissingField, s.Database.Type)
	}
	return nil
}
