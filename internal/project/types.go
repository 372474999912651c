// Package project holds the choices that drive one generation run
package project

// BuildTool is the build system of the generated project
type BuildTool string

const (
	BuildMaven  BuildTool = "maven"
	BuildGradle BuildTool = "gradle"
)

// Valid returns true if the BuildTool is a valid value
func (b BuildTool) Valid() bool {
	switch b {
	case BuildMaven, BuildGradle:
		return true
	default:
		return false
	}
}

// ConfigFormat is the encoding of the application configuration file
type ConfigFormat string

const (
	FormatProperties ConfigFormat = "properties"
	FormatYAML       ConfigFormat = "yml"
)

// Valid returns true if the ConfigFormat is a valid value
func (f ConfigFormat) Valid() bool {
	switch f {
	case FormatProperties, FormatYAML:
		return true
	default:
		return false
	}
}

// DatabaseType selects the datasource wiring of the generated project.
// DatabaseOther stands for any unrecognized choice and takes the H2 fallback
// wherever a concrete value is needed.
type DatabaseType string

const (
	DatabaseH2         DatabaseType = "h2"
	DatabaseMySQL      DatabaseType = "mysql"
	DatabasePostgreSQL DatabaseType = "postgresql"
	DatabaseOther      DatabaseType = "other"
)

// Valid returns true if the DatabaseType is a valid value
func (d DatabaseType) Valid() bool {
	switch d {
	case DatabaseH2, DatabaseMySQL, DatabasePostgreSQL, DatabaseOther:
		return true
	default:
		return false
	}
}

// External reports whether the database runs outside the application and
// therefore needs a name, credentials and an optional create flag
func (d DatabaseType) External() bool {
	return d == DatabaseMySQL || d == DatabasePostgreSQL
}

// Database describes the datasource of the generated project
type Database struct {
	Type              DatabaseType
	Name              string
	Dialect           string
	CreateIfNotExists bool
	Username          string
	Password          string
}

// Spec is the full set of project-level choices for one run. It is built
// once and passed by value.
type Spec struct {
	ProjectName  string
	BasePackage  string
	BuildTool    BuildTool
	ConfigFormat ConfigFormat
	Database     Database
}
