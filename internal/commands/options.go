package commands

import (
	"fmt"
	"strings"

	"github.com/bootgen-dev/bootgen/internal/naming"
	"github.com/bootgen-dev/bootgen/internal/project"
)

// NewOptions are the inputs of `bootgen new`
type NewOptions struct {
	ProjectName       string
	BasePackage       string
	Module            string
	BuildTool         string
	ConfigFormat      string
	Database          string
	DatabaseName      string
	Dialect           string
	CreateIfNotExists bool
	Username          string
	Password          string

	Output string
	DryRun bool
	Force  bool
}

// missing lists the required inputs that are still empty
func (o *NewOptions) missing() []string {
	var fields []string
	if strings.TrimSpace(o.ProjectName) == "" {
		fields = append(fields, "project")
	}
	if strings.TrimSpace(o.BasePackage) == "" {
		fields = append(fields, "package")
	}
	if strings.TrimSpace(o.Module) == "" {
		fields = append(fields, "module")
	}
	if o.needsDatabaseName() {
		fields = append(fields, "database name")
	}
	return fields
}

// needsDatabaseName reports an external database without a name
func (o *NewOptions) needsDatabaseName() bool {
	dbType, _ := project.ParseDatabaseType(o.Database)
	return dbType.External() && strings.TrimSpace(o.DatabaseName) == ""
}

// spec parses the free-text options into a project spec
func (o *NewOptions) spec() (project.Spec, []project.Warning, error) {
	if fields := o.missing(); len(fields) > 0 {
		return project.Spec{}, nil, fmt.Errorf("%w: %s", ErrMissingInput, strings.Join(fields, ", "))
	}

	var warnings []project.Warning

	tool, w := project.ParseBuildTool(o.BuildTool)
	if w != nil {
		warnings = append(warnings, *w)
	}

	format, err := project.ParseConfigFormat(o.ConfigFormat)
	if err != nil {
		return project.Spec{}, nil, err
	}

	dbType, w := project.ParseDatabaseType(o.Database)
	if w != nil {
		warnings = append(warnings, *w)
	}

	db := project.Database{Type: dbType, Dialect: strings.TrimSpace(o.Dialect)}
	if dbType != project.DatabaseH2 {
		db.Name = strings.TrimSpace(o.DatabaseName)
		db.CreateIfNotExists = o.CreateIfNotExists
		db.Username = strings.TrimSpace(o.Username)
		db.Password = o.Password
	}

	return project.Spec{
		ProjectName:  strings.TrimSpace(o.ProjectName),
		BasePackage:  naming.NormalizePackage(o.BasePackage),
		BuildTool:    tool,
		ConfigFormat: format,
		Database:     db,
	}, warnings, nil
}
