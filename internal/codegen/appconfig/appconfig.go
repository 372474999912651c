// Package appconfig assembles the Spring application configuration file
// (application.properties or application.yml) from the datasource choices.
package appconfig

import (
	"fmt"

	"github.com/bootgen-dev/bootgen/internal/codegen/writer"
	"github.com/bootgen-dev/bootgen/internal/project"
)

// Result is the assembled configuration text plus any fallback advisories
type Result struct {
	Content  string
	Warnings []project.Warning
}

// FileName returns the configuration file name for a format
func FileName(format project.ConfigFormat) (string, error) {
	if !format.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return "application." + string(format), nil
}

// Assemble builds the configuration text. Both formats carry the same
// settings: URL, credentials, ddl-auto=update, show-sql=true and dialect.
func Assemble(format project.ConfigFormat, db project.Database) (Result, error) {
	ds, err := resolve(db)
	if err != nil {
		return Result{}, err
	}

	switch format {
	case project.FormatProperties:
		return Result{Content: properties(ds, db.Password)}, nil
	case project.FormatYAML:
		res := Result{Content: yml(ds, db.Password)}
		if ds.dialect == "" {
			res.Warnings = append(res.Warnings, project.Warnf(project.WarnDialectOmitted,
				"no hibernate dialect is known for database type %q; set one in %s", db.Type, "application.yml"))
		}
		return res, nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func properties(ds datasource, password string) string {
	w := writer.NewWriter("")

	w.WriteLinef("spring.datasource.url=%s", ds.url)
	if ds.console {
		w.WriteLine("spring.h2.console.enabled=true")
		w.WriteLinef("spring.h2.console.path=%s", h2ConsolePath)
	}
	w.WriteLinef("spring.datasource.username=%s", ds.username)
	w.WriteLinef("spring.datasource.password=%s", password)
	w.WriteLine("spring.jpa.hibernate.ddl-auto=update")

	dialect := ds.dialect
	if dialect == "" {
		dialect = ds.flatDialect
	}
	if dialect != "" {
		w.WriteLinef("spring.jpa.properties.hibernate.dialect=%s", dialect)
	}
	w.WriteLine("spring.jpa.show-sql=true")

	return w.String()
}

func yml(ds datasource, password string) string {
	w := writer.NewWriter("  ")

	w.WriteBlock("spring:", "", func() {
		w.WriteBlock("datasource:", "", func() {
			w.WriteLinef("url: %s", ds.url)
			w.WriteLinef("username: %q", ds.username)
			w.WriteLinef("password: %q", password)
		})
		if ds.console {
			w.WriteBlock("h2:", "", func() {
				w.WriteBlock("console:", "", func() {
					w.WriteLine("enabled: true")
					w.WriteLinef("path: %s", h2ConsolePath)
				})
			})
		}
		w.WriteBlock("jpa:", "", func() {
			w.WriteBlock("hibernate:", "", func() {
				w.WriteLine("ddl-auto: update")
			})
			w.WriteLine("show-sql: true")
			if ds.dialect != "" {
				w.WriteBlock("properties:", "", func() {
					w.WriteBlock("hibernate:", "", func() {
						w.WriteLinef("dialect: %q", ds.dialect)
					})
				})
			}
		})
	})

	return w.String()
}
