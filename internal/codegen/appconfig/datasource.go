package appconfig

import (
	"fmt"
	"strings"

	"github.com/bootgen-dev/bootgen/internal/project"
)

const (
	h2URL         = "jdbc:h2:mem:testdb"
	h2ConsolePath = "/h2-console"
	createParam   = "createDatabaseIfNotExist=true"

	dialectH2         = "org.hibernate.dialect.H2Dialect"
	dialectMySQL      = "org.hibernate.dialect.MySQLDialect"
	dialectPostgreSQL = "org.hibernate.dialect.PostgreSQLDialect"
)

// datasource is the resolved decision table row for one database type
type datasource struct {
	url      string
	console  bool
	username string
	// dialect is the explicit or default dialect; empty when none applies
	dialect string
	// flatDialect is used by the flat encoding when dialect is empty
	flatDialect string
}

// resolve applies the per-database defaults to the caller's choices
func resolve(db project.Database) (datasource, error) {
	var ds datasource

	switch db.Type {
	case project.DatabaseH2:
		ds = datasource{url: h2URL, console: true, username: "sa", dialect: dialectH2}
	case project.DatabaseMySQL:
		ds = datasource{
			url:      fmt.Sprintf("jdbc:mysql://localhost:3306/%s?useSSL=false&serverTimezone=UTC", db.Name),
			username: "root",
			dialect:  dialectMySQL,
		}
	case project.DatabasePostgreSQL:
		ds = datasource{
			url:      fmt.Sprintf("jdbc:postgresql://localhost:5432/%s", db.Name),
			username: "postgres",
			dialect:  dialectPostgreSQL,
		}
	case project.DatabaseOther:
		// H2 wiring, but no dialect of its own
		ds = datasource{url: h2URL, console: true, username: "sa", flatDialect: dialectH2}
	default:
		return datasource{}, fmt.Errorf("%w: %q", ErrUnsupportedDatabase, db.Type)
	}

	if db.CreateIfNotExists && db.Type.External() {
		ds.url = withQueryParam(ds.url, createParam)
	}
	if db.Username != "" {
		ds.username = db.Username
	}
	if db.Dialect != "" {
		ds.dialect = db.Dialect
	}
	return ds, nil
}

// withQueryParam appends param to the URL's query, starting one if needed
func withQueryParam(url, param string) string {
	if strings.Contains(url, "?") {
		return url + "&" + param
	}
	return url + "?" + param
}
