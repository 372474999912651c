package buildfile

import (
	"fmt"

	"github.com/bootgen-dev/bootgen/internal/project"
)

const (
	springBootVersion        = "3.2.5"
	dependencyManagementVers = "1.1.4"
	javaVersion              = "17"
	projectVersion           = "0.0.1-SNAPSHOT"
	springdocVersion         = "2.3.0"
)

type scope int

const (
	scopeCompile scope = iota
	scopeRuntime
	scopeTest
	scopeOptional
)

// dependency is a single coordinate in the build manifest
type dependency struct {
	group    string
	artifact string
	version  string
	scope    scope
}

// gradle returns the group:artifact[:version] notation
func (d dependency) gradle() string {
	if d.version == "" {
		return d.group + ":" + d.artifact
	}
	return d.group + ":" + d.artifact + ":" + d.version
}

var (
	starterWeb     = dependency{group: "org.springframework.boot", artifact: "spring-boot-starter-web"}
	starterDataJPA = dependency{group: "org.springframework.boot", artifact: "spring-boot-starter-data-jpa"}
	lombok         = dependency{group: "org.projectlombok", artifact: "lombok", scope: scopeOptional}
	starterTest    = dependency{group: "org.springframework.boot", artifact: "spring-boot-starter-test", scope: scopeTest}
	springdoc      = dependency{group: "org.springdoc", artifact: "springdoc-openapi-starter-webmvc-ui", version: springdocVersion}

	h2Driver         = dependency{group: "com.h2database", artifact: "h2", scope: scopeRuntime}
	mysqlDriver      = dependency{group: "mysql", artifact: "mysql-connector-java", version: "8.0.33", scope: scopeRuntime}
	postgresqlDriver = dependency{group: "org.postgresql", artifact: "postgresql", scope: scopeRuntime}
)

// driver picks exactly one JDBC driver. Unrecognized databases get h2 and
// a warning.
func driver(t project.DatabaseType) (dependency, *project.Warning, error) {
	switch t {
	case project.DatabaseH2:
		return h2Driver, nil, nil
	case project.DatabaseMySQL:
		return mysqlDriver, nil, nil
	case project.DatabasePostgreSQL:
		return postgresqlDriver, nil, nil
	case project.DatabaseOther:
		w := project.Warnf(project.WarnDatabaseDriver,
			"no driver is known for this database type; falling back to %s:%s", h2Driver.group, h2Driver.artifact)
		return h2Driver, &w, nil
	default:
		return dependency{}, nil, fmt.Errorf("%w: %q", ErrUnsupportedDatabase, t)
	}
}
