package project

import "fmt"

// Warning codes raised by fallback branches
const (
	WarnUnknownDatabaseType    = "unknown-database-type"
	WarnUnknownBuildTool       = "unknown-build-tool"
	WarnDatabaseDriver         = "database-driver-fallback"
	WarnDocDependencyMavenOnly = "doc-dependency-maven-only"
	WarnDialectOmitted         = "dialect-omitted"
)

// Warning is an advisory produced when generation takes a fallback branch.
// It never stops a run; the caller decides how to surface it.
type Warning struct {
	Code    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// Warnf creates a Warning with a formatted message
func Warnf(code, format string, args ...interface{}) Warning {
	return Warning{Code: code, Message: fmt.Sprintf(format, args...)}
}
