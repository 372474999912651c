package java

import (
	"github.com/bootgen-dev/bootgen/internal/codegen/writer"
)

const indent = "    "

// Artifact kinds, in render order
const (
	KindApplication = "application"
	KindEntity      = "entity"
	KindRepository  = "repository"
	KindService     = "service"
	KindController  = "controller"
	KindOpenAPI     = "openapi"
)

// Kinds returns every renderer kind in dependency order: the entry point,
// then record → repository → service → controller, then the API docs config.
func Kinds() []string {
	return []string{KindApplication, KindEntity, KindRepository, KindService, KindController, KindOpenAPI}
}

// writeHeader writes the package declaration and import groups. Groups are
// separated by a blank line.
func writeHeader(w *writer.Writer, pkg string, importGroups ...[]string) {
	w.WriteLinef("package %s;", pkg)
	w.BlankLine()
	for _, group := range importGroups {
		if len(group) == 0 {
			continue
		}
		for _, imp := range group {
			w.WriteLinef("import %s;", imp)
		}
		w.BlankLine()
	}
}
