package java

import (
	"github.com/bootgen-dev/bootgen/internal/codegen/writer"
	"github.com/bootgen-dev/bootgen/internal/naming"
)

// ApplicationGenerator renders the Spring Boot entry point
type ApplicationGenerator struct {
	basePackage string
}

// NewApplicationGenerator creates a new entry-point generator
func NewApplicationGenerator(basePackage string) *ApplicationGenerator {
	return &ApplicationGenerator{basePackage: basePackage}
}

// Kind returns the artifact kind
func (g *ApplicationGenerator) Kind() string {
	return KindApplication
}

// Path returns the file path relative to the language source root
func (g *ApplicationGenerator) Path(v naming.Variants) string {
	return sourcePath(v, "", ApplicationType)
}

// Generate renders the Application class
func (g *ApplicationGenerator) Generate(v naming.Variants) ([]byte, error) {
	if err := ValidateNames(v); err != nil {
		return nil, err
	}

	w := writer.NewWriter(indent)
	writeHeader(w, ModulePackage(g.basePackage, v), []string{
		"org.springframework.boot.SpringApplication",
		"org.springframework.boot.autoconfigure.SpringBootApplication",
	})

	w.WriteJavadoc(
		"Main entry point for the "+v.Pascal+" Spring Boot application.",
		"This class enables auto-configuration, component scanning, and serves as the",
		"starting point for running the application.",
	)
	w.WriteLine("@SpringBootApplication")
	w.WriteBlock("public class "+ApplicationType+" {", "}", func() {
		w.BlankLine()
		w.WriteBlock("public static void main(String[] args) {", "}", func() {
			w.WriteLinef("SpringApplication.run(%s.class, args);", ApplicationType)
		})
		w.BlankLine()
	})

	return w.Bytes(), nil
}
