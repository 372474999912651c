package java

import (
	"github.com/bootgen-dev/bootgen/internal/codegen/writer"
	"github.com/bootgen-dev/bootgen/internal/naming"
)

// RepositoryGenerator renders the Spring Data repository interface
type RepositoryGenerator struct {
	basePackage string
}

// NewRepositoryGenerator creates a new repository generator
func NewRepositoryGenerator(basePackage string) *RepositoryGenerator {
	return &RepositoryGenerator{basePackage: basePackage}
}

// Kind returns the artifact kind
func (g *RepositoryGenerator) Kind() string {
	return KindRepository
}

// Path returns the file path relative to the language source root
func (g *RepositoryGenerator) Path(v naming.Variants) string {
	return sourcePath(v, LayerRepository, RepositoryType(v))
}

// Generate renders the repository interface
func (g *RepositoryGenerator) Generate(v naming.Variants) ([]byte, error) {
	if err := ValidateNames(v); err != nil {
		return nil, err
	}

	entity := EntityType(v)
	w := writer.NewWriter(indent)
	writeHeader(w, LayerPackage(g.basePackage, v, LayerRepository), []string{
		qualified(g.basePackage, v, LayerEntity, entity),
		"org.springframework.data.jpa.repository.JpaRepository",
		"org.springframework.stereotype.Repository",
	})

	w.WriteJavadoc(
		"Spring Data JPA repository for the "+entity+" entity.",
		"Provides standard CRUD operations and custom query capabilities for "+entity+" data.",
	)
	w.WriteLine("@Repository")
	w.WriteBlock("public interface "+RepositoryType(v)+" extends JpaRepository<"+entity+", Long> {", "}", func() {
		w.WriteComment("Custom query methods can be added here if needed, e.g.:")
		w.WriteComment("Optional<" + entity + "> findByName(String name);")
	})

	return w.Bytes(), nil
}
