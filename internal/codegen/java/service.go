package java

import (
	"github.com/bootgen-dev/bootgen/internal/codegen/writer"
	"github.com/bootgen-dev/bootgen/internal/naming"
)

// ServiceGenerator renders the business layer class that delegates to the
// repository
type ServiceGenerator struct {
	basePackage string
}

// NewServiceGenerator creates a new service generator
func NewServiceGenerator(basePackage string) *ServiceGenerator {
	return &ServiceGenerator{basePackage: basePackage}
}

// Kind returns the artifact kind
func (g *ServiceGenerator) Kind() string {
	return KindService
}

// Path returns the file path relative to the language source root
func (g *ServiceGenerator) Path(v naming.Variants) string {
	return sourcePath(v, LayerService, ServiceType(v))
}

// Generate renders the service class
func (g *ServiceGenerator) Generate(v naming.Variants) ([]byte, error) {
	if err := ValidateNames(v); err != nil {
		return nil, err
	}

	var (
		entity     = EntityType(v)
		repository = RepositoryType(v)
		service    = ServiceType(v)
		repoVar    = varName(repository)
		entityVar  = varName(entity)
	)

	w := writer.NewWriter(indent)
	writeHeader(w, LayerPackage(g.basePackage, v, LayerService), []string{
		qualified(g.basePackage, v, LayerEntity, entity),
		qualified(g.basePackage, v, LayerRepository, repository),
		"org.springframework.stereotype.Service",
		"java.util.List",
		"java.util.Optional",
	})

	w.WriteJavadoc(
		"Service layer for managing "+entity+" entities.",
		"This class contains the business logic for operations related to "+entity+".",
		"It acts as an intermediary between the Controller and Repository layers for "+entity+" data.",
	)
	w.WriteLine("@Service")
	w.WriteBlock("public class "+service+" {", "}", func() {
		w.BlankLine()
		w.WriteLinef("private final %s %s;", repository, repoVar)
		w.BlankLine()

		w.WriteJavadoc(
			"Constructs a new "+service+" with the given "+repository+".",
			"Spring automatically injects the "+repository+" instance.",
			"",
			"@param "+repoVar+" The "+repository+" to be used by this service.",
		)
		w.WriteBlock("public "+service+"(final "+repository+" "+repoVar+") {", "}", func() {
			w.WriteLinef("this.%s = %s;", repoVar, repoVar)
		})
		w.BlankLine()

		w.WriteJavadoc(
			"Retrieves all "+entity+" entities.",
			"",
			"@return A list of all "+entity+" entities.",
		)
		w.WriteBlock("public List<"+entity+"> findAll() {", "}", func() {
			w.WriteLinef("return this.%s.findAll();", repoVar)
		})
		w.BlankLine()

		w.WriteJavadoc(
			"Retrieves a "+entity+" entity by its ID.",
			"",
			"@param id The ID of the "+entity+" to retrieve.",
			"@return An Optional containing the "+entity+" if found, or empty if not.",
		)
		w.WriteBlock("public Optional<"+entity+"> findById(final Long id) {", "}", func() {
			w.WriteLinef("return this.%s.findById(id);", repoVar)
		})
		w.BlankLine()

		w.WriteJavadoc(
			"Saves a new "+entity+" entity or updates an existing one.",
			"",
			"@param "+entityVar+" The "+entity+" entity to save or update.",
			"@return The saved or updated "+entity+" entity.",
		)
		w.WriteBlock("public "+entity+" save(final "+entity+" "+entityVar+") {", "}", func() {
			w.WriteLinef("return this.%s.save(%s);", repoVar, entityVar)
		})
		w.BlankLine()

		w.WriteJavadoc(
			"Deletes a "+entity+" entity by its ID.",
			"",
			"@param id The ID of the "+entity+" to delete.",
		)
		w.WriteBlock("public void deleteById(final Long id) {", "}", func() {
			w.WriteLinef("this.%s.deleteById(id);", repoVar)
		})
	})

	return w.Bytes(), nil
}
