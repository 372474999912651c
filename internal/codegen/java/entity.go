package java

import (
	"github.com/bootgen-dev/bootgen/internal/codegen/writer"
	"github.com/bootgen-dev/bootgen/internal/naming"
)

// EntityGenerator renders the JPA data record with id, name and description
type EntityGenerator struct {
	basePackage string
}

// NewEntityGenerator creates a new entity generator
func NewEntityGenerator(basePackage string) *EntityGenerator {
	return &EntityGenerator{basePackage: basePackage}
}

// Kind returns the artifact kind
func (g *EntityGenerator) Kind() string {
	return KindEntity
}

// Path returns the file path relative to the language source root
func (g *EntityGenerator) Path(v naming.Variants) string {
	return sourcePath(v, LayerEntity, EntityType(v))
}

// Generate renders the entity class
func (g *EntityGenerator) Generate(v naming.Variants) ([]byte, error) {
	if err := ValidateNames(v); err != nil {
		return nil, err
	}

	entity := EntityType(v)
	w := writer.NewWriter(indent)
	writeHeader(w, LayerPackage(g.basePackage, v, LayerEntity), []string{
		"jakarta.persistence.Entity",
		"jakarta.persistence.GeneratedValue",
		"jakarta.persistence.GenerationType",
		"jakarta.persistence.Id",
		"lombok.AllArgsConstructor",
		"lombok.Data",
		"lombok.NoArgsConstructor",
	})

	w.WriteJavadoc(
		"Represents the "+entity+" entity in the database.",
		"This class is mapped to a database table and defines the schema for "+entity+" data.",
	)
	w.WriteLine("@Entity")
	w.WriteLine("@Data")
	w.WriteLine("@NoArgsConstructor")
	w.WriteLine("@AllArgsConstructor")
	w.WriteBlock("public class "+entity+" {", "}", func() {
		w.BlankLine()
		w.WriteLine("@Id")
		w.WriteLine("@GeneratedValue(strategy = GenerationType.IDENTITY)")
		w.WriteLine("private Long id;")
		w.BlankLine()
		w.WriteLine("private String name;")
		w.WriteLine("private String description;")
		w.BlankLine()
		w.WriteJavadoc(
			"Constructor for creating a new "+entity+" without an ID (for persistence).",
			"",
			"@param name The name of the "+entity+".",
			"@param description A brief description of the "+entity+".",
		)
		w.WriteBlock("public "+entity+"(String name, String description) {", "}", func() {
			w.WriteLine("this.name = name;")
			w.WriteLine("this.description = description;")
		})
	})

	return w.Bytes(), nil
}
