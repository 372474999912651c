package java

import (
	"github.com/bootgen-dev/bootgen/internal/codegen/writer"
	"github.com/bootgen-dev/bootgen/internal/naming"
)

// ControllerGenerator renders the REST controller. The endpoints are fixed:
//
//	GET    /api/{plural}       200
//	GET    /api/{plural}/{id}  200 | 404
//	POST   /api/{plural}       201
//	PUT    /api/{plural}/{id}  200 | 404, copies only name and description
//	DELETE /api/{plural}/{id}  204 | 404
type ControllerGenerator struct {
	basePackage string
}

// NewControllerGenerator creates a new controller generator
func NewControllerGenerator(basePackage string) *ControllerGenerator {
	return &ControllerGenerator{basePackage: basePackage}
}

// Kind returns the artifact kind
func (g *ControllerGenerator) Kind() string {
	return KindController
}

// Path returns the file path relative to the language source root
func (g *ControllerGenerator) Path(v naming.Variants) string {
	return sourcePath(v, LayerController, ControllerType(v))
}

// BasePath returns the request mapping of the controller
func BasePath(v naming.Variants) string {
	return "/api/" + v.PluralCamel
}

// Generate renders the controller class
func (g *ControllerGenerator) Generate(v naming.Variants) ([]byte, error) {
	if err := ValidateNames(v); err != nil {
		return nil, err
	}

	var (
		entity     = EntityType(v)
		service    = ServiceType(v)
		controller = ControllerType(v)
		serviceVar = varName(service)
		entityVar  = varName(entity)
		listVar    = v.PluralCamel
	)

	w := writer.NewWriter(indent)
	writeHeader(w, LayerPackage(g.basePackage, v, LayerController),
		[]string{
			qualified(g.basePackage, v, LayerEntity, entity),
			qualified(g.basePackage, v, LayerService, service),
			"org.springframework.http.HttpStatus",
			"org.springframework.http.ResponseEntity",
			"org.springframework.web.bind.annotation.*",
		},
		[]string{"java.util.List"},
	)

	w.WriteJavadoc(
		"REST Controller for the "+v.Pascal+" module.",
		"Handles incoming HTTP requests and interacts with the "+service,
		"to perform operations on "+entity+" entities.",
	)
	w.WriteLine("@RestController")
	w.WriteLinef("@RequestMapping(\"%s\")", BasePath(v))
	w.WriteBlock("public class "+controller+" {", "}", func() {
		w.BlankLine()
		w.WriteLinef("private final %s %s;", service, serviceVar)
		w.BlankLine()

		w.WriteJavadoc(
			"Constructs a new "+controller+" with the given "+service+".",
			"Spring automatically injects the "+service+" instance.",
			"",
			"@param "+serviceVar+" The "+service+" to be used by this controller.",
		)
		w.WriteBlock("public "+controller+"(final "+service+" "+serviceVar+") {", "}", func() {
			w.WriteLinef("this.%s = %s;", serviceVar, serviceVar)
		})
		w.BlankLine()

		w.WriteJavadoc(
			"Retrieves all "+entity+" entities.",
			"",
			"@return A ResponseEntity containing a list of all "+v.PluralPascal+" and HTTP status OK.",
		)
		w.WriteLine("@GetMapping")
		w.WriteBlock("public ResponseEntity<List<"+entity+">> getAll"+v.PluralPascal+"() {", "}", func() {
			w.WriteLinef("final List<%s> %s = this.%s.findAll();", entity, listVar, serviceVar)
			w.WriteLinef("return new ResponseEntity<>(%s, HttpStatus.OK);", listVar)
		})
		w.BlankLine()

		w.WriteJavadoc(
			"Retrieves a single "+entity+" entity by its ID.",
			"",
			"@param id The ID of the "+entity+" to retrieve.",
			"@return A ResponseEntity containing the "+entity+" if found (HTTP status OK),",
			"or HTTP status NOT_FOUND if not found.",
		)
		w.WriteLine(`@GetMapping("/{id}")`)
		w.WriteBlock("public ResponseEntity<"+entity+"> get"+v.Pascal+"ById(@PathVariable final Long id) {", "}", func() {
			w.WriteLinef("return this.%s.findById(id)", serviceVar)
			w.Indent()
			w.Indent()
			w.WriteLinef(".map(found%s -> new ResponseEntity<>(found%s, HttpStatus.OK))", v.Pascal, v.Pascal)
			w.WriteLine(".orElse(new ResponseEntity<>(HttpStatus.NOT_FOUND));")
			w.Dedent()
			w.Dedent()
		})
		w.BlankLine()

		w.WriteJavadoc(
			"Creates a new "+entity+" entity.",
			"",
			"@param "+entityVar+" The "+entity+" object to create, sent in the request body.",
			"@return A ResponseEntity containing the created "+entity+" and HTTP status CREATED.",
		)
		w.WriteLine("@PostMapping")
		w.WriteBlock("public ResponseEntity<"+entity+"> create"+v.Pascal+"(@RequestBody final "+entity+" "+entityVar+") {", "}", func() {
			w.WriteLinef("final %s saved%s = this.%s.save(%s);", entity, v.Pascal, serviceVar, entityVar)
			w.WriteLinef("return new ResponseEntity<>(saved%s, HttpStatus.CREATED);", v.Pascal)
		})
		w.BlankLine()

		w.WriteJavadoc(
			"Updates an existing "+entity+" entity. Only name and description are copied.",
			"",
			"@param id The ID of the "+entity+" to update.",
			"@param "+entityVar+" The updated "+entity+" object, sent in the request body.",
			"@return A ResponseEntity containing the updated "+entity+" if found (HTTP status OK),",
			"or HTTP status NOT_FOUND if the original "+entity+" is not found.",
		)
		w.WriteLine(`@PutMapping("/{id}")`)
		w.WriteBlock("public ResponseEntity<"+entity+"> update"+v.Pascal+"(@PathVariable final Long id, @RequestBody final "+entity+" "+entityVar+") {", "}", func() {
			w.WriteLinef("return this.%s.findById(id)", serviceVar)
			w.Indent()
			w.Indent()
			w.WriteBlock(".map(existing"+v.Pascal+" -> {", "})", func() {
				w.WriteLinef("existing%s.setName(%s.getName());", v.Pascal, entityVar)
				w.WriteLinef("existing%s.setDescription(%s.getDescription());", v.Pascal, entityVar)
				w.WriteLinef("final %s updated%s = this.%s.save(existing%s);", entity, v.Pascal, serviceVar, v.Pascal)
				w.WriteLinef("return new ResponseEntity<>(updated%s, HttpStatus.OK);", v.Pascal)
			})
			w.WriteLine(".orElse(new ResponseEntity<>(HttpStatus.NOT_FOUND));")
			w.Dedent()
			w.Dedent()
		})
		w.BlankLine()

		w.WriteJavadoc(
			"Deletes a "+entity+" entity by its ID.",
			"",
			"@param id The ID of the "+entity+" to delete.",
			"@return A ResponseEntity with HTTP status NO_CONTENT if successful,",
			"or HTTP status NOT_FOUND if the "+entity+" does not exist.",
		)
		w.WriteLine(`@DeleteMapping("/{id}")`)
		w.WriteBlock("public ResponseEntity<Void> delete"+v.Pascal+"(@PathVariable final Long id) {", "}", func() {
			w.WriteBlock("if (this."+serviceVar+".findById(id).isEmpty()) {", "}", func() {
				w.WriteLine("return new ResponseEntity<>(HttpStatus.NOT_FOUND);")
			})
			w.WriteLinef("this.%s.deleteById(id);", serviceVar)
			w.WriteLine("return new ResponseEntity<>(HttpStatus.NO_CONTENT);")
		})
	})

	return w.Bytes(), nil
}
