package java

import (
	"github.com/bootgen-dev/bootgen/internal/codegen/writer"
	"github.com/bootgen-dev/bootgen/internal/naming"
)

// OpenAPIGenerator renders the springdoc configuration bean. It compiles only
// when the build manifest declares the springdoc dependency.
type OpenAPIGenerator struct {
	basePackage string
}

// NewOpenAPIGenerator creates a new API documentation config generator
func NewOpenAPIGenerator(basePackage string) *OpenAPIGenerator {
	return &OpenAPIGenerator{basePackage: basePackage}
}

// Kind returns the artifact kind
func (g *OpenAPIGenerator) Kind() string {
	return KindOpenAPI
}

// Path returns the file path relative to the language source root
func (g *OpenAPIGenerator) Path(v naming.Variants) string {
	return sourcePath(v, LayerConfig, OpenAPIConfigType)
}

// Generate renders the OpenApiConfig class
func (g *OpenAPIGenerator) Generate(v naming.Variants) ([]byte, error) {
	if err := ValidateNames(v); err != nil {
		return nil, err
	}

	w := writer.NewWriter(indent)
	writeHeader(w, LayerPackage(g.basePackage, v, LayerConfig),
		[]string{
			"io.swagger.v3.oas.models.Components",
			"io.swagger.v3.oas.models.OpenAPI",
			"io.swagger.v3.oas.models.info.Info",
			"io.swagger.v3.oas.models.security.SecurityRequirement",
			"io.swagger.v3.oas.models.security.SecurityScheme",
			"io.swagger.v3.oas.models.servers.Server",
			"org.springframework.context.annotation.Bean",
			"org.springframework.context.annotation.Configuration",
		},
		[]string{"java.util.List"},
	)

	w.WriteJavadoc(
		"Configuration for OpenAPI documentation (Swagger).",
		"Sets up server details, API info, and a bearer security scheme.",
	)
	w.WriteLine("@Configuration")
	w.WriteBlock("public class "+OpenAPIConfigType+" {", "}", func() {
		w.BlankLine()
		w.WriteJavadoc(
			"Creates a customized OpenAPI bean used by the Swagger UI.",
			"",
			"@return A configured {@link OpenAPI} object.",
		)
		w.WriteLine("@Bean")
		w.WriteBlock("public OpenAPI customOpenAPI() {", "}", func() {
			w.WriteLine(`final String securitySchemeName = "bearerAuth";`)
			w.BlankLine()
			w.WriteLine(`final Server server = new Server().url("http://localhost:8080").description("Local Development Server");`)
			w.BlankLine()
			w.WriteLine("final Info info = new Info()")
			w.Indent()
			w.Indent()
			w.WriteLinef(`.title("%s API")`, v.Pascal)
			w.WriteLine(`.version("1.0.0")`)
			w.WriteLinef(`.description("API documentation for the %s application.");`, v.Pascal)
			w.Dedent()
			w.Dedent()
			w.BlankLine()
			w.WriteLine("final SecurityScheme securityScheme = new SecurityScheme()")
			w.Indent()
			w.Indent()
			w.WriteLine(".name(securitySchemeName)")
			w.WriteLine(".type(SecurityScheme.Type.HTTP)")
			w.WriteLine(`.scheme("bearer")`)
			w.WriteLine(`.bearerFormat("JWT");`)
			w.Dedent()
			w.Dedent()
			w.BlankLine()
			w.WriteLine("return new OpenAPI()")
			w.Indent()
			w.Indent()
			w.WriteLine(".servers(List.of(server))")
			w.WriteLine(".info(info)")
			w.WriteLine(".addSecurityItem(new SecurityRequirement().addList(securitySchemeName))")
			w.WriteLine(".components(new Components().addSecuritySchemes(securitySchemeName, securityScheme));")
			w.Dedent()
			w.Dedent()
		})
	})

	return w.Bytes(), nil
}
