// Package java renders the Spring Boot source files of one module.
//
// Every type name that crosses a file boundary comes from the helpers in this
// file, so the controller, service, repository and entity always agree.
package java

import (
	"fmt"
	"path"

	"github.com/bootgen-dev/bootgen/internal/naming"
)

// Layer sub-packages of a module
const (
	LayerConfig     = "config"
	LayerController = "controller"
	LayerService    = "service"
	LayerRepository = "repository"
	LayerEntity     = "entity"
)

// Fixed class names
const (
	ApplicationType   = "Application"
	OpenAPIConfigType = "OpenApiConfig"
)

// Layers returns the module sub-packages in directory creation order
func Layers() []string {
	return []string{LayerConfig, LayerController, LayerService, LayerRepository, LayerEntity}
}

// importedNames are the simple type names imported next to a module type, or
// taken from java.lang. A module type with one of these names would shadow it.
var importedNames = map[string]bool{
	"HttpStatus": true, "ResponseEntity": true,
	"RestController": true, "RequestMapping": true, "GetMapping": true, "PostMapping": true,
	"PutMapping": true, "DeleteMapping": true, "PathVariable": true, "RequestBody": true,
	"List": true, "Optional": true,
	"Entity": true, "GeneratedValue": true, "GenerationType": true, "Id": true,
	"AllArgsConstructor": true, "Data": true, "NoArgsConstructor": true,
	"JpaRepository": true, "Repository": true, "Service": true,
	"Object": true, "String": true, "Long": true, "Void": true,
}

// ValidateNames checks that the variants are usable identifiers and that no
// generated type collides with an imported one.
func ValidateNames(v naming.Variants) error {
	if err := v.Validate(); err != nil {
		return err
	}
	for _, typ := range []string{EntityType(v), RepositoryType(v), ServiceType(v), ControllerType(v)} {
		if importedNames[typ] {
			return fmt.Errorf("%w: type %s clashes with an imported type", naming.ErrInvalidModuleName, typ)
		}
	}
	return nil
}

// EntityType is the data record class name
func EntityType(v naming.Variants) string {
	return v.Pascal
}

// RepositoryType is the repository interface name
func RepositoryType(v naming.Variants) string {
	return v.Pascal + "Repository"
}

// ServiceType is the service class name
func ServiceType(v naming.Variants) string {
	return v.Pascal + "Service"
}

// ControllerType is the REST controller class name
func ControllerType(v naming.Variants) string {
	return v.Pascal + "Controller"
}

// ModulePackage is the root package of the module
func ModulePackage(basePackage string, v naming.Variants) string {
	return basePackage + "." + v.Camel
}

// LayerPackage is the package of one layer inside the module
func LayerPackage(basePackage string, v naming.Variants, layer string) string {
	return ModulePackage(basePackage, v) + "." + layer
}

// ApplicationClass is the fully qualified entry-point class
func ApplicationClass(basePackage string, v naming.Variants) string {
	return ModulePackage(basePackage, v) + "." + ApplicationType
}

// qualified returns the fully qualified name of a type in a layer
func qualified(basePackage string, v naming.Variants, layer, typ string) string {
	return LayerPackage(basePackage, v, layer) + "." + typ
}

// varName is the conventional field or parameter name for a type
func varName(typ string) string {
	return naming.FromPascal(typ).Camel
}

// sourcePath is the slash separated path of a class relative to the
// language source root. An empty layer places the file in the module root.
func sourcePath(v naming.Variants, layer, typ string) string {
	if layer == "" {
		return path.Join(v.Camel, typ+".java")
	}
	return path.Join(v.Camel, layer, typ+".java")
}
