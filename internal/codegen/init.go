package codegen

import (
	"github.com/bootgen-dev/bootgen/internal/codegen/java"
)

// DefaultRegistry is the global registry instance with pre-registered generators
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.Register(java.KindApplication, func(basePackage string) Generator {
		return java.NewApplicationGenerator(basePackage)
	})
	DefaultRegistry.Register(java.KindEntity, func(basePackage string) Generator {
		return java.NewEntityGenerator(basePackage)
	})
	DefaultRegistry.Register(java.KindRepository, func(basePackage string) Generator {
		return java.NewRepositoryGenerator(basePackage)
	})
	DefaultRegistry.Register(java.KindService, func(basePackage string) Generator {
		return java.NewServiceGenerator(basePackage)
	})
	DefaultRegistry.Register(java.KindController, func(basePackage string) Generator {
		return java.NewControllerGenerator(basePackage)
	})
	DefaultRegistry.Register(java.KindOpenAPI, func(basePackage string) Generator {
		return java.NewOpenAPIGenerator(basePackage)
	})
}
