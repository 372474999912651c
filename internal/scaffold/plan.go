// Package scaffold turns a project spec and a module name into an ordered
// list of directories and files, and writes them out.
package scaffold

import (
	"fmt"
	"path"

	"github.com/bootgen-dev/bootgen/internal/codegen"
	"github.com/bootgen-dev/bootgen/internal/codegen/appconfig"
	"github.com/bootgen-dev/bootgen/internal/codegen/buildfile"
	"github.com/bootgen-dev/bootgen/internal/codegen/java"
	"github.com/bootgen-dev/bootgen/internal/naming"
	"github.com/bootgen-dev/bootgen/internal/project"
)

const (
	javaSourceRoot = "src/main/java"
	resourcesRoot  = "src/main/resources"
)

// Plan is everything one run will create, in creation order. All paths are
// slash separated and start with the project name.
type Plan struct {
	Directories []string
	Artifacts   []codegen.Artifact
	Warnings    []project.Warning
}

// NewPlan renders every artifact with the default registry. It touches no
// filesystem.
func NewPlan(spec project.Spec, names naming.Variants) (*Plan, error) {
	return NewPlanWithRegistry(codegen.DefaultRegistry, spec, names)
}

// NewPlanWithRegistry is NewPlan with an explicit renderer registry
func NewPlanWithRegistry(registry *codegen.Registry, spec project.Spec, names naming.Variants) (*Plan, error) {
	if err := java.ValidateNames(names); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	root := spec.ProjectName
	sourceRoot := path.Join(root, javaSourceRoot, naming.PackagePath(spec.BasePackage))
	moduleRoot := path.Join(sourceRoot, names.Camel)

	p := &Plan{}
	seen := make(map[string]bool)
	addDir := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			p.Directories = append(p.Directories, dir)
		}
	}

	// The build manifest lives in the project root.
	addDir(root)
	addDir(moduleRoot)
	for _, layer := range java.Layers() {
		addDir(path.Join(moduleRoot, layer))
	}
	addDir(path.Join(root, resourcesRoot))

	if err := p.addManifest(spec, names); err != nil {
		return nil, err
	}

	for _, kind := range java.Kinds() {
		g, err := registry.Get(kind, spec.BasePackage)
		if err != nil {
			return nil, err
		}
		artifact, err := codegen.Render(g, names)
		if err != nil {
			return nil, err
		}
		artifact.Path = path.Join(sourceRoot, artifact.Path)
		p.Artifacts = append(p.Artifacts, artifact)
	}

	name, err := appconfig.FileName(spec.ConfigFormat)
	if err != nil {
		return nil, err
	}
	cfg, err := appconfig.Assemble(spec.ConfigFormat, spec.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble %s: %w", name, err)
	}
	p.Artifacts = append(p.Artifacts, codegen.Artifact{
		Path:    path.Join(root, resourcesRoot, name),
		Content: cfg.Content,
	})
	p.Warnings = append(p.Warnings, cfg.Warnings...)

	return p, nil
}

func (p *Plan) addManifest(spec project.Spec, names naming.Variants) error {
	root := spec.ProjectName

	name, err := buildfile.FileName(spec.BuildTool)
	if err != nil {
		return err
	}
	manifest, err := buildfile.Assemble(buildfile.Options{
		Tool:        spec.BuildTool,
		ProjectName: spec.ProjectName,
		BasePackage: spec.BasePackage,
		Database:    spec.Database.Type,
		MainClass:   java.ApplicationClass(spec.BasePackage, names),
	})
	if err != nil {
		return fmt.Errorf("failed to assemble %s: %w", name, err)
	}
	p.Artifacts = append(p.Artifacts, codegen.Artifact{Path: path.Join(root, name), Content: manifest.Content})
	p.Warnings = append(p.Warnings, manifest.Warnings...)

	if spec.BuildTool == project.BuildGradle {
		p.Artifacts = append(p.Artifacts, codegen.Artifact{
			Path:    path.Join(root, buildfile.SettingsFileName),
			Content: buildfile.Settings(spec.ProjectName),
		})
		p.Warnings = append(p.Warnings, project.Warnf(project.WarnDocDependencyMavenOnly,
			"springdoc-openapi is only added to pom.xml; add it to %s to serve the API docs", name))
	}
	return nil
}

// Files returns the artifact paths in write order
func (p *Plan) Files() []string {
	files := make([]string, 0, len(p.Artifacts))
	for _, a := range p.Artifacts {
		files = append(files, a.Path)
	}
	return files
}
