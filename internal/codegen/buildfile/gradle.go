package buildfile

import (
	"strings"

	"github.com/bootgen-dev/bootgen/internal/codegen/writer"
)

func gradle(opts Options, drv dependency) string {
	w := writer.NewWriter("    ")

	w.WriteBlock("plugins {", "}", func() {
		w.WriteLine("id 'java'")
		w.WriteLinef("id 'org.springframework.boot' version '%s'", springBootVersion)
		w.WriteLinef("id 'io.spring.dependency-management' version '%s'", dependencyManagementVers)
	})
	w.BlankLine()

	w.WriteLinef("group = %s", quoteGroovy(opts.BasePackage))
	w.WriteLinef("version = '%s'", projectVersion)
	w.WriteLinef("sourceCompatibility = '%s'", javaVersion)
	w.BlankLine()

	w.WriteBlock("configurations {", "}", func() {
		w.WriteBlock("compileOnly {", "}", func() {
			w.WriteLine("extendsFrom annotationProcessor")
		})
	})
	w.BlankLine()

	w.WriteBlock("repositories {", "}", func() {
		w.WriteLine("mavenCentral()")
	})
	w.BlankLine()

	w.WriteBlock("dependencies {", "}", func() {
		w.WriteLinef("implementation '%s'", starterWeb.gradle())
		w.WriteLinef("implementation '%s'", starterDataJPA.gradle())
		w.WriteLinef("runtimeOnly '%s'", drv.gradle())
		w.WriteLinef("compileOnly '%s'", lombok.gradle())
		w.WriteLinef("annotationProcessor '%s'", lombok.gradle())
		w.WriteLinef("testImplementation '%s'", starterTest.gradle())
	})
	w.BlankLine()

	w.WriteBlock("tasks.named('test') {", "}", func() {
		w.WriteLine("useJUnitPlatform()")
	})
	w.BlankLine()

	w.WriteBlock("bootJar {", "}", func() {
		w.WriteLinef("archiveFileName = %s", quoteGroovy(opts.ProjectName+".jar"))
		w.WriteLinef("mainClass = %s", quoteGroovy(opts.MainClass))
	})

	return w.String()
}

var groovyEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quoteGroovy wraps s in a single-quoted Groovy string literal
func quoteGroovy(s string) string {
	return "'" + groovyEscaper.Replace(s) + "'"
}
