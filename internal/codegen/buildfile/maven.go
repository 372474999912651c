package buildfile

import (
	"encoding/xml"
	"strings"

	"github.com/bootgen-dev/bootgen/internal/codegen/writer"
)

func pom(opts Options, drv dependency) string {
	w := writer.NewWriter("    ")

	w.WriteLine(`<?xml version="1.0" encoding="UTF-8"?>`)
	w.WriteLine(`<project xmlns="http://maven.apache.org/POM/4.0.0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`)
	w.WriteLine(`         xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 https://maven.apache.org/xsd/maven-4.0.0.xsd">`)
	w.Indent()

	w.WriteElement("modelVersion", "4.0.0")
	w.WriteElementBlock("parent", func() {
		w.WriteElement("groupId", "org.springframework.boot")
		w.WriteElement("artifactId", "spring-boot-starter-parent")
		w.WriteElement("version", springBootVersion)
		w.WriteLine("<relativePath/>")
	})
	w.WriteElement("groupId", escape(opts.BasePackage))
	w.WriteElement("artifactId", escape(opts.ProjectName))
	w.WriteElement("version", projectVersion)
	w.WriteElement("name", escape(opts.ProjectName))
	w.WriteElement("description", "Demo project for Spring Boot Module: "+escape(opts.ProjectName))
	w.WriteElementBlock("properties", func() {
		w.WriteElement("java.version", javaVersion)
		w.WriteElement("start-class", escape(opts.MainClass))
	})

	w.WriteElementBlock("dependencies", func() {
		for _, d := range []dependency{starterWeb, starterDataJPA, drv, lombok, starterTest, springdoc} {
			mavenDependency(w, d)
		}
	})
	w.BlankLine()

	w.WriteElementBlock("build", func() {
		w.WriteElementBlock("plugins", func() {
			w.WriteElementBlock("plugin", func() {
				w.WriteElement("groupId", "org.springframework.boot")
				w.WriteElement("artifactId", "spring-boot-maven-plugin")
				w.WriteElementBlock("configuration", func() {
					w.WriteElementBlock("excludes", func() {
						w.WriteElementBlock("exclude", func() {
							w.WriteElement("groupId", lombok.group)
							w.WriteElement("artifactId", lombok.artifact)
						})
					})
				})
			})
		})
	})

	w.Dedent()
	w.WriteLine("</project>")
	return w.String()
}

func mavenDependency(w *writer.Writer, d dependency) {
	w.WriteElementBlock("dependency", func() {
		w.WriteElement("groupId", d.group)
		w.WriteElement("artifactId", d.artifact)
		if d.version != "" {
			w.WriteElement("version", d.version)
		}
		switch d.scope {
		case scopeRuntime:
			w.WriteElement("scope", "runtime")
		case scopeTest:
			w.WriteElement("scope", "test")
		case scopeOptional:
			w.WriteElement("optional", "true")
		}
	})
}

func escape(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
