// Package naming derives the identifier variants used across every generated file
package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrEmptyModuleName is returned when a module name has no letters or digits
var ErrEmptyModuleName = errors.New("module name must contain at least one letter or digit")

// ErrInvalidModuleName is returned when a module name derives to something
// that is not a legal identifier in the generated sources
var ErrInvalidModuleName = errors.New("invalid module name")

// reservedWords are the keywords and literals that cannot name a package
// segment or a local variable
var reservedWords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true,
}

// IsReserved reports whether s is a keyword or literal of the target language
func IsReserved(s string) bool {
	return reservedWords[s]
}

// Variants holds the forms of a module name. All four fields come from the
// same token sequence and are never recomputed by callers.
type Variants struct {
	Pascal       string
	Camel        string
	PluralPascal string
	PluralCamel  string
}

// Derive turns a free-text module name into its naming variants.
// Any rune that is not a letter or digit separates words and is dropped.
func Derive(raw string) Variants {
	return FromPascal(toPascal(raw))
}

// FromPascal builds the variants of an identifier that is already PascalCase
// without splitting it into words again.
func FromPascal(pascal string) Variants {
	if pascal == "" {
		return Variants{}
	}
	camel := lowerFirst(pascal)
	return Variants{
		Pascal:       pascal,
		Camel:        camel,
		PluralPascal: pascal + "s",
		PluralCamel:  camel + "s",
	}
}

// Validate reports whether the variants can be used as identifiers.
// The name must start with a letter and neither camel form may be reserved.
func (v Variants) Validate() error {
	if v.Pascal == "" {
		return ErrEmptyModuleName
	}
	if first, _ := utf8.DecodeRuneInString(v.Pascal); !unicode.IsLetter(first) {
		return fmt.Errorf("%w: %q must start with a letter", ErrInvalidModuleName, v.Pascal)
	}
	for _, id := range []string{v.Camel, v.PluralCamel} {
		if IsReserved(id) {
			return fmt.Errorf("%w: %q is a reserved word", ErrInvalidModuleName, id)
		}
	}
	return nil
}

func toPascal(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))

	capitalizeNext := true
	for _, r := range raw {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			sb.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// NormalizePackage trims and lower-cases a base package
func NormalizePackage(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// PackagePath converts a dotted package into a slash separated path
func PackagePath(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}
