package writer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_BasicWriting(t *testing.T) {
	// Test: Basic write operations
	w := NewWriter("    ")

	w.Write("hello")
	w.Write(" world")

	assert.Equal(t, "hello world", w.String())
}

func TestWriter_Indentation(t *testing.T) {
	// Test: Proper indentation handling with a Java-style indent
	w := NewWriter("    ")

	w.WriteLine("public class Foo {")
	w.Indent()
	w.WriteLine("private Long id;")
	w.Dedent()
	w.WriteLine("}")

	assert.Equal(t, "public class Foo {\n    private Long id;\n}\n", w.String())
}

func TestWriter_BlankLine(t *testing.T) {
	// Test: BlankLine never stacks empty lines
	w := NewWriter("\t")

	w.BlankLine() // no-op on empty output
	w.WriteLine("line1")
	w.BlankLine()
	w.BlankLine()
	w.WriteLine("line2")

	lines := strings.Split(w.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"line1", "", "line2", ""}, lines)
}

func TestWriter_WriteBlock(t *testing.T) {
	// Test: WriteBlock with and without a closer
	w := NewWriter("  ")

	w.WriteBlock("spring:", "", func() {
		w.WriteBlock("jpa:", "", func() {
			w.WriteLine("show-sql: true")
		})
	})
	assert.Equal(t, "spring:\n  jpa:\n    show-sql: true\n", w.String())

	w.Reset()
	w.WriteBlock("void run() {", "}", func() {
		w.WriteLine("return;")
	})
	assert.Equal(t, "void run() {\n  return;\n}\n", w.String())
}

func TestWriter_Javadoc(t *testing.T) {
	// Test: Javadoc block with separator line, indented
	w := NewWriter("    ")
	w.Indent()
	w.WriteJavadoc("Finds a record.", "", "@param id The id.")

	expected := "    /**\n     * Finds a record.\n     *\n     * @param id The id.\n     */\n"
	assert.Equal(t, expected, w.String())

	w.Reset()
	w.WriteJavadoc()
	assert.Equal(t, "", w.String())
}

func TestWriter_Elements(t *testing.T) {
	// Test: XML element helpers
	w := NewWriter("    ")

	w.WriteElementBlock("dependency", func() {
		w.WriteElement("groupId", "org.postgresql")
		w.WriteElement("artifactId", "postgresql")
	})

	expected := "<dependency>\n    <groupId>org.postgresql</groupId>\n    <artifactId>postgresql</artifactId>\n</dependency>\n"
	assert.Equal(t, expected, w.String())
}

func TestWriter_FormattedAndLines(t *testing.T) {
	w := NewWriter("\t")

	w.WriteLinef("%s=%d", "port", 8080)
	w.WriteLines("a", "b")
	w.WriteComment("note")

	assert.Equal(t, "port=8080\na\nb\n// note\n", w.String())
	assert.Equal(t, []byte(w.String()), w.Bytes())
}

func TestWriter_IndentDedentBounds(t *testing.T) {
	// Test: Dedent doesn't go below zero
	w := NewWriter("\t")

	w.Dedent()
	assert.Equal(t, 0, w.IndentLevel())

	w.Indent()
	w.Indent()
	assert.Equal(t, 2, w.IndentLevel())

	w.Reset()
	assert.Equal(t, 0, w.IndentLevel())
	assert.Equal(t, "", w.String())
}
