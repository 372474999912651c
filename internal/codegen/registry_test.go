package codegen

import (
	"errors"
	"testing"

	"github.com/bootgen-dev/bootgen/internal/codegen/java"
	"github.com/bootgen-dev/bootgen/internal/naming"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockGenerator is a test generator
type mockGenerator struct {
	kind string
	err  error
}

func (m *mockGenerator) Generate(names naming.Variants) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []byte("mock " + names.Pascal), nil
}

func (m *mockGenerator) Kind() string {
	return m.kind
}

func (m *mockGenerator) Path(names naming.Variants) string {
	return names.Camel + "/Mock.java"
}

func TestRegistry_NewRegistry(t *testing.T) {
	// Test: New registry is empty by default
	r := NewRegistry()
	assert.NotNil(t, r)
	assert.Empty(t, r.Kinds())
}

func TestRegistry_Register(t *testing.T) {
	// Test: Register custom generator and receive the base package
	r := NewRegistry()

	var gotPackage string
	r.Register("mock", func(basePackage string) Generator {
		gotPackage = basePackage
		return &mockGenerator{kind: "mock"}
	})

	gen, err := r.Get("mock", "com.example")
	require.NoError(t, err)
	assert.Equal(t, "mock", gen.Kind())
	assert.Equal(t, "com.example", gotPackage)
}

func TestRegistry_UnsupportedKind(t *testing.T) {
	// Test: Error for unsupported kind
	r := NewRegistry()

	gen, err := r.Get("unknown", "com.example")
	assert.Error(t, err)
	assert.Nil(t, gen)
	assert.Contains(t, err.Error(), "unsupported artifact kind: unknown")
}

func TestRegistry_Kinds(t *testing.T) {
	// Test: Kinds are sorted for stable listings
	r := NewRegistry()
	for _, k := range []string{"service", "controller", "entity"} {
		kind := k
		r.Register(kind, func(string) Generator { return &mockGenerator{kind: kind} })
	}

	assert.Equal(t, []string{"controller", "entity", "service"}, r.Kinds())
}

func TestDefaultRegistry_HasEveryJavaKind(t *testing.T) {
	// Test: every renderer kind the orchestrator asks for is registered
	for _, kind := range java.Kinds() {
		gen, err := DefaultRegistry.Get(kind, "com.example")
		require.NoError(t, err, kind)
		assert.Equal(t, kind, gen.Kind())
	}
	assert.Len(t, DefaultRegistry.Kinds(), len(java.Kinds()))
}

func TestRender(t *testing.T) {
	names := naming.Derive("order item")

	art, err := Render(&mockGenerator{kind: "mock"}, names)
	require.NoError(t, err)
	assert.Equal(t, Artifact{Path: "orderItem/Mock.java", Content: "mock OrderItem"}, art)

	boom := errors.New("boom")
	_, err = Render(&mockGenerator{kind: "mock", err: boom}, names)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to render mock")
}
