package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bootgen-dev/bootgen/internal/config"
	"github.com/bootgen-dev/bootgen/internal/scaffold"
)

const specYAML = `project: demo
basePackage: com.acme
module: product
buildTool: gradle
configFormat: yml
database:
  type: postgresql
  name: inventory
  createIfNotExists: true
`

func writeSpecFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGenerateCommand_Run(t *testing.T) {
	dir := t.TempDir()
	path := writeSpecFile(t, dir, specYAML)

	var out bytes.Buffer
	cmd := &GenerateCommand{
		options:    GenerateOptions{File: path},
		filesystem: scaffold.OSFileSystem(),
		logger:     zerolog.Nop(),
		out:        &out,
	}
	require.NoError(t, cmd.Run(context.Background()))

	gradle, err := os.ReadFile(filepath.Join(dir, "demo", "build.gradle"))
	require.NoError(t, err)
	assert.Contains(t, string(gradle), "runtimeOnly 'org.postgresql:postgresql'")

	cfg, err := os.ReadFile(filepath.Join(dir, "demo", "src", "main", "resources", "application.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "jdbc:postgresql://localhost:5432/inventory?createDatabaseIfNotExist=true")

	assert.Contains(t, out.String(), "gradle bootRun")

	// Test: a second run refuses to overwrite unless forced
	err = cmd.Run(context.Background())
	assert.ErrorIs(t, err, scaffold.ErrProjectExists)

	cmd.options.Force = true
	assert.NoError(t, cmd.Run(context.Background()))
}

func TestGenerateCommand_OutputOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeSpecFile(t, dir, specYAML)
	fs := newMockFileSystem()

	cmd := &GenerateCommand{
		options:    GenerateOptions{File: path, Output: "/elsewhere"},
		filesystem: fs,
		logger:     zerolog.Nop(),
		out:        &bytes.Buffer{},
	}
	require.NoError(t, cmd.Run(context.Background()))
	assert.Contains(t, fs.files, filepath.Join("/elsewhere", "demo", "build.gradle"))
}

func TestGenerateCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{"invalid spec", "project: demo\n", "failed to load"},
		{"empty module name", "project: demo\nbasePackage: com.acme\nmodule: '!!!'\n", "module name"},
		{"keyword module name", "project: demo\nbasePackage: com.acme\nmodule: class\n", "reserved word"},
		{"mysql without name", "project: demo\nbasePackage: com.acme\nmodule: product\ndatabase:\n  type: mysql\n", "database name for mysql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSpecFile(t, dir, tt.content)
			cmd := &GenerateCommand{
				options:    GenerateOptions{File: path, DryRun: true},
				filesystem: newMockFileSystem(),
				logger:     zerolog.Nop(),
				out:        &bytes.Buffer{},
			}
			err := cmd.Run(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestWatchCommand_RegeneratesOnChange(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dir := t.TempDir()
	path := writeSpecFile(t, dir, specYAML)

	cmd := &WatchCommand{
		options:    WatchOptions{File: path},
		filesystem: scaffold.OSFileSystem(),
		logger:     zerolog.Nop(),
		out:        &bytes.Buffer{},
		ready:      make(chan struct{}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- cmd.Run(ctx)
	}()

	select {
	case <-cmd.ready:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not start")
	}

	manifest := filepath.Join(dir, "demo", "build.gradle")
	_, err := os.Stat(manifest)
	require.NoError(t, err, "initial generation")

	// Switch to maven: the pom appears after regeneration
	writeSpecFile(t, dir, "project: demo\nbasePackage: com.acme\nmodule: product\n")

	assert.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, "demo", "pom.xml"))
		return err == nil
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
