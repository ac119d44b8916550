package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/specialistvlad/funcgrid/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing. Results are
// written to a temporary directory unless config sets one.
func SetupAppTest(t *testing.T, config *Config, modules ...registry.Module) (*App, *SafeBuffer) {
	t.Helper()

	logBuffer := &SafeBuffer{}
	config.LogLevel = "debug"
	if config.ResultsDir == "" {
		config.ResultsDir = t.TempDir()
	}
	testApp, err := NewApp(logBuffer, config, modules...)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	t.Cleanup(func() {
		if err := testApp.Close(); err != nil {
			t.Errorf("failed to close app: %v", err)
		}
		if os.Getenv("FUNCGRID_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
