package main

import (
	"io"
	"log"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"productos-api/internal/handlers"
	"productos-api/internal/repositories"
)

// TestServerStartupAndHealthCheck boots the app on a real socket and checks
// that it serves and shuts down cleanly.
func TestServerStartupAndHealthCheck(t *testing.T) {
	app := newApp(repositories.NewMemoryProductRepository(), handlers.Info{
		Environment: "test",
		Table:       "productos_test",
		Region:      "us-east-1",
	})

	go func() {
		if err := app.Listen(":5099"); err != nil {
			log.Printf("Test server stopped: %v", err)
		}
	}()
	defer func() {
		if err := app.Shutdown(); err != nil {
			t.Errorf("Error during Fiber shutdown: %v", err)
		}
	}()

	// Give the server a moment to start
	time.Sleep(100 * time.Millisecond)

	// --- Test Health Endpoint ---
	resp, err := http.Get("http://localhost:5099/health")
	if err != nil {
		t.Fatalf("Health check request failed: %v", err)
	}
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), `"status":"healthy"`)

	// --- Test Unknown Route ---
	respUnknown, err := http.Get("http://localhost:5099/nope")
	if err != nil {
		t.Fatalf("Unknown route request failed: %v", err)
	}
	respUnknown.Body.Close()
	assert.Equal(t, http.StatusNotFound, respUnknown.StatusCode)
}
