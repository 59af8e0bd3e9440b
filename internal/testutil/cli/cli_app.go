package cli

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"

	"github.com/aretedriver/gemba/internal/app"
	gembacli "github.com/aretedriver/gemba/internal/cli"
	"github.com/aretedriver/gemba/internal/database"
)

// SetupCLITest creates an in-memory store and an application container for
// command tests. The caller owns the returned database handle.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()

	db, err := database.InitDB(context.Background(), database.MemoryDSN)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	return db, app.New(database.NewRepository(db))
}

// CaptureOutputFunc captures stdout during function execution
func CaptureOutputFunc(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// ExecuteCLICommand executes a CLI command against a test app instance.
// The app is injected through the command context so the command reuses the
// test database instead of opening its own.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetArgs(args)

	ctxWithApp := gembacli.WithApp(context.Background(), testApp)
	cmd.SetContext(ctxWithApp)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := CaptureOutputFunc(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}
