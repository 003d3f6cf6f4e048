//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "pizzeria-api"
	ConsumerName = "kitchen-dashboard"

	StateMenuBaseline    = "menu baseline with no orders"
	StateOrderWaiting    = "order pact-order-1 is waiting"
	StateOtherInProgress = "order pact-order-2 is in progress and pact-order-3 is waiting"
)

const (
	WaitingOrderID    = "pact-order-1"
	InProgressOrderID = "pact-order-2"
	QueuedOrderID     = "pact-order-3"
	MissingOrderID    = "pact-order-404"

	ExampleUsername = "pact-customer"
	ExampleType     = "MARG"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the kitchen dashboard consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleOrderRequest provides stable test data for order creation.
func ExampleOrderRequest() map[string]any {
	return map[string]any{
		"username": ExampleUsername,
		"entries": []map[string]any{
			{"type": ExampleType, "quantity": 2, "additionalIngredients": []string{"Olive"}},
		},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
