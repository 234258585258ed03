package adapter

import (
	"context"
	"testing"
)

func TestSimulatedRegistryAdapter_Validate(t *testing.T) {
	registry := NewSimulatedRegistryAdapter()
	ctx := context.Background()

	if err := registry.Validate(ctx, "demo", "1.0.0"); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if err := registry.Validate(ctx, "", "1.0.0"); err == nil {
		t.Fatalf("Validate() expected error for empty project")
	}

	if err := registry.Validate(ctx, "demo", ""); err == nil {
		t.Fatalf("Validate() expected error for empty version")
	}
}

func TestSimulatedRegistryAdapter_CancelledContext(t *testing.T) {
	registry := NewSimulatedRegistryAdapter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := registry.Validate(ctx, "demo", "1.0.0"); err == nil {
		t.Fatalf("Validate() expected error for cancelled context")
	}
}
