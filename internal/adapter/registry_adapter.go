package adapter

import (
	"context"
	"fmt"
	"log/slog"
)

// RegistryAdapter models the release-registry round trip performed before
// tagging a release. The real registry is out of reach from developer
// machines, so the local implementation only checks the coordinates and
// approves.
type RegistryAdapter interface {
	Validate(ctx context.Context, project, version string) error
}

// SimulatedRegistryAdapter approves any well-formed project/version pair.
type SimulatedRegistryAdapter struct{}

// NewSimulatedRegistryAdapter constructs a SimulatedRegistryAdapter.
func NewSimulatedRegistryAdapter() *SimulatedRegistryAdapter {
	return &SimulatedRegistryAdapter{}
}

// Validate checks the release coordinates and simulates a successful
// registry response.
func (r *SimulatedRegistryAdapter) Validate(ctx context.Context, project, version string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if project == "" {
		return fmt.Errorf("registry validation: project name is empty")
	}

	if version == "" {
		return fmt.Errorf("registry validation: version is empty")
	}

	slog.Info("registry validation simulated", "project", project, "version", version)

	return nil
}
