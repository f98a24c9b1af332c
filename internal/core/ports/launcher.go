package ports

import (
	"context"

	"go.trai.ch/kmak/internal/core/domain"
)

// Launcher defines the interface for running a single command line.
//
//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	// Launch spawns the command, waits for it to exit and reports its status.
	//
	// A non-nil error means the process was never started, in which case
	// Started is false, or that waiting for it failed. A command that ran and
	// exited nonzero is reported through the result with a nil error.
	Launch(ctx context.Context, cmd domain.Command) (domain.LaunchResult, error)
}
