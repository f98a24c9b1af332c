package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kmak/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/kmak/internal/adapters/console" //nolint:depguard // Wired in app layer
	"go.trai.ch/kmak/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/kmak/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/kmak/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/kmak/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the objects the command line entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ScriptLoaderNodeID,
			shell.NodeID,
			console.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	scriptLoader, err := graft.Dep[ports.ScriptLoader](ctx)
	if err != nil {
		return nil, err
	}

	launcher, err := graft.Dep[ports.Launcher](ctx)
	if err != nil {
		return nil, err
	}

	out, err := graft.Dep[ports.Console](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(configLoader, scriptLoader, launcher, out, log), nil
}
