package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kmak/internal/adapters/logger"
	"go.trai.ch/kmak/internal/core/ports"
)

const (
	// FileSystemNodeID is the unique identifier for the filesystem Graft node.
	FileSystemNodeID graft.ID = "adapter.fs"
	// ScriptLoaderNodeID is the unique identifier for the script loader Graft node.
	ScriptLoaderNodeID graft.ID = "adapter.script_loader"
)

func init() {
	graft.Register(graft.Node[FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (FileSystem, error) {
			return NewOSFS(), nil
		},
	})

	graft.Register(graft.Node[ports.ScriptLoader]{
		ID:        ScriptLoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FileSystemNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ScriptLoader, error) {
			fsys, err := graft.Dep[FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScriptLoader(fsys, log), nil
		},
	})
}
