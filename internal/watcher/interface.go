package watcher

import "context"

// Watcher monitors a drop folder and hands each new video to an EventHandler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one detected file.
type EventHandler func(ctx context.Context, filePath string) error
