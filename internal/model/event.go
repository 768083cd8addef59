package model

import "time"

type EventType string

const (
	EventCreate EventType = "CREATE"
	EventWrite  EventType = "WRITE"
	EventRemove EventType = "REMOVE"
	EventRename EventType = "RENAME"
)

type FileEvent struct {
	Type      EventType
	Path      string
	Timestamp time.Time
}

// CopyResult records one copy attempt. It only feeds logging; a failed
// attempt never ends the watch.
type CopyResult struct {
	Event   FileEvent
	SrcPath string
	DstPath string
	Bytes   int64
	Err     error
}
