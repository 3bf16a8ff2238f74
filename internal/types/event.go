package types

// EventKind is the kind of change observed on a path.
type EventKind int

const (
	Created EventKind = iota + 1
	Deleted
	Modified
)

func (k EventKind) String() string {
	switch k {
	case Created:
		return "created"
	case Deleted:
		return "deleted"
	case Modified:
		return "modified"
	}
	return "unknown"
}

// Event is a single filesystem change delivered by the watcher.
type Event struct {
	Path  string
	IsDir bool
	Kind  EventKind
}
