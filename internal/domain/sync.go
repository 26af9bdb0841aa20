package domain

import "context"

// SyncOutcome reports what the sync agent did with a change.
type SyncOutcome string

const (
	// SyncDisabled means the sync settings are incomplete; nothing was
	// written, committed, or pushed. Not an error.
	SyncDisabled SyncOutcome = "disabled"
	// SyncClean means staging produced no net change, so no commit was made.
	SyncClean SyncOutcome = "clean"
	// SyncPushed means a commit was created and pushed to the remote.
	SyncPushed SyncOutcome = "pushed"
)

// SyncAgent commits the given data files (paths relative to the working copy)
// plus the sync marker to the local repository and pushes to the remote.
// Any staging, commit, or push failure propagates; there is no retry.
type SyncAgent interface {
	Enabled() bool
	Sync(ctx context.Context, files ...string) (SyncOutcome, error)
}
