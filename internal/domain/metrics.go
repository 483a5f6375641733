package domain

// InviteRecorder observes invite lifecycle events. Implementations must be
// safe for concurrent use.
type InviteRecorder interface {
	InvitesCreated(n int)
	InviteStatusChanged(status InviteStatus)
}
