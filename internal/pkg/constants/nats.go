package constants

// JetStream streams and consumers
const (
	StreamWorkspace            = "WORKSPACE"
	ConsumerInvitationNotifier = "invitation-notifier"
)

// NATS Subjects
const (
	// Workspace Service
	SubjectInvitationBatch = "workspace.invitations.batch"
)
