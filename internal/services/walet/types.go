package walet

// Action names a mutation reported to a Notifier.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Operation names used for metrics.
const (
	OpCreate        = "create"
	OpUpdate        = "update"
	OpPartialUpdate = "partial_update"
	OpGetAll        = "get_all"
	OpGet           = "get"
	OpDelete        = "delete"
)

// WaletConfig holds configuration for walet operations
type WaletConfig struct {
	// HashPasswords bcrypt-hashes passwords before they are stored.
	HashPasswords bool
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}
