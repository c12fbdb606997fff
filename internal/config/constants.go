package config

const (
	DefaultDatabasePath = "./eventadmin.db"

	// DefaultMaxUploadBytes caps a single upload at 10 MiB.
	DefaultMaxUploadBytes = 10 << 20
)
