// Package constants defines shared constant values used across the application.
package constants

// Environment names
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Context keys set by the auth middleware
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// DefaultAreaPrefix is used for ticket numbering when an area has no prefix.
const DefaultAreaPrefix = "GEN"

// Upload folders for the file storage service.
const (
	UploadFolderTickets  = "tickets"
	UploadFolderProfiles = "profiles"
)
