package constants

import "golang.org/x/crypto/bcrypt"

// Session
const (
	SessionCookieName = "qa_session"
	ContextKeyUserID  = "user_id"
)

// Authentication
const (
	MinPasswordLength = 8

	// PasswordHashCost is the bcrypt work factor for stored password hashes.
	PasswordHashCost = bcrypt.DefaultCost + 2
)

// Pagination
const (
	MinPage         = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Voting
const (
	Upvote   = 1
	Downvote = -1
)
