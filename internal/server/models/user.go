// Package models defines the persistence and result types shared by the
// server layers.
package models

import "time"

// User is a persisted account record. ID is assigned by the repository at
// insert time and is immutable afterwards, as is the rest of the record.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	PasswordSalt []byte
	CreatedAt    time.Time
}
