// Package users owns the local user record and its just-in-time
// provisioning from verified identity claims.
package users

import "time"

// User is the local identity record. It is created exactly once the first
// time a previously-unseen verified email calls in, and never updated by the
// provisioning path.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile is the slice of token claims the provisioner needs to materialize
// a user. Optional fields are empty strings when the claim was absent.
type Profile struct {
	Email             string
	GivenName         string
	FamilyName        string
	PreferredUsername string
}
