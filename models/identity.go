// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the caller identity resolved from a verified bearer token.
//
// An Identity is produced only by a successful token verification and is
// attached to the request context for the lifetime of a single request.
// Handlers must treat it as read-only.
type Identity struct {
	// SubjectID is the account identifier carried in the "sub" claim.
	SubjectID string `json:"id"`

	// Email is the account e-mail carried in the "email" claim.
	Email string `json:"email"`

	// Role is the account role carried in the "role" claim and checked
	// against per-route allow-lists.
	Role string `json:"role"`
}

// Roles known to the service.
const (
	RoleUser   = "user"
	RoleRider  = "rider"
	RoleDriver = "driver"
	RoleAdmin  = "admin"
)

// SelfAssignableRoles are the roles a client may request at registration.
func SelfAssignableRoles() []string {
	return []string{RoleUser, RoleRider, RoleDriver}
}
