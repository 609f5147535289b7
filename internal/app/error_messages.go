// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// ride-hail server handlers, middleware and services.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of the error envelope. Keeping them in one place ensures
// consistent wording throughout the API and lets tests match on them.
package app

const (
	// MsgNoTokenProvided is returned when a protected route is called
	// without a usable "Authorization: Bearer <token>" header.
	MsgNoTokenProvided = "No token provided"

	// MsgInvalidOrExpiredToken is returned for every token verification
	// failure. The wording never reveals which check failed.
	MsgInvalidOrExpiredToken = "Invalid or expired token"

	// MsgUserNotAuthenticated is returned when role checks run without a
	// verified identity in the request context.
	MsgUserNotAuthenticated = "User not authenticated"

	// MsgInsufficientPermissions is returned when the caller's role is not
	// in the route allow-list.
	MsgInsufficientPermissions = "Insufficient permissions"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgLocationsRequired is returned when a ride request lacks pickup or
	// dropoff location.
	MsgLocationsRequired = "Pickup and dropoff locations are required"

	// MsgInvalidPickupCoordinates is returned when the pickup coordinate is
	// out of range.
	MsgInvalidPickupCoordinates = "Invalid pickup coordinates"

	// MsgInvalidDropoffCoordinates is returned when the dropoff coordinate
	// is out of range.
	MsgInvalidDropoffCoordinates = "Invalid dropoff coordinates"

	// MsgInvalidRideType is returned for ride types other than economy,
	// premium and xl.
	MsgInvalidRideType = "Invalid ride type"

	// MsgInvalidProvider is returned when booking names an unknown provider.
	MsgInvalidProvider = "Invalid provider"

	// MsgInvalidEmail is returned for malformed e-mail addresses.
	MsgInvalidEmail = "Invalid email address"

	// MsgInvalidPhone is returned for malformed phone numbers.
	MsgInvalidPhone = "Invalid phone number"

	// MsgPasswordTooShort is returned when a password has fewer than
	// eight characters.
	MsgPasswordTooShort = "Password must be at least 8 characters long"

	// MsgPasswordTooLong is returned when a password exceeds what the
	// password hash can represent.
	MsgPasswordTooLong = "Password must be at most 72 bytes long"

	// MsgInvalidRole is returned when registration asks for a role that
	// cannot be self-assigned.
	MsgInvalidRole = "Invalid role"

	// MsgEmailAlreadyRegistered is returned on duplicate registration.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgInvalidEmailOrPassword is returned on failed login. Unknown e-mail
	// and wrong password are reported identically.
	MsgInvalidEmailOrPassword = "Invalid email or password"

	// MsgInvalidRating is returned when a review rating is outside 1..5.
	MsgInvalidRating = "Rating must be between 1 and 5"

	// MsgCommentTooLong is returned when a review comment exceeds the limit.
	MsgCommentTooLong = "Comment must be at most 500 characters"

	// MsgRideNotFound is returned when a ride does not exist or belongs to
	// another account.
	MsgRideNotFound = "Ride not found"

	// MsgRideAlreadyReviewed is returned on a second review of one ride.
	MsgRideAlreadyReviewed = "Ride already reviewed"

	// MsgRouteNotFound is returned for unknown routes and methods.
	MsgRouteNotFound = "Route not found"

	// MsgInternalServerError replaces the message of unclassified faults
	// outside development mode.
	MsgInternalServerError = "Internal Server Error"
)
