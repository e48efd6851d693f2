package services

import "errors"

var (
	// ErrInvalidToken means no token row matches the (token, discord) pair.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenAlreadyUsed means the token was redeemed before, including by
	// a concurrent request that won the race.
	ErrTokenAlreadyUsed = errors.New("token already used")

	// ErrAddressConflict means the address is already bound to a different
	// Discord account.
	ErrAddressConflict = errors.New("address already linked to another discord account")

	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)
