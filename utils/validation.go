package utils

import (
	"regexp"
	"strings"

	"github.com/wavegames/walletlink/models"
)

// ValidAddressRegex validates Ethereum-style wallet addresses. Mixed case is
// accepted on the wire and normalized before any lookup, since the stored
// identity key is lowercase.
var ValidAddressRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// NormalizeAddress lowercases an address so equal wallets compare equal.
func NormalizeAddress(address string) string {
	return strings.ToLower(address)
}

// IsValidAddress reports whether address is a well-formed wallet address.
func IsValidAddress(address string) bool {
	return ValidAddressRegex.MatchString(address)
}

// ValidateLinkRequest validates a discord link request
func ValidateLinkRequest(req *models.LinkDiscordRequest) []models.FieldError {
	var errors []models.FieldError

	if req.Token == "" {
		errors = append(errors, models.FieldError{
			Field:   "token",
			Message: "Token is required",
		})
	}

	if req.Discord == "" {
		errors = append(errors, models.FieldError{
			Field:   "discord",
			Message: "Discord id is required",
		})
	}

	if req.Address == "" {
		errors = append(errors, models.FieldError{
			Field:   "address",
			Message: "Address is required",
		})
	} else if !IsValidAddress(req.Address) {
		errors = append(errors, models.FieldError{
			Field:   "address",
			Message: "Invalid Ethereum address",
		})
	}

	return errors
}

// ValidateUserCreateRequest validates a user creation request
func ValidateUserCreateRequest(req *models.UserCreateRequest) []models.FieldError {
	var errors []models.FieldError

	if req.Address == "" {
		errors = append(errors, models.FieldError{
			Field:   "address",
			Message: "Address is required",
		})
	} else if !IsValidAddress(req.Address) {
		errors = append(errors, models.FieldError{
			Field:   "address",
			Message: "Invalid Ethereum address",
		})
	}

	return errors
}
