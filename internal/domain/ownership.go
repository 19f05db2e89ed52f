package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrOwnershipConflict indicates that the ownership step of a compound
	// write failed after the account row was written.
	ErrOwnershipConflict = errors.New("ownership assignment failed")
	// ErrOwnershipExists indicates that the client already owns the account.
	ErrOwnershipExists = errors.New("ownership already exists")
	// ErrOwnershipNotFound indicates that the client does not own the account.
	ErrOwnershipNotFound = errors.New("ownership not found")
	// ErrLastOwner indicates an attempt to unlink the only owner of an
	// account that still holds money.
	ErrLastOwner = errors.New("cannot remove the last owner of an account with a balance")
)

// OwnershipType tags a client-account link.
//
// The tag is set when the link is created and is not re-derived later;
// whether an account is joint depends only on how many links it has.
type OwnershipType string

// Supported ownership types.
const (
	OwnershipPrimary OwnershipType = "PRIMARY"
	OwnershipJoint   OwnershipType = "JOINT"
)

// ParseOwnershipType returns the ownership type stored as s.
func ParseOwnershipType(s string) (OwnershipType, error) {
	switch t := OwnershipType(s); t {
	case OwnershipPrimary, OwnershipJoint:
		return t, nil
	}

	return "", fmt.Errorf("%w: ownership type %q", ErrInvalidInput, s)
}

// Ownership links a client to an account.
type Ownership struct {
	ClientID  int64         `json:"customer_id"`
	AccountID int64         `json:"account_id"`
	Type      OwnershipType `json:"ownership_type"`
	CreatedAt time.Time     `json:"created_at"`
}
