package admin

import (
	"errors"
)

var (
	ErrVenueNotFound   = errors.New("venue not found")
	ErrVenueConflict   = errors.New("venue already exists")
	ErrVenueHasSlot    = errors.New("venue holds a homepage slot")
	ErrSlotTaken       = errors.New("homepage slot already taken")
	ErrSlotEmpty       = errors.New("homepage slot is empty")
	ErrInvalidPriority = errors.New("priority must be 1..3 or empty")
	ErrInvalidPosition = errors.New("slot position must be 1..12")
	ErrInvalidStatus   = errors.New("unknown venue status")
)
