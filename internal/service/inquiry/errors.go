package inquiry

import (
	"errors"
)

var (
	ErrVenueNotFound   = errors.New("venue not found")
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrRateLimited     = errors.New("rate limited")
)
