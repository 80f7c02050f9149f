package catalog

import "errors"

var (
	ErrGameNotFound         = errors.New("game not found")
	ErrFamilyMemberNotFound = errors.New("family member not found")
	ErrPlayLogNotFound      = errors.New("play log not found")
	ErrDuplicateMember      = errors.New("family member already exists")
	ErrTitleRequired        = errors.New("title is required")
	ErrNameRequired         = errors.New("name is required")
	ErrInvalidRating        = errors.New("rating must be between 1 and 10")
	ErrInvalidTimestamp     = errors.New("played_at is not a valid timestamp")
	ErrInvalidDuration      = errors.New("duration_minutes must be positive")
)
