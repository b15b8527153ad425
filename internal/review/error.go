package review

import "errors"

var (
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrProductRequired  = errors.New("product id is required")
)
