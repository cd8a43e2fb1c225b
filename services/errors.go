package services

import "errors"

// Service errors form the taxonomy the controllers map onto HTTP
// statuses: *NotFound -> 404 (400 for a missing relation row),
// AlreadyExists/SelfFollow/Validation/EmptyCart/WrongPassword -> 400,
// Forbidden -> 403. Wrap with fmt.Errorf("%w: ...") to add detail.
var (
	ErrNotFound       = errors.New("not found")
	ErrRecipeNotFound = errors.New("recipe does not exist")
	ErrUserNotFound   = errors.New("user not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrSelfFollow     = errors.New("cannot subscribe to yourself")
	ErrValidation     = errors.New("validation failed")
	ErrForbidden      = errors.New("forbidden")
	ErrEmptyCart      = errors.New("shopping cart is empty")
	ErrWrongPassword  = errors.New("wrong current password")
)
