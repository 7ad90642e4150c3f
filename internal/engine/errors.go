package engine

import "errors"

// Rejected operations are no-ops by design; these sentinels let callers
// render the reason inline without rolling anything back.
var (
	ErrUnknownItem       = errors.New("unknown item")
	ErrItemNotPriced     = errors.New("item has no price")
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrItemNotOwned      = errors.New("item not in inventory")
	ErrSubjectNotFound   = errors.New("subject not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrAlreadyCompleted  = errors.New("task is already completed")
	ErrEmptyTitle        = errors.New("title is required")
)
