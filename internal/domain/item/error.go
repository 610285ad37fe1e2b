package item

import "errors"

var (
	ErrNotFound = errors.New("item not found")
	// После переупорядочивания у владельца совпали позиции.
	ErrPositionConflict = errors.New("item positions conflict")
)
