package actions

import "errors"

var (
	ErrDuplicateAccount    = errors.New("account with this name, last-4 and type already exists")
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)
