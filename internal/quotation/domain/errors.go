package domain

import "errors"

var (
	ErrInvalidUser        = errors.New("invalid_user")
	ErrInvalidQuoteNumber = errors.New("invalid_quote_number")
	ErrNotFound           = errors.New("not_found")
	ErrNoLineItems        = errors.New("no_line_items")
)
