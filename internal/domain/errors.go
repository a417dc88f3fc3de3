package domain

import "errors"

var (
	ErrMemoNotFound  = errors.New("memo not found")
	ErrInvalidMemo   = errors.New("invalid memo data")
	ErrInvalidScore  = errors.New("invalid score data")
	ErrEmptyUsername = errors.New("empty username")
	ErrEmptyMessage  = errors.New("empty message")
)
