package db

import "errors"

var (
	ErrKeyNotFound    = errors.New("key not found in db")
	ErrIteratorCreate = errors.New("failed to create iterator")
)
