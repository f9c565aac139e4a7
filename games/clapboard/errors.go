/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package clapboard

import "errors"

var (
	// ErrNotFound means a guess matched no catalog entry. Callers should
	// surface it as a correctable input error.
	ErrNotFound = errors.New("movie not found")

	// ErrInvalidInput covers blank guesses, unknown hint kinds, rounds out
	// of range and malformed date keys.
	ErrInvalidInput = errors.New("invalid input")
)
