// Package util contains any functions used across the application that don't match
// any other package
package util

import gonanoid "github.com/matoous/go-nanoid/v2"

const publicIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// PublicIDLength is the length of the short ids exposed in share links
const PublicIDLength = 8

// NewPublicID mints a fresh short id for a media record. Collisions are
// astronomically rare at this length and are caught by the unique
// constraint on the store, not checked here
func NewPublicID() (string, error) {
	return gonanoid.Generate(publicIDAlphabet, PublicIDLength)
}

// NewRequestID returns a random id attached to incoming webhook requests
func NewRequestID() string {
	id, err := gonanoid.New(10)
	if err != nil {
		// gonanoid only fails if the system randomness source does
		return "unknown"
	}

	return id
}
