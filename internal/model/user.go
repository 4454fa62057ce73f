// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for users, chats and messages.
package model

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// USER TYPE
// =============================================================================

// User represents a registered account.
//
// The Password field always holds the ENCODED form (see EncodePassword);
// the plaintext is never persisted. Users are append-only: once created they
// are neither updated nor deleted.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a User with a generated ID, the password already encoded,
// and CreatedAt set to now.
func NewUser(username, email, password string) User {
	return User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		Password:  EncodePassword(password),
		CreatedAt: time.Now(),
	}
}

// Initial returns the uppercase first rune of the username, for avatar
// rendering. Empty usernames yield "?".
func (u User) Initial() string {
	for _, r := range u.Username {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// =============================================================================
// PASSWORD ENCODING
// =============================================================================

// SECURITY: This is NOT cryptography. Passwords are stored base64-encoded so
// the raw plaintext never appears verbatim in the data files, and for no
// other reason. Anyone with file access can trivially decode them. A real
// deployment would use a salted password hash; the demo keeps the encoding
// reversible on purpose.

// EncodePassword applies the reversible demo encoding to a plaintext
// password. Credential checks compare encoded forms, never decoded ones.
func EncodePassword(plain string) string {
	return base64.StdEncoding.EncodeToString([]byte(plain))
}

// DecodePassword reverses EncodePassword. Returns false if the stored value
// is not valid base64.
func DecodePassword(encoded string) (string, bool) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", false
	}
	return string(raw), true
}

// PasswordEquals reports whether a plaintext candidate matches the user's
// stored encoded password.
func (u User) PasswordEquals(plain string) bool {
	return u.Password == EncodePassword(plain)
}
