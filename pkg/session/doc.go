// Package session keeps the panel user's profile and theme preference.
//
// The session is an explicit value loaded from a Storage backend and passed
// to whoever needs it. Every change is saved immediately under the keys
// "userProfile" and "darkMode" as JSON, so a later Load sees it. Two
// backends exist: MemoryStorage for tests and one-shot runs, and
// SQLiteStorage for a durable per-user store (pure Go "sqlite" driver by
// default, cgo "sqlite3" driver on request).
package session
