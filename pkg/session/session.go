package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Profile is the signed-in user's profile.
type Profile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
}

// DefaultProfile returns the profile used when none is stored.
func DefaultProfile() Profile {
	return Profile{
		Name:   "Administrador",
		Email:  "admin@portvr.com",
		Bio:    "Gerente de Operações e Treinamento",
		Avatar: "https://github.com/shadcn.png",
	}
}

// ProfileUpdate is a partial profile change. Nil fields are left as is.
type ProfileUpdate struct {
	Name   *string
	Email  *string
	Bio    *string
	Avatar *string
}

// Empty reports whether the update changes nothing.
func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Bio == nil && u.Avatar == nil
}

func (u ProfileUpdate) apply(p Profile) Profile {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.Avatar != nil {
		p.Avatar = *u.Avatar
	}
	return p
}

// Session holds the user profile and the dark-mode preference, loaded from
// a Storage at startup and written back on every change. It is safe for
// concurrent use.
type Session struct {
	mu       sync.RWMutex
	store    Storage
	profile  Profile
	darkMode bool
	logger   *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Load reads the session from store. Missing or unreadable values fall back
// to the default profile and light mode.
func Load(ctx context.Context, store Storage, opts ...Option) (*Session, error) {
	s := &Session{
		store:   store,
		profile: DefaultProfile(),
		logger:  slog.Default().With("component", "session"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if ok, err := s.read(ctx, KeyProfile, &s.profile); err != nil {
		return nil, err
	} else if !ok {
		s.profile = DefaultProfile()
	}
	if ok, err := s.read(ctx, KeyDarkMode, &s.darkMode); err != nil {
		return nil, err
	} else if !ok {
		s.darkMode = false
	}
	return s, nil
}

// read decodes key into dst. ok is false when the key is absent or holds
// invalid JSON; storage failures are returned.
func (s *Session) read(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("ignoring unreadable session value", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (s *Session) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Profile returns the current profile.
func (s *Session) Profile() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// DarkMode reports whether dark mode is on.
func (s *Session) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}

// UpdateProfile merges u into the profile and saves it.
func (s *Session) UpdateProfile(ctx context.Context, u ProfileUpdate) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := u.apply(s.profile)
	if err := s.write(ctx, KeyProfile, next); err != nil {
		return s.profile, err
	}
	s.profile = next
	s.logger.Info("profile updated", "name", next.Name, "email", next.Email)
	return next, nil
}

// ToggleDarkMode flips dark mode, saves it and returns the new value.
func (s *Session) ToggleDarkMode(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.setDarkMode(ctx, !s.darkMode); err != nil {
		return s.darkMode, err
	}
	return s.darkMode, nil
}

// SetDarkMode sets dark mode and saves it.
func (s *Session) SetDarkMode(ctx context.Context, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setDarkMode(ctx, on)
}

func (s *Session) setDarkMode(ctx context.Context, on bool) error {
	if err := s.write(ctx, KeyDarkMode, on); err != nil {
		return err
	}
	s.darkMode = on
	s.logger.Debug("dark mode changed", "dark_mode", on)
	return nil
}

// Logout removes the stored profile and resets the session to the default
// profile. The dark-mode preference survives.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Delete(ctx, KeyProfile); err != nil {
		return fmt.Errorf("failed to remove %s: %w", KeyProfile, err)
	}
	s.profile = DefaultProfile()
	s.logger.Info("session ended")
	return nil
}
