package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/segmentio/ksuid"

	"fusion/pkg/schema"
)

// usersKey is the single document holding all registered users.
const usersKey = "fiction_fusion_users"

var emailRX = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validation and lookup failures surfaced verbatim to clients.
var (
	ErrFieldsRequired   = errors.New("All fields are required")
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters long")
	ErrUsernameTooShort = errors.New("Username must be at least 2 characters long")
	ErrInvalidEmail     = errors.New("Please enter a valid email address")
	ErrEmailTaken       = errors.New("An account with this email already exists")
	ErrUsernameTaken    = errors.New("This username is already taken")
	ErrBadCredentials   = errors.New("Invalid email or password")
	ErrUserNotFound     = errors.New("User not found")
)

// Accounts is the user registry on top of an injected KV store.
type Accounts struct {
	kv KV
}

func NewAccounts(kv KV) *Accounts {
	return &Accounts{kv: kv}
}

// Signup registers a new user and returns its public profile.
func (a *Accounts) Signup(ctx context.Context, email, password, username string) (*schema.User, error) {
	if email == "" || password == "" || username == "" {
		return nil, ErrFieldsRequired
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}
	if len(username) < 2 {
		return nil, ErrUsernameTooShort
	}
	if !emailRX.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	users, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return nil, ErrEmailTaken
		}
		if strings.EqualFold(u.Username, username) {
			return nil, ErrUsernameTaken
		}
	}

	user := schema.StoredUser{
		User: schema.User{
			ID:           ksuid.New().String(),
			Email:        strings.ToLower(email),
			Username:     username,
			Avatar:       "🎭",
			Achievements: []string{},
		},
		PasswordHash: hashPassword(password),
	}
	users = append(users, user)
	if err := a.save(ctx, users); err != nil {
		return nil, err
	}

	return &user.User, nil
}

// Login finds a user by case-insensitive email and checks the password.
func (a *Accounts) Login(ctx context.Context, email, password string) (*schema.User, error) {
	users, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			if u.PasswordHash != hashPassword(password) {
				return nil, ErrBadCredentials
			}
			return &u.User, nil
		}
	}
	return nil, ErrBadCredentials
}

// UpdateProfile applies a partial update; empty fields are left unchanged.
func (a *Accounts) UpdateProfile(ctx context.Context, id, username, avatar string) (*schema.User, error) {
	if username != "" && len(username) < 2 {
		return nil, ErrUsernameTooShort
	}

	users, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, u := range users {
		if u.ID == id {
			idx = i
			continue
		}
		if username != "" && strings.EqualFold(u.Username, username) {
			return nil, ErrUsernameTaken
		}
	}
	if idx < 0 {
		return nil, ErrUserNotFound
	}

	if username != "" {
		users[idx].Username = username
	}
	if avatar != "" {
		users[idx].Avatar = avatar
	}
	if err := a.save(ctx, users); err != nil {
		return nil, err
	}
	return &users[idx].User, nil
}

// AddAchievement appends an achievement once. The easter-egg master
// achievement also flips the profile flag.
func (a *Accounts) AddAchievement(ctx context.Context, id, achievement string) (*schema.User, error) {
	if achievement == "" {
		return nil, ErrFieldsRequired
	}

	users, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	for i, u := range users {
		if u.ID != id {
			continue
		}
		for _, existing := range u.Achievements {
			if existing == achievement {
				return &users[i].User, nil
			}
		}
		users[i].Achievements = append(users[i].Achievements, achievement)
		if achievement == "easter_egg_master" {
			users[i].EasterEggMaster = true
		}
		if err := a.save(ctx, users); err != nil {
			return nil, err
		}
		return &users[i].User, nil
	}
	return nil, ErrUserNotFound
}

// Guest returns an unregistered throwaway identity.
func Guest() schema.User {
	return schema.User{
		ID:           "guest-" + ksuid.New().String(),
		Email:        "guest@fictionfusion.com",
		Username:     "Guest User",
		Avatar:       "👤",
		IsGuest:      true,
		Achievements: []string{},
	}
}

func (a *Accounts) load(ctx context.Context) ([]schema.StoredUser, error) {
	raw, err := a.kv.Get(ctx, usersKey)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var users []schema.StoredUser
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decoding user registry: %w", err)
	}
	return users, nil
}

func (a *Accounts) save(ctx context.Context, users []schema.StoredUser) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encoding user registry: %w", err)
	}
	return a.kv.Set(ctx, usersKey, raw)
}

func hashPassword(pw string) string {
	sum := sha256.Sum256([]byte(pw))
	return hex.EncodeToString(sum[:])
}
