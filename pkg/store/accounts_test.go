package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccounts() *Accounts {
	return NewAccounts(NewMemory())
}

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		username string
		wantErr  error
	}{
		{"missing email", "", "secret1", "alice", ErrFieldsRequired},
		{"missing password", "a@b.com", "", "alice", ErrFieldsRequired},
		{"missing username", "a@b.com", "secret1", "", ErrFieldsRequired},
		{"short password", "a@b.com", "12345", "alice", ErrPasswordTooShort},
		{"short username", "a@b.com", "secret1", "a", ErrUsernameTooShort},
		{"bad email no at", "not-an-email", "secret1", "alice", ErrInvalidEmail},
		{"bad email no domain dot", "a@b", "secret1", "alice", ErrInvalidEmail},
		{"bad email with spaces", "a b@c.com", "secret1", "alice", ErrInvalidEmail},
		{"valid", "a@b.com", "secret1", "alice", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newAccounts().Signup(context.Background(), tt.email, tt.password, tt.username)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignupDuplicates(t *testing.T) {
	a := newAccounts()
	ctx := context.Background()

	_, err := a.Signup(ctx, "alice@example.com", "secret1", "alice")
	require.NoError(t, err)

	_, err = a.Signup(ctx, "ALICE@example.com", "secret1", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = a.Signup(ctx, "bob@example.com", "secret1", "Alice")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestSignupProfileShape(t *testing.T) {
	a := newAccounts()
	user, err := a.Signup(context.Background(), "Alice@Example.com", "secret1", "alice")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "🎭", user.Avatar)
	assert.False(t, user.IsGuest)
	assert.NotNil(t, user.Achievements)
	assert.Empty(t, user.Achievements)
}

func TestLogin(t *testing.T) {
	a := newAccounts()
	ctx := context.Background()
	_, err := a.Signup(ctx, "alice@example.com", "secret1", "alice")
	require.NoError(t, err)

	user, err := a.Login(ctx, "ALICE@EXAMPLE.COM", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = a.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = a.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestUpdateProfile(t *testing.T) {
	a := newAccounts()
	ctx := context.Background()
	alice, err := a.Signup(ctx, "alice@example.com", "secret1", "alice")
	require.NoError(t, err)
	_, err = a.Signup(ctx, "bob@example.com", "secret1", "bob")
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		user, err := a.UpdateProfile(ctx, alice.ID, "", "🦊")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "🦊", user.Avatar)
	})

	t.Run("username collision with another user", func(t *testing.T) {
		_, err := a.UpdateProfile(ctx, alice.ID, "Bob", "")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("keeping own username is not a collision", func(t *testing.T) {
		user, err := a.UpdateProfile(ctx, alice.ID, "alice", "")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := a.UpdateProfile(ctx, "no-such-id", "newname", "")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAchievements(t *testing.T) {
	a := newAccounts()
	ctx := context.Background()
	alice, err := a.Signup(ctx, "alice@example.com", "secret1", "alice")
	require.NoError(t, err)

	user, err := a.AddAchievement(ctx, alice.ID, "first_chat")
	require.NoError(t, err)
	assert.Equal(t, []string{"first_chat"}, user.Achievements)
	assert.False(t, user.EasterEggMaster)

	// duplicate is a no-op
	user, err = a.AddAchievement(ctx, alice.ID, "first_chat")
	require.NoError(t, err)
	assert.Equal(t, []string{"first_chat"}, user.Achievements)

	user, err = a.AddAchievement(ctx, alice.ID, "easter_egg_master")
	require.NoError(t, err)
	assert.True(t, user.EasterEggMaster)
	assert.Contains(t, user.Achievements, "easter_egg_master")

	_, err = a.AddAchievement(ctx, "no-such-id", "first_chat")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGuest(t *testing.T) {
	g := Guest()
	assert.True(t, g.IsGuest)
	assert.NotEmpty(t, g.ID)
	assert.NotEqual(t, Guest().ID, g.ID)
}

func TestAccountsPersistThroughKV(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	first := NewAccounts(kv)
	_, err := first.Signup(ctx, "alice@example.com", "secret1", "alice")
	require.NoError(t, err)

	second := NewAccounts(kv)
	user, err := second.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}
