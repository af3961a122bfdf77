// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/pkg/pointer"
	"github.com/taibuivan/myflix/internal/platform/sec"
	"github.com/taibuivan/myflix/internal/users/identity"
)

// memoryUsers is an in-memory [identity.UserRepository] for service tests.
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]identity.User
	calls int
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]identity.User{}}
}

func (store *memoryUsers) FindByHandle(_ context.Context, handle string) (*identity.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	user, ok := store.users[handle]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return &user, nil
}

func (store *memoryUsers) Create(_ context.Context, user *identity.User) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.calls++
	if _, ok := store.users[user.Handle]; ok {
		return apperr.Conflict("User already exists")
	}
	user.ID = "id-" + user.Handle
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	store.users[user.Handle] = *user
	return nil
}

func (store *memoryUsers) Update(_ context.Context, user *identity.User) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.calls++
	if _, ok := store.users[user.Handle]; !ok {
		return apperr.NotFound("User")
	}
	store.users[user.Handle] = *user
	return nil
}

func (store *memoryUsers) Delete(_ context.Context, handle string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.calls++
	if _, ok := store.users[handle]; !ok {
		return apperr.NotFound("User")
	}
	delete(store.users, handle)
	return nil
}

func newService(t *testing.T) (*identity.Service, *memoryUsers, *sec.CredentialStore) {
	t.Helper()
	users := newMemoryUsers()
	credentials := sec.NewCredentialStore(bcrypt.MinCost)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return identity.NewService(users, credentials, logger), users, credentials
}

func janeInput() identity.CreateInput {
	return identity.CreateInput{Handle: "janedoe", Secret: "securePass123", Email: "jane@example.com"}
}

/*
TestService_Register covers registration, duplicate handles and the
validation contract.
*/
func TestService_Register(t *testing.T) {
	t.Run("stores a hash, never the secret", func(t *testing.T) {
		service, users, credentials := newService(t)

		user, err := service.Register(context.Background(), janeInput())
		require.NoError(t, err)

		assert.Equal(t, "janedoe", user.Handle)
		assert.Empty(t, user.Favorites)
		assert.NotEqual(t, "securePass123", user.SecretHash)
		assert.True(t, credentials.VerifySecret("securePass123", users.users["janedoe"].SecretHash))
	})

	t.Run("duplicate handle is a conflict", func(t *testing.T) {
		service, _, _ := newService(t)

		_, err := service.Register(context.Background(), janeInput())
		require.NoError(t, err)

		_, err = service.Register(context.Background(), janeInput())
		assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
	})

	t.Run("birthday is parsed", func(t *testing.T) {
		service, _, _ := newService(t)

		input := janeInput()
		input.Birthday = "1990-05-17"
		user, err := service.Register(context.Background(), input)
		require.NoError(t, err)
		require.NotNil(t, user.Birthday)
		assert.Equal(t, time.May, user.Birthday.Month())
	})

	tests := []struct {
		name   string
		mutate func(*identity.CreateInput)
		fields []string
	}{
		{name: "short handle", mutate: func(in *identity.CreateInput) { in.Handle = "jane" }, fields: []string{"handle"}},
		{name: "non alphanumeric handle", mutate: func(in *identity.CreateInput) { in.Handle = "jane_doe" }, fields: []string{"handle"}},
		{name: "empty secret", mutate: func(in *identity.CreateInput) { in.Secret = "" }, fields: []string{"secret"}},
		{name: "bad email", mutate: func(in *identity.CreateInput) { in.Email = "jane.example.com" }, fields: []string{"email"}},
		{name: "bad birthday", mutate: func(in *identity.CreateInput) { in.Birthday = "17/05/1990" }, fields: []string{"birthday"}},
		{
			name:   "every failure is reported",
			mutate: func(in *identity.CreateInput) { *in = identity.CreateInput{Handle: "j!", Email: "nope"} },
			fields: []string{"handle", "secret", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, users, _ := newService(t)

			input := janeInput()
			tt.mutate(&input)
			_, err := service.Register(context.Background(), input)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, apperr.CodeValidation, appError.Code)

			var fields []string
			for _, detail := range appError.Details {
				if len(fields) == 0 || fields[len(fields)-1] != detail.Field {
					fields = append(fields, detail.Field)
				}
			}
			assert.Equal(t, tt.fields, fields)
			assert.Zero(t, users.calls, "validation must short-circuit before storage")
		})
	}
}

/*
TestService_Update verifies partial updates, rehashing and the self-only rule.
*/
func TestService_Update(t *testing.T) {
	jane := sec.Identity{Handle: "janedoe"}

	t.Run("applies provided fields and rehashes the secret", func(t *testing.T) {
		service, users, credentials := newService(t)
		_, err := service.Register(context.Background(), janeInput())
		require.NoError(t, err)

		user, err := service.Update(context.Background(), jane, "janedoe", identity.UpdateInput{
			Secret:    pointer.To("newSecret456"),
			FirstName: pointer.To("Jane"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Jane", user.FirstName)
		assert.Equal(t, "jane@example.com", user.Email)
		stored := users.users["janedoe"].SecretHash
		assert.True(t, credentials.VerifySecret("newSecret456", stored))
		assert.False(t, credentials.VerifySecret("securePass123", stored))
	})

	t.Run("other handle is forbidden and leaves state unchanged", func(t *testing.T) {
		service, users, _ := newService(t)
		_, err := service.Register(context.Background(), identity.CreateInput{Handle: "johndoe", Secret: "pw", Email: "john@example.com"})
		require.NoError(t, err)
		before := users.users["johndoe"]
		callsBefore := users.calls

		_, err = service.Update(context.Background(), jane, "johndoe", identity.UpdateInput{Email: pointer.To("evil@example.com")})

		assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))
		assert.Equal(t, before, users.users["johndoe"])
		assert.Equal(t, callsBefore, users.calls)
	})

	t.Run("validation failures are unprocessable", func(t *testing.T) {
		service, _, _ := newService(t)
		_, err := service.Register(context.Background(), janeInput())
		require.NoError(t, err)

		_, err = service.Update(context.Background(), jane, "janedoe", identity.UpdateInput{
			Email:  pointer.To("not-an-email"),
			Handle: pointer.To("janedoe2"),
		})

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, apperr.CodeValidation, appError.Code)
		assert.Len(t, appError.Details, 2)
	})

	t.Run("echoing the own handle is accepted", func(t *testing.T) {
		service, _, _ := newService(t)
		_, err := service.Register(context.Background(), janeInput())
		require.NoError(t, err)

		_, err = service.Update(context.Background(), jane, "janedoe", identity.UpdateInput{Handle: pointer.To("janedoe")})
		assert.NoError(t, err)
	})

	t.Run("empty birthday clears it", func(t *testing.T) {
		service, _, _ := newService(t)
		input := janeInput()
		input.Birthday = "1990-05-17"
		_, err := service.Register(context.Background(), input)
		require.NoError(t, err)

		user, err := service.Update(context.Background(), jane, "janedoe", identity.UpdateInput{Birthday: pointer.To("")})
		require.NoError(t, err)
		assert.Nil(t, user.Birthday)
	})

	t.Run("missing account", func(t *testing.T) {
		service, _, _ := newService(t)

		_, err := service.Update(context.Background(), jane, "janedoe", identity.UpdateInput{})
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})
}

func TestService_Delete(t *testing.T) {
	service, users, _ := newService(t)
	_, err := service.Register(context.Background(), janeInput())
	require.NoError(t, err)

	err = service.Delete(context.Background(), sec.Identity{Handle: "johndoe"}, "janedoe")
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))
	assert.Contains(t, users.users, "janedoe")

	require.NoError(t, service.Delete(context.Background(), sec.Identity{Handle: "janedoe"}, "janedoe"))
	assert.NotContains(t, users.users, "janedoe")

	err = service.Delete(context.Background(), sec.Identity{Handle: "janedoe"}, "janedoe")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestService_Profile(t *testing.T) {
	service, _, _ := newService(t)
	_, err := service.Register(context.Background(), janeInput())
	require.NoError(t, err)

	user, err := service.Profile(context.Background(), sec.Identity{Handle: "janedoe"}, "janedoe")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)

	_, err = service.Profile(context.Background(), sec.Identity{Handle: "johndoe"}, "janedoe")
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))
}
