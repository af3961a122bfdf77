// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/constants"
	"github.com/taibuivan/myflix/internal/platform/sec"
	"github.com/taibuivan/myflix/internal/platform/validate"
	"github.com/taibuivan/myflix/pkg/pointer"
)

// SecretHasher turns a plaintext secret into its storable hash.
type SecretHasher interface {
	HashSecret(secret string) (string, error)
}

// # Service Layer

// Service orchestrates the user directory.
//
// Every mutation is validated and authorized before the repository is touched,
// so a rejected call leaves no trace in storage.
type Service struct {
	userRepository UserRepository
	hasher         SecretHasher
	logger         *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(userRepo UserRepository, hasher SecretHasher, logger *slog.Logger) *Service {
	return &Service{
		userRepository: userRepo,
		hasher:         hasher,
		logger:         logger,
	}
}

// # Directory Lookups

// FindByHandle resolves a handle without any authorization check. It is the
// lookup used by login and the favorites manager.
func (service *Service) FindByHandle(context context.Context, handle string) (*User, error) {
	user, err := service.userRepository.FindByHandle(context, handle)
	if err != nil {
		return nil, fmt.Errorf("identity_service_find_failed: %w", err)
	}
	return user, nil
}

/*
Profile returns the caller's own account.

Parameters:
  - context: context.Context
  - identity: sec.Identity (authenticated caller)
  - handle: string (target)

Returns:
  - *User: The account
  - error: apperr.Forbidden, apperr.NotFound or storage failures
*/
func (service *Service) Profile(context context.Context, identity sec.Identity, handle string) (*User, error) {
	if err := sec.AuthorizeSelf(identity, handle); err != nil {
		service.logFailure(context, "profile", identity, handle, err)
		return nil, err
	}

	user, err := service.FindByHandle(context, handle)
	if err != nil {
		service.logFailure(context, "profile", identity, handle, err)
		return nil, err
	}
	return user, nil
}

// # Registration

/*
Register creates a new account.

Description: Validates the candidate, rejects a taken handle, hashes the
secret and persists the account with an empty favorites set. The
handle check runs before the insert; two racing registrations are still
separated by the unique constraint, which surfaces as apperr.Conflict.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *User: The persisted account
  - error: Validation, conflict or storage failures
*/
func (service *Service) Register(context context.Context, input CreateInput) (*User, error) {
	anonymous := sec.Identity{}

	validator := &validate.Validator{}
	validator.Required(FieldHandle, input.Handle)
	if input.Handle != "" {
		validator.MinLen(FieldHandle, input.Handle, constants.HandleMinLength).
			Alphanumeric(FieldHandle, input.Handle)
	}
	validator.Custom(FieldSecret, input.Secret == "", "This field is required")
	validator.Required(FieldEmail, input.Email)
	if strings.TrimSpace(input.Email) != "" {
		validator.Email(FieldEmail, input.Email)
	}
	validator.MaxLen(FieldFirstName, input.FirstName, maxNameLength).
		MaxLen(FieldLastName, input.LastName, maxNameLength)
	if input.Birthday != "" {
		validator.Date(FieldBirthday, input.Birthday)
	}
	if err := validator.Err(); err != nil {
		service.logFailure(context, "register", anonymous, input.Handle, err)
		return nil, err
	}

	// Business: Handles are unique
	_, err := service.userRepository.FindByHandle(context, input.Handle)
	switch {
	case err == nil:
		err = apperr.Conflict("A user with this handle already exists")
		service.logFailure(context, "register", anonymous, input.Handle, err)
		return nil, err
	case !apperr.HasCode(err, apperr.CodeNotFound):
		service.logFailure(context, "register", anonymous, input.Handle, err)
		return nil, fmt.Errorf("identity_service_register_lookup_failed: %w", err)
	}

	secretHash, err := service.hasher.HashSecret(input.Secret)
	if err != nil {
		service.logFailure(context, "register", anonymous, input.Handle, err)
		return nil, fmt.Errorf("identity_service_register_hash_failed: %w", err)
	}

	user := &User{
		Handle:     input.Handle,
		SecretHash: secretHash,
		Email:      input.Email,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Birthday:   parseBirthday(input.Birthday),
		Favorites:  []string{},
	}

	if err := service.userRepository.Create(context, user); err != nil {
		service.logFailure(context, "register", anonymous, input.Handle, err)
		return nil, fmt.Errorf("identity_service_register_failed: %w", err)
	}

	service.logger.InfoContext(context, "user_registered", slog.String("handle", user.Handle))
	return user, nil
}

// # Profile Management

/*
Update applies a partial profile change to the caller's own account.

Description: Authorization runs first, then validation (reported as 422), then
the read-modify-write. A new secret is rehashed before it is stored.

Parameters:
  - context: context.Context
  - identity: sec.Identity
  - handle: string
  - patch: UpdateInput

Returns:
  - *User: The updated account
  - error: apperr.Forbidden, apperr.Unprocessable, apperr.NotFound or storage failures
*/
func (service *Service) Update(context context.Context, identity sec.Identity, handle string, patch UpdateInput) (*User, error) {
	if err := sec.AuthorizeSelf(identity, handle); err != nil {
		service.logFailure(context, "update", identity, handle, err)
		return nil, err
	}

	if err := validatePatch(handle, patch); err != nil {
		service.logFailure(context, "update", identity, handle, err)
		return nil, err
	}

	user, err := service.userRepository.FindByHandle(context, handle)
	if err != nil {
		service.logFailure(context, "update", identity, handle, err)
		return nil, fmt.Errorf("identity_service_update_lookup_failed: %w", err)
	}

	if patch.Secret != nil {
		secretHash, err := service.hasher.HashSecret(*patch.Secret)
		if err != nil {
			service.logFailure(context, "update", identity, handle, err)
			return nil, fmt.Errorf("identity_service_update_hash_failed: %w", err)
		}
		user.SecretHash = secretHash
	}
	pointer.Apply(&user.Email, patch.Email)
	pointer.Apply(&user.FirstName, patch.FirstName)
	pointer.Apply(&user.LastName, patch.LastName)
	if patch.Birthday != nil {
		user.Birthday = parseBirthday(*patch.Birthday)
	}

	if err := service.userRepository.Update(context, user); err != nil {
		service.logFailure(context, "update", identity, handle, err)
		return nil, fmt.Errorf("identity_service_update_failed: %w", err)
	}

	service.logger.InfoContext(context, "user_profile_updated", slog.String("handle", handle))
	return user, nil
}

// Delete removes the caller's own account together with its favorites.
func (service *Service) Delete(context context.Context, identity sec.Identity, handle string) error {
	if err := sec.AuthorizeSelf(identity, handle); err != nil {
		service.logFailure(context, "delete", identity, handle, err)
		return err
	}

	if err := service.userRepository.Delete(context, handle); err != nil {
		service.logFailure(context, "delete", identity, handle, err)
		return fmt.Errorf("identity_service_delete_failed: %w", err)
	}

	service.logger.WarnContext(context, "user_account_deleted", slog.String("handle", handle))
	return nil
}

// # Helpers

// validatePatch checks every provided field and reports all failures at once.
func validatePatch(handle string, patch UpdateInput) error {
	validator := &validate.Validator{}

	if patch.Handle != nil {
		validator.Custom(FieldHandle, *patch.Handle != handle, "Handle cannot be changed")
	}
	if patch.Secret != nil {
		validator.Custom(FieldSecret, *patch.Secret == "", "This field is required")
	}
	if patch.Email != nil {
		validator.Email(FieldEmail, *patch.Email)
	}
	if patch.FirstName != nil {
		validator.MaxLen(FieldFirstName, *patch.FirstName, maxNameLength)
	}
	if patch.LastName != nil {
		validator.MaxLen(FieldLastName, *patch.LastName, maxNameLength)
	}
	if pointer.Val(patch.Birthday) != "" {
		validator.Date(FieldBirthday, *patch.Birthday)
	}

	if validator.HasErrors() {
		return apperr.Unprocessable("Validation failed", validator.Errors()...)
	}
	return nil
}

// parseBirthday converts an already validated date; empty means no birthday.
func parseBirthday(value string) *time.Time {
	if value == "" {
		return nil
	}
	birthday, err := time.Parse(validate.DateLayout, value)
	if err != nil {
		return nil
	}
	return &birthday
}

// logFailure records a rejected or failed operation at the service boundary.
// Client mistakes log at warn, everything else at error.
func (service *Service) logFailure(context context.Context, operation string, identity sec.Identity, target string, err error) {
	level := slog.LevelError
	if apperr.IsClientError(err) {
		level = slog.LevelWarn
	}
	service.logger.Log(context, level, "identity_operation_failed",
		slog.String("operation", operation),
		slog.String("acting_handle", identity.Handle),
		slog.String("target_handle", target),
		slog.Any("error", err),
	)
}
