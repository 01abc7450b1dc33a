// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/dberr"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/internal/platform/validate"
	"github.com/taibuivan/gumruk/internal/users/auth"
	"github.com/taibuivan/gumruk/pkg/uuid"
)

func init() {
	dberr.RegisterConstraint("related_user_related_user_id_fkey", "Related user does not exist")
	dberr.RegisterConstraint("related_user_not_self", "A user cannot be related to themselves")
}

// Service implements profile reads and admin account management.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs an account [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// RelatedUserIDs returns the related users of userID. It backs the report edit gate.
func (service *Service) RelatedUserIDs(context context.Context, userID string) ([]string, error) {
	return service.repo.RelatedUserIDs(context, userID)
}

// Me returns the caller's own profile.
func (service *Service) Me(context context.Context, actor *sec.AuthClaims) (*Profile, error) {
	if actor == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return service.profile(context, actor.UserID)
}

// List returns a page of accounts. Admins only.
func (service *Service) List(context context.Context, actor *sec.AuthClaims, filter Filter, limit, offset int) ([]*auth.User, int, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, 0, err
	}
	if filter.Role != nil && !filter.Role.IsValid() {
		return nil, 0, validate.RequiredError(FieldRole, "Must be one of admin, supervisor, inspector, viewer")
	}
	filter.Query = strings.TrimSpace(filter.Query)
	return service.repo.List(context, filter, limit, offset)
}

// Get returns any user's profile. Admins only.
func (service *Service) Get(context context.Context, actor *sec.AuthClaims, id string) (*Profile, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return service.profile(context, id)
}

/*
Update changes an account's email, full name, role and active flag. Admins only.

Description: Administrators cannot demote or deactivate themselves, so the
last admin cannot lock everyone out by accident.
*/
func (service *Service) Update(context context.Context, actor *sec.AuthClaims, id string, input UpdateInput) (*Profile, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	user, err := service.find(context, id)
	if err != nil {
		return nil, err
	}

	input.normalize()
	validator := &validate.Validator{}
	validator.MaxLen(FieldFullName, input.FullName, 255).
		Custom(FieldRole, !input.Role.IsValid(), "Must be one of admin, supervisor, inspector, viewer")
	if input.Email != "" {
		validator.Email(FieldEmail, input.Email).MaxLen(FieldEmail, input.Email, 254)
	}
	if id == actor.UserID {
		validator.Custom(FieldRole, input.Role.IsValid() && input.Role != sec.RoleAdmin, "You cannot remove your own admin role").
			Custom(FieldIsActive, !input.IsActive, "You cannot deactivate your own account")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user.Email = input.Email
	user.FullName = input.FullName
	user.Role = input.Role
	user.IsActive = input.IsActive
	if err := service.repo.Update(context, user); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "user_updated",
		slog.String("id", id),
		slog.String("role", string(user.Role)),
		slog.Bool("active", user.IsActive),
		slog.String("by", actor.UserID),
	)
	return service.profile(context, id)
}

/*
ReplaceRelated sets the users whose reports id may edit. Admins only.

Description: Duplicates are collapsed. The set may not contain id itself or
malformed IDs; unknown users are rejected by the database.
*/
func (service *Service) ReplaceRelated(context context.Context, actor *sec.AuthClaims, id string, relatedIDs []string) (*Profile, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("User")
	}

	unique := make([]string, 0, len(relatedIDs))
	validator := &validate.Validator{}
	for _, relatedID := range relatedIDs {
		relatedID = strings.ToLower(strings.TrimSpace(relatedID))
		switch {
		case !uuid.Valid(relatedID):
			validator.Custom(FieldRelatedUsers, true, "Must contain user IDs only")
		case relatedID == strings.ToLower(id):
			validator.Custom(FieldRelatedUsers, true, "A user cannot be related to themselves")
		case !slices.Contains(unique, relatedID):
			unique = append(unique, relatedID)
		}
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.ReplaceRelated(context, id, unique); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "related_users_replaced",
		slog.String("id", id),
		slog.Int("count", len(unique)),
		slog.String("by", actor.UserID),
	)
	return service.profile(context, id)
}

func (service *Service) find(context context.Context, id string) (*auth.User, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("User")
	}
	return service.repo.Get(context, id)
}

func (service *Service) profile(context context.Context, id string) (*Profile, error) {
	user, err := service.find(context, id)
	if err != nil {
		return nil, err
	}

	related, err := service.repo.RelatedUsers(context, id)
	if err != nil {
		return nil, err
	}
	return newProfile(user, related), nil
}

func requireAdmin(actor *sec.AuthClaims) error {
	if actor == nil {
		return apperr.Unauthorized("Authentication required")
	}
	if !actor.IsAdmin() {
		return apperr.Forbidden("Only administrators can manage users")
	}
	return nil
}
