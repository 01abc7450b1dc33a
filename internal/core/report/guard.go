// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import (
	"context"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/pkg/uuid"
)

// OwnerLookup resolves the creator of a report.
type OwnerLookup interface {
	Owner(context context.Context, id string) (*string, error)
}

// Guard applies [CanEdit] to stored reports. The goods and task services use
// it before touching anything attached to a report.
type Guard struct {
	owners    OwnerLookup
	relations Relations
}

// NewGuard constructs a report edit [Guard].
func NewGuard(owners OwnerLookup, relations Relations) *Guard {
	return &Guard{owners: owners, relations: relations}
}

/*
Authorize checks that actor may change reportID.

Returns:
  - error: UNAUTHORIZED without an actor, NOT_FOUND for unknown reports,
    FORBIDDEN when [CanEdit] fails
*/
func (guard *Guard) Authorize(context context.Context, actor *sec.AuthClaims, reportID string) error {
	if actor == nil {
		return apperr.Unauthorized("Authentication required")
	}
	if !uuid.Valid(reportID) {
		return apperr.NotFound("Report")
	}

	owner, err := guard.owners.Owner(context, reportID)
	if err != nil {
		return err
	}

	// Related users are only loaded when ownership alone does not decide
	var related []string
	if !actor.IsAdmin() && owner != nil && *owner != actor.UserID {
		if related, err = guard.relations.RelatedUserIDs(context, actor.UserID); err != nil {
			return err
		}
	}

	if !CanEdit(actor, owner, related) {
		return apperr.Forbidden("You can only change your own reports or those of your related users")
	}
	return nil
}
