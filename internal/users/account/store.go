// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

import (
	"context"

	"github.com/taibuivan/gumruk/internal/users/auth"
)

// Repository defines the persistence contract for profiles.
type Repository interface {

	// List returns a page of accounts ordered by username, with the total.
	List(context context.Context, filter Filter, limit, offset int) ([]*auth.User, int, error)

	/*
		Get fetches one account.

		Returns:
		  - *auth.User: Account
		  - error: apperr NOT_FOUND when missing
	*/
	Get(context context.Context, id string) (*auth.User, error)

	// Update overwrites email, full name, role and the active flag.
	Update(context context.Context, user *auth.User) error

	// RelatedUsers lists the related users of userID ordered by username.
	RelatedUsers(context context.Context, userID string) ([]Member, error)

	// RelatedUserIDs lists only the IDs of userID's related users.
	RelatedUserIDs(context context.Context, userID string) ([]string, error)

	/*
		ReplaceRelated swaps the related set of userID for relatedIDs in one transaction.

		Returns:
		  - error: apperr NOT_FOUND when userID is missing, UNPROCESSABLE when
		    a related ID does not exist
	*/
	ReplaceRelated(context context.Context, userID string, relatedIDs []string) error
}
