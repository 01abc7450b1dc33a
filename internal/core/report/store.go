// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import "context"

// # Report Data Access

// Repository defines the data access contract for reports and their inline witnesses.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Repository interface {

	/*
		List retrieves a page of reports, newest first.

		Parameters:
		  - context: context.Context
		  - filter: Filter
		  - limit, offset: int

		Returns:
		  - []*Report: Matching reports with codex IDs (witnesses are not loaded)
		  - int: Total matching count
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Report, int, error)

	/*
		Get fetches a report with its witnesses and codex IDs.

		Returns:
		  - *Report: Hydrated report
		  - error: apperr NOT_FOUND when missing
	*/
	Get(context context.Context, id string) (*Report, error)

	/*
		Create inserts the report, its codex links and witnesses in one transaction.

		Returns:
		  - error: CONFLICT on duplicate numbers, UNPROCESSABLE on unknown references
	*/
	Create(context context.Context, report *Report) error

	// Update overwrites the report and replaces its codex links and witnesses.
	// CreatedBy is never changed.
	Update(context context.Context, report *Report) error

	/*
		Delete removes a report and, by cascade, everything attached to it.

		Returns:
		  - []string: Storage keys of the photos and documents that were attached
		  - error: apperr NOT_FOUND when the report is missing
	*/
	Delete(context context.Context, id string) ([]string, error)

	/*
		Owner returns the creator of a report.

		Returns:
		  - *string: Creator ID, nil when the account no longer exists
		  - error: apperr NOT_FOUND when the report is missing
	*/
	Owner(context context.Context, id string) (*string, error)

	// PersonReports lists the reports of the violator holding passportNumber.
	PersonReports(context context.Context, passportNumber string) ([]*PersonReport, error)
}

// Relations resolves the users whose reports another user may edit.
type Relations interface {
	// RelatedUserIDs returns the related users in userID's profile.
	RelatedUserIDs(context context.Context, userID string) ([]string, error)
}
