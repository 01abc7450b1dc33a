// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package task

import (
	"context"

	"github.com/taibuivan/gumruk/internal/platform/sec"
)

// # Task Data Access

// Repository defines the data access contract for tasks, letters and investigation results.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Repository interface {

	/*
		ListTasks returns the tasks of a report, newest first.

		Returns:
		  - []*AssignedTask: Tasks with their letters (newest date first) and results
		  - error: Database retrieval failures
	*/
	ListTasks(context context.Context, reportID string) ([]*AssignedTask, error)

	// GetTask fetches a task with its letters and results.
	GetTask(context context.Context, id string) (*AssignedTask, error)

	// CreateTask inserts a task whose ID is already set.
	CreateTask(context context.Context, task *AssignedTask) error

	// UpdateTask overwrites the decision, fines and workgroup. The document is untouched.
	UpdateTask(context context.Context, task *AssignedTask) error

	// DeleteTask removes a task and, by cascade, its letters and results.
	DeleteTask(context context.Context, id string) error

	// GetLetter fetches a letter with the report of its task.
	GetLetter(context context.Context, id string) (*AssignedLetter, error)

	// CreateLetter inserts a letter whose ID is already set.
	CreateLetter(context context.Context, letter *AssignedLetter) error

	// UpdateLetter overwrites action, number and date.
	UpdateLetter(context context.Context, letter *AssignedLetter) error

	// DeleteLetter removes a letter.
	DeleteLetter(context context.Context, id string) error

	// GetResult fetches an investigation result with the report of its task.
	GetResult(context context.Context, id string) (*InvestigationResult, error)

	// CreateResult inserts a result whose ID is already set.
	CreateResult(context context.Context, result *InvestigationResult) error

	// UpdateResult overwrites type, committee, workgroup and conclusion.
	UpdateResult(context context.Context, result *InvestigationResult) error

	// DeleteResult removes a result.
	DeleteResult(context context.Context, id string) error

	/*
		Document returns the stored document key of a task, letter or result.

		Returns:
		  - DocumentRef: Report of the row and its key (nil when none is attached)
		  - error: apperr NOT_FOUND when the row is missing
	*/
	Document(context context.Context, owner Owner, id string) (DocumentRef, error)

	// SetDocument points a row at key, or clears it when key is nil.
	SetDocument(context context.Context, owner Owner, id string, key *string) error
}

// Authorizer applies the report edit gate.
type Authorizer interface {
	Authorize(context context.Context, actor *sec.AuthClaims, reportID string) error
}
