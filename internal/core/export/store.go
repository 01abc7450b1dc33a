// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package export

import (
	"context"

	"github.com/taibuivan/gumruk/internal/core/report"
)

// Repository loads the export dataset.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Repository interface {

	/*
		Records returns every report matching filter, newest first, with its
		offender, goods, codexes, witnesses, tasks and letters resolved to names.

		Parameters:
		  - filter: report.Filter (the same filter the report list accepts)
		  - limit: int (maximum number of reports)

		Returns:
		  - []*Record: The dataset
		  - error: Database retrieval failures
	*/
	Records(context context.Context, filter report.Filter, limit int) ([]*Record, error)
}
