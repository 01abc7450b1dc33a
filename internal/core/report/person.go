// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import "github.com/taibuivan/gumruk/pkg/date"

// PersonReport summarises one report of a violator looked up by passport.
type PersonReport struct {
	ReportID      string       `json:"report_id"`
	CaseNumber    string       `json:"case_number"`
	ReportDate    *date.Date   `json:"report_date"`
	StoredGoods   []PersonGood `json:"stored_goods"`
	Codexes       []Codex      `json:"administration_codexes"`
	ImposedFine   *float64     `json:"imposed_fine"`
	WorkgroupName *string      `json:"workgroup_name"`
}

// PersonGood is a seized good listed in a [PersonReport].
type PersonGood struct {
	ID          string        `json:"id"`
	ProductID   int           `json:"product_id"`
	ProductName string        `json:"product_name"`
	Amount      float64       `json:"amount"`
	UnitName    string        `json:"unit_name"`
	Note        string        `json:"note"`
	Images      []PersonImage `json:"images"`
}

// PersonImage is a photo of a [PersonGood]. Key is resolved to URL by the service.
type PersonImage struct {
	ID          string `json:"id"`
	Key         string `json:"-"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Codex is an administration codex article attached to a report.
type Codex struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
