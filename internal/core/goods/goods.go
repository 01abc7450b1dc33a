// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package goods

import (
	"io"
	"math"
	"time"
)

// StoredGood is an item seized and stored under a report.
type StoredGood struct {
	ID        string  `json:"id"`
	ReportID  string  `json:"report_id"`
	ProductID int     `json:"product_id"`
	Amount    float64 `json:"amount"`
	UnitID    int     `json:"unit_id"`
	Note      string  `json:"note"`
	ReasonID  *int    `json:"reason_id"`

	// Read-only names resolved from the registry
	ProductName string `json:"product_name,omitempty"`
	UnitName    string `json:"unit_name,omitempty"`
	ReasonName  string `json:"reason_name,omitempty"`

	Images []Image `json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Image is a resized photo of a stored good.
type Image struct {
	ID           string    `json:"id"`
	StoredGoodID string    `json:"stored_good_id"`
	Key          string    `json:"key"`
	URL          string    `json:"url"`
	Description  string    `json:"description"`
	UploadedAt   time.Time `json:"uploaded_at"`

	// Report owning the good, used for the edit check
	ReportID string `json:"-"`
}

// Upload is a photo received from a client.
type Upload struct {
	Filename    string
	Body        io.Reader
	Description string
}

// hasTwoDecimals reports whether amount fits numeric(12, 2) precision.
func hasTwoDecimals(amount float64) bool {
	scaled := amount * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}

// # Field Identifiers

const (
	FieldReportID    = "report_id"
	FieldProductID   = "product_id"
	FieldAmount      = "amount"
	FieldUnitID      = "unit_id"
	FieldReasonID    = "reason_id"
	FieldDescription = "description"
	FieldFile        = "file"
)

const (
	maxAmount            = 1e10
	maxDescriptionLength = 255
)
