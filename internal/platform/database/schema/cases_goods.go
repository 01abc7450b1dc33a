// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// StoredGoodTable represents the 'cases.stored_good' table
type StoredGoodTable struct {
	Table     string
	ID        string
	ReportID  string
	ProductID string
	Amount    string
	UnitID    string
	Note      string
	ReasonID  string
	CreatedAt string
	UpdatedAt string
}

// StoredGood is the schema definition for cases.stored_good
var StoredGood = StoredGoodTable{
	Table:     "cases.stored_good",
	ID:        "id",
	ReportID:  "report_id",
	ProductID: "product_id",
	Amount:    "amount",
	UnitID:    "unit_id",
	Note:      "note",
	ReasonID:  "reason_id",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t StoredGoodTable) Columns() []string {
	return []string{t.ID, t.ReportID, t.ProductID, t.Amount, t.UnitID, t.Note, t.ReasonID, t.CreatedAt, t.UpdatedAt}
}

// StoredGoodImageTable represents the 'cases.stored_good_image' table
type StoredGoodImageTable struct {
	Table        string
	ID           string
	StoredGoodID string
	ObjectKey    string
	Description  string
	UploadedAt   string
}

// StoredGoodImage is the schema definition for cases.stored_good_image
var StoredGoodImage = StoredGoodImageTable{
	Table:        "cases.stored_good_image",
	ID:           "id",
	StoredGoodID: "stored_good_id",
	ObjectKey:    "object_key",
	Description:  "description",
	UploadedAt:   "uploaded_at",
}

func (t StoredGoodImageTable) Columns() []string {
	return []string{t.ID, t.StoredGoodID, t.ObjectKey, t.Description, t.UploadedAt}
}
