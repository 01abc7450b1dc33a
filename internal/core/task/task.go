// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package task

import (
	"bytes"
	"io"
	"time"

	"github.com/taibuivan/gumruk/pkg/date"
)

// AssignedTask is an enforcement action decided on a report, usually a fine.
type AssignedTask struct {
	ID           string     `json:"id"`
	ReportID     string     `json:"report_id"`
	DecisionDate *date.Date `json:"decision_date"`
	TrbNumber    string     `json:"trb_number"`
	TrbDate      *date.Date `json:"trb_date"`
	ImposedFine  *float64   `json:"imposed_fine"`
	PaidFine     *float64   `json:"paid_fine"`
	WorkgroupID  int        `json:"workgroup_id"`

	WorkgroupName  string    `json:"workgroup_name,omitempty"`
	ExpertDocument *Document `json:"expert_document"`

	Letters []*AssignedLetter      `json:"letters"`
	Results []*InvestigationResult `json:"investigation_results"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AssignedLetter is an outgoing letter sent while carrying out a task.
type AssignedLetter struct {
	ID       string    `json:"id"`
	TaskID   string    `json:"task_id"`
	ActionID int       `json:"action_id"`
	Number   string    `json:"number"`
	Date     date.Date `json:"date"`

	ActionName string    `json:"action_name,omitempty"`
	Document   *Document `json:"document"`

	// Report owning the task, used for the edit check
	ReportID string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InvestigationResult is the conclusion of an investigation run for a task.
type InvestigationResult struct {
	ID          string `json:"id"`
	TaskID      string `json:"task_id"`
	TypeID      *int   `json:"type_id"`
	CommitteeID *int   `json:"committee_id"`
	WorkgroupID *int   `json:"workgroup_id"`
	Conclusion  string `json:"conclusion"`

	TypeName      string    `json:"type_name,omitempty"`
	CommitteeName string    `json:"committee_name,omitempty"`
	WorkgroupName string    `json:"workgroup_name,omitempty"`
	Document      *Document `json:"document"`

	ReportID string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Document is a stored PDF.
type Document struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// documentOf wraps a nullable key.
func documentOf(key *string) *Document {
	if key == nil || *key == "" {
		return nil
	}
	return &Document{Key: *key}
}

// Owner names the kind of row a document belongs to.
type Owner string

const (
	OwnerTask   Owner = "task"
	OwnerLetter Owner = "letter"
	OwnerResult Owner = "result"
)

// DocumentRef locates the document of one row.
type DocumentRef struct {
	ReportID string
	Key      *string
}

// Upload is a PDF received from a client.
type Upload struct {
	Filename string
	Body     io.Reader
}

var pdfMagic = []byte("%PDF-")

// isPDF reports whether data starts with the PDF header.
func isPDF(data []byte) bool {
	return bytes.HasPrefix(data, pdfMagic)
}

// # Field Identifiers

const (
	FieldReportID    = "report_id"
	FieldTaskID      = "task_id"
	FieldTrbNumber   = "trb_number"
	FieldImposedFine = "imposed_fine"
	FieldPaidFine    = "paid_fine"
	FieldWorkgroupID = "workgroup_id"
	FieldActionID    = "action_id"
	FieldNumber      = "number"
	FieldDate        = "date"
	FieldTypeID      = "type_id"
	FieldCommitteeID = "committee_id"
	FieldFile        = "file"
)

const (
	maxTrbNumberLength    = 255
	maxLetterNumberLength = 50
)
