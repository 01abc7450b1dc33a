// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// AssignedTaskTable represents the 'cases.assigned_task' table
type AssignedTaskTable struct {
	Table             string
	ID                string
	ReportID          string
	DecisionDate      string
	TrbNumber         string
	TrbDate           string
	ImposedFine       string
	PaidFine          string
	WorkgroupID       string
	ExpertDocumentKey string
	CreatedAt         string
	UpdatedAt         string
}

// AssignedTask is the schema definition for cases.assigned_task
var AssignedTask = AssignedTaskTable{
	Table:             "cases.assigned_task",
	ID:                "id",
	ReportID:          "report_id",
	DecisionDate:      "decision_date",
	TrbNumber:         "trb_number",
	TrbDate:           "trb_date",
	ImposedFine:       "imposed_fine",
	PaidFine:          "paid_fine",
	WorkgroupID:       "workgroup_id",
	ExpertDocumentKey: "expert_document_key",
	CreatedAt:         "created_at",
	UpdatedAt:         "updated_at",
}

func (t AssignedTaskTable) Columns() []string {
	return []string{t.ID, t.ReportID, t.DecisionDate, t.TrbNumber, t.TrbDate, t.ImposedFine, t.PaidFine, t.WorkgroupID, t.ExpertDocumentKey, t.CreatedAt, t.UpdatedAt}
}

// AssignedLetterTable represents the 'cases.assigned_letter' table
type AssignedLetterTable struct {
	Table       string
	ID          string
	TaskID      string
	ActionID    string
	Number      string
	LetterDate  string
	DocumentKey string
	CreatedAt   string
	UpdatedAt   string
}

// AssignedLetter is the schema definition for cases.assigned_letter
var AssignedLetter = AssignedLetterTable{
	Table:       "cases.assigned_letter",
	ID:          "id",
	TaskID:      "task_id",
	ActionID:    "action_id",
	Number:      "number",
	LetterDate:  "letter_date",
	DocumentKey: "document_key",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t AssignedLetterTable) Columns() []string {
	return []string{t.ID, t.TaskID, t.ActionID, t.Number, t.LetterDate, t.DocumentKey, t.CreatedAt, t.UpdatedAt}
}

// InvestigationResultTable represents the 'cases.investigation_result' table
type InvestigationResultTable struct {
	Table       string
	ID          string
	TaskID      string
	TypeID      string
	CommitteeID string
	WorkgroupID string
	Conclusion  string
	DocumentKey string
	CreatedAt   string
	UpdatedAt   string
}

// InvestigationResult is the schema definition for cases.investigation_result
var InvestigationResult = InvestigationResultTable{
	Table:       "cases.investigation_result",
	ID:          "id",
	TaskID:      "task_id",
	TypeID:      "type_id",
	CommitteeID: "committee_id",
	WorkgroupID: "workgroup_id",
	Conclusion:  "conclusion",
	DocumentKey: "document_key",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t InvestigationResultTable) Columns() []string {
	return []string{t.ID, t.TaskID, t.TypeID, t.CommitteeID, t.WorkgroupID, t.Conclusion, t.DocumentKey, t.CreatedAt, t.UpdatedAt}
}
