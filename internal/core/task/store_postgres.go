// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package task

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/database/schema"
	"github.com/taibuivan/gumruk/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using a pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Tasks

func selectTasks() string {
	task, workgroup := schema.AssignedTask, schema.Workgroup
	return fmt.Sprintf(`SELECT %s, w.%s FROM %s t JOIN %s w ON w.%s = t.%s`,
		schema.Prefixed("t", task.Columns()...), workgroup.Name,
		task.Table, workgroup.Table, workgroup.ID, task.WorkgroupID)
}

// ListTasks returns the tasks of a report with letters and results.
func (repository *PostgresRepository) ListTasks(context context.Context, reportID string) ([]*AssignedTask, error) {
	task := schema.AssignedTask
	query := selectTasks() + fmt.Sprintf(` WHERE t.%s = $1 ORDER BY t.%s DESC, t.%s DESC`, task.ReportID, task.CreatedAt, task.ID)

	rows, err := repository.db.Query(context, query, reportID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tasks")
	}

	tasks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*AssignedTask, error) {
		return scanTask(row)
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_task")
	}

	return tasks, repository.attachChildren(context, tasks)
}

// GetTask fetches a task with letters and results.
func (repository *PostgresRepository) GetTask(context context.Context, id string) (*AssignedTask, error) {
	query := selectTasks() + fmt.Sprintf(` WHERE t.%s = $1`, schema.AssignedTask.ID)

	item, err := scanTask(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.NotFound(err, "get_task", "Assigned task")
	}
	return item, repository.attachChildren(context, []*AssignedTask{item})
}

func (repository *PostgresRepository) attachChildren(context context.Context, tasks []*AssignedTask) error {
	if len(tasks) == 0 {
		return nil
	}

	ids := make([]string, len(tasks))
	byID := make(map[string]*AssignedTask, len(tasks))
	for i, item := range tasks {
		item.Letters = []*AssignedLetter{}
		item.Results = []*InvestigationResult{}
		ids[i] = item.ID
		byID[item.ID] = item
	}

	letter := schema.AssignedLetter
	rows, err := repository.db.Query(context, selectLetters()+fmt.Sprintf(
		` WHERE l.%s = ANY($1::uuid[]) ORDER BY l.%s DESC, l.%s DESC`, letter.TaskID, letter.LetterDate, letter.CreatedAt), ids)
	if err != nil {
		return dberr.Wrap(err, "list_letters")
	}
	letters, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*AssignedLetter, error) {
		return scanLetter(row)
	})
	if err != nil {
		return dberr.Wrap(err, "scan_letter")
	}
	for _, item := range letters {
		byID[item.TaskID].Letters = append(byID[item.TaskID].Letters, item)
	}

	result := schema.InvestigationResult
	rows, err = repository.db.Query(context, selectResults()+fmt.Sprintf(
		` WHERE r.%s = ANY($1::uuid[]) ORDER BY r.%s`, result.TaskID, result.CreatedAt), ids)
	if err != nil {
		return dberr.Wrap(err, "list_results")
	}
	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*InvestigationResult, error) {
		return scanResult(row)
	})
	if err != nil {
		return dberr.Wrap(err, "scan_result")
	}
	for _, item := range results {
		byID[item.TaskID].Results = append(byID[item.TaskID].Results, item)
	}

	return nil
}

// CreateTask inserts a task.
func (repository *PostgresRepository) CreateTask(context context.Context, task *AssignedTask) error {
	table := schema.AssignedTask
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s
	`, table.Table, table.ID, table.ReportID, table.DecisionDate, table.TrbNumber, table.TrbDate,
		table.ImposedFine, table.PaidFine, table.WorkgroupID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		task.ID, task.ReportID, task.DecisionDate, task.TrbNumber, task.TrbDate, task.ImposedFine, task.PaidFine, task.WorkgroupID,
	).Scan(&task.CreatedAt, &task.UpdatedAt)
	return dberr.Wrap(err, "create_task")
}

// UpdateTask overwrites a task.
func (repository *PostgresRepository) UpdateTask(context context.Context, task *AssignedTask) error {
	table := schema.AssignedTask
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`, table.Table, table.DecisionDate, table.TrbNumber, table.TrbDate, table.ImposedFine, table.PaidFine, table.WorkgroupID,
		table.UpdatedAt, table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		task.ID, task.DecisionDate, task.TrbNumber, task.TrbDate, task.ImposedFine, task.PaidFine, task.WorkgroupID,
	).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return dberr.NotFound(err, "update_task", "Assigned task")
	}
	return nil
}

// DeleteTask removes a task.
func (repository *PostgresRepository) DeleteTask(context context.Context, id string) error {
	return repository.delete(context, schema.AssignedTask.Table, schema.AssignedTask.ID, id, "Assigned task")
}

// # Letters

func selectLetters() string {
	letter, task, action := schema.AssignedLetter, schema.AssignedTask, schema.LetterAction
	return fmt.Sprintf(`SELECT %s, a.%s, t.%s
		FROM %s l
		JOIN %s t ON t.%s = l.%s
		JOIN %s a ON a.%s = l.%s`,
		schema.Prefixed("l", letter.Columns()...), action.Name, task.ReportID,
		letter.Table,
		task.Table, task.ID, letter.TaskID,
		action.Table, action.ID, letter.ActionID)
}

// GetLetter fetches a letter.
func (repository *PostgresRepository) GetLetter(context context.Context, id string) (*AssignedLetter, error) {
	item, err := scanLetter(repository.db.QueryRow(context, selectLetters()+fmt.Sprintf(` WHERE l.%s = $1`, schema.AssignedLetter.ID), id))
	if err != nil {
		return nil, dberr.NotFound(err, "get_letter", "Assigned letter")
	}
	return item, nil
}

// CreateLetter inserts a letter.
func (repository *PostgresRepository) CreateLetter(context context.Context, letter *AssignedLetter) error {
	table := schema.AssignedLetter
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s
	`, table.Table, table.ID, table.TaskID, table.ActionID, table.Number, table.LetterDate, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		letter.ID, letter.TaskID, letter.ActionID, letter.Number, letter.Date,
	).Scan(&letter.CreatedAt, &letter.UpdatedAt)
	return dberr.Wrap(err, "create_letter")
}

// UpdateLetter overwrites a letter.
func (repository *PostgresRepository) UpdateLetter(context context.Context, letter *AssignedLetter) error {
	table := schema.AssignedLetter
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`, table.Table, table.ActionID, table.Number, table.LetterDate, table.UpdatedAt, table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query, letter.ID, letter.ActionID, letter.Number, letter.Date).Scan(&letter.CreatedAt, &letter.UpdatedAt)
	if err != nil {
		return dberr.NotFound(err, "update_letter", "Assigned letter")
	}
	return nil
}

// DeleteLetter removes a letter.
func (repository *PostgresRepository) DeleteLetter(context context.Context, id string) error {
	return repository.delete(context, schema.AssignedLetter.Table, schema.AssignedLetter.ID, id, "Assigned letter")
}

// # Investigation Results

func selectResults() string {
	result, task := schema.InvestigationResult, schema.AssignedTask
	kind, committee, workgroup := schema.InvestigationType, schema.InvestigationCommittee, schema.Workgroup
	return fmt.Sprintf(`SELECT %s, COALESCE(it.%s, ''), COALESCE(ic.%s, ''), COALESCE(w.%s, ''), t.%s
		FROM %s r
		JOIN %s t ON t.%s = r.%s
		LEFT JOIN %s it ON it.%s = r.%s
		LEFT JOIN %s ic ON ic.%s = r.%s
		LEFT JOIN %s w ON w.%s = r.%s`,
		schema.Prefixed("r", result.Columns()...), kind.Name, committee.Name, workgroup.Name, task.ReportID,
		result.Table,
		task.Table, task.ID, result.TaskID,
		kind.Table, kind.ID, result.TypeID,
		committee.Table, committee.ID, result.CommitteeID,
		workgroup.Table, workgroup.ID, result.WorkgroupID)
}

// GetResult fetches an investigation result.
func (repository *PostgresRepository) GetResult(context context.Context, id string) (*InvestigationResult, error) {
	item, err := scanResult(repository.db.QueryRow(context, selectResults()+fmt.Sprintf(` WHERE r.%s = $1`, schema.InvestigationResult.ID), id))
	if err != nil {
		return nil, dberr.NotFound(err, "get_result", "Investigation result")
	}
	return item, nil
}

// CreateResult inserts an investigation result.
func (repository *PostgresRepository) CreateResult(context context.Context, result *InvestigationResult) error {
	table := schema.InvestigationResult
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s
	`, table.Table, table.ID, table.TaskID, table.TypeID, table.CommitteeID, table.WorkgroupID, table.Conclusion,
		table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		result.ID, result.TaskID, result.TypeID, result.CommitteeID, result.WorkgroupID, result.Conclusion,
	).Scan(&result.CreatedAt, &result.UpdatedAt)
	return dberr.Wrap(err, "create_result")
}

// UpdateResult overwrites an investigation result.
func (repository *PostgresRepository) UpdateResult(context context.Context, result *InvestigationResult) error {
	table := schema.InvestigationResult
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`, table.Table, table.TypeID, table.CommitteeID, table.WorkgroupID, table.Conclusion, table.UpdatedAt,
		table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		result.ID, result.TypeID, result.CommitteeID, result.WorkgroupID, result.Conclusion,
	).Scan(&result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		return dberr.NotFound(err, "update_result", "Investigation result")
	}
	return nil
}

// DeleteResult removes an investigation result.
func (repository *PostgresRepository) DeleteResult(context context.Context, id string) error {
	return repository.delete(context, schema.InvestigationResult.Table, schema.InvestigationResult.ID, id, "Investigation result")
}

// # Documents

// documentTarget returns the table, key column and report join of an owner kind.
func documentTarget(owner Owner) (table, keyColumn, reportJoin string, err error) {
	task := schema.AssignedTask
	switch owner {
	case OwnerTask:
		return task.Table, task.ExpertDocumentKey, "", nil
	case OwnerLetter:
		letter := schema.AssignedLetter
		return letter.Table, letter.DocumentKey, fmt.Sprintf(`JOIN %s t ON t.%s = x.%s`, task.Table, task.ID, letter.TaskID), nil
	case OwnerResult:
		result := schema.InvestigationResult
		return result.Table, result.DocumentKey, fmt.Sprintf(`JOIN %s t ON t.%s = x.%s`, task.Table, task.ID, result.TaskID), nil
	}
	return "", "", "", fmt.Errorf("task: unknown document owner %q", owner)
}

// Document returns the document key of a row and the report it belongs to.
func (repository *PostgresRepository) Document(context context.Context, owner Owner, id string) (DocumentRef, error) {
	table, keyColumn, reportJoin, err := documentTarget(owner)
	if err != nil {
		return DocumentRef{}, apperr.Internal(err)
	}

	reportColumn := "t." + schema.AssignedTask.ReportID
	if reportJoin == "" {
		reportColumn = "x." + schema.AssignedTask.ReportID
	}

	query := fmt.Sprintf(`SELECT %s, x.%s FROM %s x %s WHERE x.id = $1`, reportColumn, keyColumn, table, reportJoin)

	var ref DocumentRef
	if err := repository.db.QueryRow(context, query, id).Scan(&ref.ReportID, &ref.Key); err != nil {
		return DocumentRef{}, dberr.NotFound(err, "get_document", "Document owner")
	}
	return ref, nil
}

// SetDocument points a row at key or clears it.
func (repository *PostgresRepository) SetDocument(context context.Context, owner Owner, id string, key *string) error {
	table, keyColumn, _, err := documentTarget(owner)
	if err != nil {
		return apperr.Internal(err)
	}

	command, err := repository.db.Exec(context, fmt.Sprintf(`UPDATE %s SET %s = $2, updated_at = NOW() WHERE id = $1`, table, keyColumn), id, key)
	if err != nil {
		return dberr.Wrap(err, "set_document")
	}
	if command.RowsAffected() == 0 {
		return apperr.NotFound("Document owner")
	}
	return nil
}

func (repository *PostgresRepository) delete(context context.Context, table, idColumn, id, resource string) error {
	command, err := repository.db.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, idColumn), id)
	if err != nil {
		return dberr.Wrap(err, "delete_"+table)
	}
	if command.RowsAffected() == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}

// # Scanning

func scanTask(row pgx.Row) (*AssignedTask, error) {
	var (
		item        = &AssignedTask{}
		documentKey *string
	)
	err := row.Scan(
		&item.ID, &item.ReportID, &item.DecisionDate, &item.TrbNumber, &item.TrbDate,
		&item.ImposedFine, &item.PaidFine, &item.WorkgroupID, &documentKey,
		&item.CreatedAt, &item.UpdatedAt, &item.WorkgroupName,
	)
	item.ExpertDocument = documentOf(documentKey)
	return item, err
}

func scanLetter(row pgx.Row) (*AssignedLetter, error) {
	var (
		item        = &AssignedLetter{}
		documentKey *string
	)
	err := row.Scan(
		&item.ID, &item.TaskID, &item.ActionID, &item.Number, &item.Date, &documentKey,
		&item.CreatedAt, &item.UpdatedAt, &item.ActionName, &item.ReportID,
	)
	item.Document = documentOf(documentKey)
	return item, err
}

func scanResult(row pgx.Row) (*InvestigationResult, error) {
	var (
		item        = &InvestigationResult{}
		documentKey *string
	)
	err := row.Scan(
		&item.ID, &item.TaskID, &item.TypeID, &item.CommitteeID, &item.WorkgroupID, &item.Conclusion, &documentKey,
		&item.CreatedAt, &item.UpdatedAt, &item.TypeName, &item.CommitteeName, &item.WorkgroupName, &item.ReportID,
	)
	item.Document = documentOf(documentKey)
	return item, err
}
