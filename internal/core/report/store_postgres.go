// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/database/schema"
	"github.com/taibuivan/gumruk/internal/platform/dberr"
	"github.com/taibuivan/gumruk/pkg/pointer"
)

// PostgresRepository implements [Repository] using a pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func selectClause() string {
	codex := schema.ReportCodex
	return fmt.Sprintf(`SELECT %s, COALESCE(u.%s, ''),
		ARRAY(SELECT rc.%s FROM %s rc WHERE rc.%s = r.%s ORDER BY rc.%s)`,
		schema.Prefixed("r", schema.Report.Columns()...), schema.UserAccount.Username,
		codex.CodexID, codex.Table, codex.ReportID, schema.Report.ID, codex.CodexID,
	)
}

// List retrieves a page of reports.
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Report, int, error) {
	where, args := filter.Where(nil)

	var total int
	if err := repository.db.QueryRow(context, `SELECT count(*)`+FromClause()+where, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_reports")
	}

	query := selectClause() + FromClause() + where +
		fmt.Sprintf(` ORDER BY r.%s DESC, r.%s DESC LIMIT $%s OFFSET $%s`,
			schema.Report.CreatedAt, schema.Report.ID, itos(len(args)+1), itos(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_reports")
	}
	defer rows.Close()

	reports := make([]*Report, 0, limit)
	for rows.Next() {
		item, err := scanReport(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_report")
		}
		reports = append(reports, item)
	}

	return reports, total, dberr.Wrap(rows.Err(), "list_reports")
}

// Get fetches a report with witnesses and codex IDs.
func (repository *PostgresRepository) Get(context context.Context, id string) (*Report, error) {
	query := selectClause() + FromClause() + fmt.Sprintf(` WHERE r.%s = $1`, schema.Report.ID)

	item, err := scanReport(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.NotFound(err, "get_report", "Report")
	}

	witness := schema.Witness
	rows, err := repository.db.Query(context, fmt.Sprintf(`
		SELECT %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s
	`, witness.ID, witness.FullName, witness.Address, witness.Table, witness.ReportID, witness.ID), id)
	if err != nil {
		return nil, dberr.Wrap(err, "list_witnesses")
	}

	item.Witnesses, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (Witness, error) {
		var w Witness
		err := row.Scan(&w.ID, &w.FullName, &w.Address)
		return w, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_witness")
	}
	return item, nil
}

// Create inserts a report with its codex links and witnesses.
func (repository *PostgresRepository) Create(context context.Context, report *Report) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_report")
	}
	defer transaction.Rollback(context)

	table := schema.Report
	columns := writableColumns()
	placeholders := "$1"
	for i := range columns {
		placeholders += ", $" + itos(i+2)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES (%s, $%s)
		RETURNING %s, %s
	`, table.Table, table.ID, schema.List(columns...), table.CreatedBy,
		placeholders, itos(len(columns)+2), table.CreatedAt, table.UpdatedAt)

	args := append([]any{report.ID}, writableValues(report)...)
	args = append(args, report.CreatedBy)
	if err := transaction.QueryRow(context, query, args...).Scan(&report.CreatedAt, &report.UpdatedAt); err != nil {
		return dberr.Wrap(err, "create_report")
	}

	if err := replaceChildren(context, transaction, report); err != nil {
		return err
	}

	return dberr.Wrap(transaction.Commit(context), "commit_create_report")
}

// Update overwrites a report and replaces its codex links and witnesses.
func (repository *PostgresRepository) Update(context context.Context, report *Report) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_report")
	}
	defer transaction.Rollback(context)

	table := schema.Report
	assignments := ""
	for i, column := range writableColumns() {
		assignments += fmt.Sprintf("%s = $%s, ", column, itos(i+2))
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s%s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`, table.Table, assignments, table.UpdatedAt, table.ID, table.CreatedAt, table.UpdatedAt)

	args := append([]any{report.ID}, writableValues(report)...)
	if err := transaction.QueryRow(context, query, args...).Scan(&report.CreatedAt, &report.UpdatedAt); err != nil {
		return dberr.NotFound(err, "update_report", "Report")
	}

	if err := replaceChildren(context, transaction, report); err != nil {
		return err
	}

	return dberr.Wrap(transaction.Commit(context), "commit_update_report")
}

// replaceChildren swaps the codex links and witnesses of a report in one batch.
func replaceChildren(context context.Context, transaction pgx.Tx, report *Report) error {
	codex, witness := schema.ReportCodex, schema.Witness

	batch := &pgx.Batch{}
	batch.Queue(fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, codex.Table, codex.ReportID), report.ID)
	batch.Queue(fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, witness.Table, witness.ReportID), report.ID)

	insertCodex := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`, codex.Table, codex.ReportID, codex.CodexID)
	for _, codexID := range report.CodexIDs {
		batch.Queue(insertCodex, report.ID, codexID)
	}

	insertWitness := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		witness.Table, witness.ReportID, witness.FullName, witness.Address, witness.ID)
	for i := range report.Witnesses {
		w := &report.Witnesses[i]
		batch.Queue(insertWitness, report.ID, w.FullName, w.Address).QueryRow(func(row pgx.Row) error {
			return row.Scan(&w.ID)
		})
	}

	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "replace_report_children")
	}
	return nil
}

// Delete removes a report.
func (repository *PostgresRepository) Delete(context context.Context, id string) ([]string, error) {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return nil, dberr.Wrap(err, "begin_delete_report")
	}
	defer transaction.Rollback(context)

	rows, err := transaction.Query(context, objectKeysQuery(), id)
	if err != nil {
		return nil, dberr.Wrap(err, "report_object_keys")
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, dberr.Wrap(err, "scan_object_key")
	}

	table := schema.Report
	command, err := transaction.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID), id)
	if err != nil {
		return nil, dberr.Wrap(err, "delete_report")
	}
	if command.RowsAffected() == 0 {
		return nil, apperr.NotFound("Report")
	}

	return keys, dberr.Wrap(transaction.Commit(context), "commit_delete_report")
}

// objectKeysQuery selects every stored file key reachable from a report: photos
// of its goods and the documents of its tasks, letters and results.
func objectKeysQuery() string {
	good, image := schema.StoredGood, schema.StoredGoodImage
	task, letter, result := schema.AssignedTask, schema.AssignedLetter, schema.InvestigationResult
	return fmt.Sprintf(`
		SELECT i.%[1]s FROM %[2]s i JOIN %[3]s g ON g.%[4]s = i.%[5]s WHERE g.%[6]s = $1
		UNION ALL
		SELECT t.%[7]s FROM %[8]s t WHERE t.%[9]s = $1 AND t.%[7]s IS NOT NULL
		UNION ALL
		SELECT l.%[10]s FROM %[11]s l JOIN %[8]s t ON t.%[12]s = l.%[13]s WHERE t.%[9]s = $1 AND l.%[10]s IS NOT NULL
		UNION ALL
		SELECT x.%[14]s FROM %[15]s x JOIN %[8]s t ON t.%[12]s = x.%[16]s WHERE t.%[9]s = $1 AND x.%[14]s IS NOT NULL
	`,
		image.ObjectKey, image.Table, good.Table, good.ID, image.StoredGoodID, good.ReportID,
		task.ExpertDocumentKey, task.Table, task.ReportID,
		letter.DocumentKey, letter.Table, task.ID, letter.TaskID,
		result.DocumentKey, result.Table, result.TaskID,
	)
}

// Owner returns the creator of a report.
func (repository *PostgresRepository) Owner(context context.Context, id string) (*string, error) {
	table := schema.Report

	var owner *string
	err := repository.db.QueryRow(context, fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, table.CreatedBy, table.Table, table.ID), id).Scan(&owner)
	if err != nil {
		return nil, dberr.NotFound(err, "get_report_owner", "Report")
	}
	return owner, nil
}

/*
PersonReports loads the reports of one violator with their goods, codexes and
first task.

Description: The report rows are read first; goods, images, codexes and tasks
are then fetched concurrently for the whole set.
*/
func (repository *PostgresRepository) PersonReports(context context.Context, passportNumber string) ([]*PersonReport, error) {
	report, violation := schema.Report, schema.Violation

	rows, err := repository.db.Query(context, fmt.Sprintf(`
		SELECT r.%s, r.%s, r.%s
		FROM %s r JOIN %s v ON v.%s = r.%s
		WHERE v.%s = $1
		ORDER BY r.%s DESC
	`, report.ID, report.CaseNumber, report.ReportDate,
		report.Table, violation.Table, violation.ID, report.ViolationID,
		violation.PassportNumber, report.CreatedAt), passportNumber)
	if err != nil {
		return nil, dberr.Wrap(err, "list_person_reports")
	}

	reports, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*PersonReport, error) {
		item := &PersonReport{StoredGoods: []PersonGood{}, Codexes: []Codex{}}
		err := row.Scan(&item.ReportID, &item.CaseNumber, &item.ReportDate)
		return item, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_person_report")
	}
	if len(reports) == 0 {
		return reports, nil
	}

	ids := make([]string, len(reports))
	byID := make(map[string]*PersonReport, len(reports))
	for i, item := range reports {
		ids[i] = item.ReportID
		byID[item.ReportID] = item
	}

	var (
		goods   []personGoodRow
		images  []personImageRow
		codexes []personCodexRow
		tasks   []personTaskRow
	)

	group, groupCtx := errgroup.WithContext(context)
	group.Go(func() (err error) {
		goods, err = repository.personGoods(groupCtx, ids)
		return err
	})
	group.Go(func() (err error) {
		images, err = repository.personImages(groupCtx, ids)
		return err
	})
	group.Go(func() (err error) {
		codexes, err = repository.personCodexes(groupCtx, ids)
		return err
	})
	group.Go(func() (err error) {
		tasks, err = repository.personTasks(groupCtx, ids)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	imagesByGood := make(map[string][]PersonImage)
	for _, image := range images {
		imagesByGood[image.goodID] = append(imagesByGood[image.goodID], image.PersonImage)
	}
	for _, good := range goods {
		good.Images = imagesByGood[good.ID]
		if good.Images == nil {
			good.Images = []PersonImage{}
		}
		byID[good.reportID].StoredGoods = append(byID[good.reportID].StoredGoods, good.PersonGood)
	}
	for _, codex := range codexes {
		byID[codex.reportID].Codexes = append(byID[codex.reportID].Codexes, codex.Codex)
	}
	for _, task := range tasks {
		byID[task.reportID].ImposedFine = task.imposedFine
		byID[task.reportID].WorkgroupName = pointer.To(task.workgroupName)
	}

	return reports, nil
}

type personGoodRow struct {
	PersonGood
	reportID string
}

type personImageRow struct {
	PersonImage
	goodID string
}

type personCodexRow struct {
	Codex
	reportID string
}

type personTaskRow struct {
	reportID      string
	imposedFine   *float64
	workgroupName string
}

func (repository *PostgresRepository) personGoods(context context.Context, reportIDs []string) ([]personGoodRow, error) {
	good, product, unit := schema.StoredGood, schema.Product, schema.Unit

	rows, err := repository.db.Query(context, fmt.Sprintf(`
		SELECT g.%s, g.%s, g.%s, p.%s, g.%s, u.%s, g.%s
		FROM %s g
		JOIN %s p ON p.%s = g.%s
		JOIN %s u ON u.%s = g.%s
		WHERE g.%s = ANY($1::uuid[])
		ORDER BY g.%s
	`, good.ID, good.ReportID, good.ProductID, product.Name, good.Amount, unit.Name, good.Note,
		good.Table,
		product.Table, product.ID, good.ProductID,
		unit.Table, unit.ID, good.UnitID,
		good.ReportID, good.CreatedAt), reportIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "list_person_goods")
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (personGoodRow, error) {
		var item personGoodRow
		err := row.Scan(&item.ID, &item.reportID, &item.ProductID, &item.ProductName, &item.Amount, &item.UnitName, &item.Note)
		return item, err
	})
	return result, dberr.Wrap(err, "scan_person_good")
}

func (repository *PostgresRepository) personImages(context context.Context, reportIDs []string) ([]personImageRow, error) {
	image, good := schema.StoredGoodImage, schema.StoredGood

	rows, err := repository.db.Query(context, fmt.Sprintf(`
		SELECT i.%s, i.%s, i.%s, i.%s
		FROM %s i
		JOIN %s g ON g.%s = i.%s
		WHERE g.%s = ANY($1::uuid[])
		ORDER BY i.%s
	`, image.ID, image.StoredGoodID, image.ObjectKey, image.Description,
		image.Table,
		good.Table, good.ID, image.StoredGoodID,
		good.ReportID, image.UploadedAt), reportIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "list_person_images")
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (personImageRow, error) {
		var item personImageRow
		err := row.Scan(&item.ID, &item.goodID, &item.Key, &item.Description)
		return item, err
	})
	return result, dberr.Wrap(err, "scan_person_image")
}

func (repository *PostgresRepository) personCodexes(context context.Context, reportIDs []string) ([]personCodexRow, error) {
	link, codex := schema.ReportCodex, schema.AdministrationCodex

	rows, err := repository.db.Query(context, fmt.Sprintf(`
		SELECT rc.%s, c.%s, c.%s
		FROM %s rc
		JOIN %s c ON c.%s = rc.%s
		WHERE rc.%s = ANY($1::uuid[])
		ORDER BY c.%s
	`, link.ReportID, codex.ID, codex.Name,
		link.Table,
		codex.Table, codex.ID, link.CodexID,
		link.ReportID, codex.Name), reportIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "list_person_codexes")
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (personCodexRow, error) {
		var item personCodexRow
		err := row.Scan(&item.reportID, &item.ID, &item.Name)
		return item, err
	})
	return result, dberr.Wrap(err, "scan_person_codex")
}

// personTasks returns the newest task of every report.
func (repository *PostgresRepository) personTasks(context context.Context, reportIDs []string) ([]personTaskRow, error) {
	task, workgroup := schema.AssignedTask, schema.Workgroup

	rows, err := repository.db.Query(context, fmt.Sprintf(`
		SELECT DISTINCT ON (t.%s) t.%s, t.%s, w.%s
		FROM %s t
		JOIN %s w ON w.%s = t.%s
		WHERE t.%s = ANY($1::uuid[])
		ORDER BY t.%s, t.%s DESC
	`, task.ReportID, task.ReportID, task.ImposedFine, workgroup.Name,
		task.Table,
		workgroup.Table, workgroup.ID, task.WorkgroupID,
		task.ReportID,
		task.ReportID, task.CreatedAt), reportIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "list_person_tasks")
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (personTaskRow, error) {
		var item personTaskRow
		err := row.Scan(&item.reportID, &item.imposedFine, &item.workgroupName)
		return item, err
	})
	return result, dberr.Wrap(err, "scan_person_task")
}

// writableColumns lists the editable columns in the order of writableValues.
func writableColumns() []string {
	table := schema.Report
	return []string{
		table.CaseNumber, table.ProtocolNumber, table.DeclarationNumber, table.ReportDate,
		table.ViolationID, table.OfficeID, table.PointID, table.OfficerID, table.BasisID, table.MethodID,
		table.LanguageOfWork, table.Direction, table.FromCountryID, table.ToCountryID,
		table.VehicleBrandID, table.TransportCompanyID, table.CarNumber,
	}
}

func writableValues(report *Report) []any {
	return []any{
		report.CaseNumber,
		pointer.NonEmpty(report.ProtocolNumber),
		report.DeclarationNumber,
		report.ReportDate,
		report.ViolationID,
		report.OfficeID,
		report.PointID,
		report.OfficerID,
		report.BasisID,
		report.MethodID,
		report.LanguageOfWork,
		string(report.Direction),
		report.FromCountryID,
		report.ToCountryID,
		report.VehicleBrandID,
		report.TransportCompanyID,
		report.CarNumber,
	}
}

func scanReport(row pgx.Row) (*Report, error) {
	var (
		item           = &Report{}
		protocolNumber *string
		direction      string
	)

	err := row.Scan(
		&item.ID, &item.CaseNumber, &protocolNumber, &item.DeclarationNumber, &item.ReportDate,
		&item.ViolationID, &item.OfficeID, &item.PointID, &item.OfficerID, &item.BasisID, &item.MethodID,
		&item.LanguageOfWork, &direction, &item.FromCountryID, &item.ToCountryID,
		&item.VehicleBrandID, &item.TransportCompanyID, &item.CarNumber,
		&item.CreatedBy, &item.CreatedAt, &item.UpdatedAt,
		&item.CreatedByUsername, &item.CodexIDs,
	)
	if err != nil {
		return nil, err
	}

	item.ProtocolNumber = pointer.Val(protocolNumber)
	item.Direction = Direction(direction)
	return item, nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
