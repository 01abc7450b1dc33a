// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package export

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/gumruk/internal/core/report"
	"github.com/taibuivan/gumruk/internal/core/violation"
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

// recordQuery selects one row per report with every referenced name joined in.
func recordQuery() string {
	r, v, o := schema.Report, schema.Violation, schema.CustomsOfficer
	return fmt.Sprintf(`
		SELECT r.%s, r.%s, COALESCE(r.%s, ''), r.%s, co.name, cp.name,
			v.%s, v.%s, COALESCE(v.%s, ''), COALESCE(v.%s, ''), COALESCE(v.%s, ''), COALESCE(v.%s, ''),
			COALESCE(v.%s, ''), COALESCE(v.%s, ''), COALESCE(v.%s, ''), v.%s, COALESCE(v.%s, ''),
			COALESCE(v.%s, ''), v.%s, COALESCE(v.%s, ''), COALESCE(nat.name, ''),
			r.%s, COALESCE(fc.name, ''), COALESCE(tc.name, ''), COALESCE(vb.name, ''), r.%s,
			COALESCE(trc.name, ''), db.name, COALESCE(md.name, ''), r.%s,
			o.%s, o.%s, o.%s, COALESCE(pos.name, ''), COALESCE(mil.name, ''),
			r.%s, r.%s
		%s
		JOIN %s co ON co.id = r.%s
		JOIN %s cp ON cp.id = r.%s
		JOIN %s db ON db.id = r.%s
		LEFT JOIN %s md ON md.id = r.%s
		LEFT JOIN %s nat ON nat.id = v.%s
		LEFT JOIN %s fc ON fc.id = r.%s
		LEFT JOIN %s tc ON tc.id = r.%s
		LEFT JOIN %s vb ON vb.id = r.%s
		LEFT JOIN %s trc ON trc.id = r.%s
		LEFT JOIN %s pos ON pos.id = o.%s
		LEFT JOIN %s mil ON mil.id = o.%s`,
		r.ID, r.CaseNumber, r.ProtocolNumber, r.ReportDate,
		v.ID, v.Kind, v.CompanyName, v.CompanyBossFullName, v.Address, v.Phone,
		v.ViolatorName, v.ViolatorSurname, v.FatherName, v.DateOfBirth, v.PlaceOfBirth,
		v.PassportNumber, v.PassportIssueDate, v.ViolatorAddress,
		r.Direction, r.CarNumber, r.LanguageOfWork,
		o.Name, o.Surname, o.Midname,
		r.CreatedAt, r.UpdatedAt,
		report.FromClause(),
		schema.CustomsOffice.Table, r.OfficeID,
		schema.CustomsPoint.Table, r.PointID,
		schema.DiscoveryBasis.Table, r.BasisID,
		schema.MethodOfDiscovery.Table, r.MethodID,
		schema.Country.Table, v.NationalityID,
		schema.Country.Table, r.FromCountryID,
		schema.Country.Table, r.ToCountryID,
		schema.VehicleBrand.Table, r.VehicleBrandID,
		schema.TransportCompany.Table, r.TransportCompanyID,
		schema.Position.Table, o.PositionID,
		schema.MilitaryName.Table, o.MilitaryNameID,
	)
}

/*
Records loads the reports matching filter and then fans out one query per
child collection.
*/
func (repository *PostgresRepository) Records(context context.Context, filter report.Filter, limit int) ([]*Record, error) {
	where, args := filter.Where(nil)
	args = append(args, limit)
	query := recordQuery() + where + fmt.Sprintf(` ORDER BY r.%s DESC, r.%s DESC LIMIT $%d`,
		schema.Report.CreatedAt, schema.Report.ID, len(args))

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "export_records")
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Record, error) {
		return scanRecord(row)
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_export_record")
	}
	if len(records) == 0 {
		return records, nil
	}

	ids := make([]string, len(records))
	byID := make(map[string]*Record, len(records))
	for i, record := range records {
		ids[i] = record.ReportID
		byID[record.ReportID] = record
	}

	group, groupCtx := errgroup.WithContext(context)
	group.Go(func() error { return repository.attachCodexes(groupCtx, ids, byID) })
	group.Go(func() error { return repository.attachWitnesses(groupCtx, ids, byID) })
	group.Go(func() error { return repository.attachGoods(groupCtx, ids, byID) })
	group.Go(func() error { return repository.attachTasks(groupCtx, ids, byID) })
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

func (repository *PostgresRepository) attachCodexes(context context.Context, ids []string, byID map[string]*Record) error {
	link, codex := schema.ReportCodex, schema.AdministrationCodex
	query := fmt.Sprintf(`
		SELECT rc.%s, c.%s FROM %s rc JOIN %s c ON c.%s = rc.%s
		WHERE rc.%s = ANY($1::uuid[]) ORDER BY c.%s`,
		link.ReportID, codex.Name, link.Table, codex.Table, codex.ID, link.CodexID, link.ReportID, codex.Name)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "export_codexes")
	}

	var reportID, name string
	_, err = pgx.ForEachRow(rows, []any{&reportID, &name}, func() error {
		byID[reportID].Codexes = append(byID[reportID].Codexes, name)
		return nil
	})
	return dberr.Wrap(err, "scan_export_codex")
}

func (repository *PostgresRepository) attachWitnesses(context context.Context, ids []string, byID map[string]*Record) error {
	witness := schema.Witness
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = ANY($1::uuid[]) ORDER BY %s`,
		witness.ReportID, witness.ID, witness.FullName, witness.Address, witness.Table, witness.ReportID, witness.ID)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "export_witnesses")
	}

	var (
		reportID string
		item     report.Witness
	)
	_, err = pgx.ForEachRow(rows, []any{&reportID, &item.ID, &item.FullName, &item.Address}, func() error {
		byID[reportID].Witnesses = append(byID[reportID].Witnesses, item)
		return nil
	})
	return dberr.Wrap(err, "scan_export_witness")
}

func (repository *PostgresRepository) attachGoods(context context.Context, ids []string, byID map[string]*Record) error {
	good, product, unit, reason := schema.StoredGood, schema.Product, schema.Unit, schema.ViolationReason
	query := fmt.Sprintf(`
		SELECT g.%s, p.%s, g.%s, un.%s, COALESCE(vr.%s, ''), COALESCE(g.%s, '')
		FROM %s g
		JOIN %s p ON p.%s = g.%s
		JOIN %s un ON un.%s = g.%s
		LEFT JOIN %s vr ON vr.%s = g.%s
		WHERE g.%s = ANY($1::uuid[])
		ORDER BY g.%s, g.%s`,
		good.ReportID, product.Name, good.Amount, unit.Name, reason.Name, good.Note,
		good.Table,
		product.Table, product.ID, good.ProductID,
		unit.Table, unit.ID, good.UnitID,
		reason.Table, reason.ID, good.ReasonID,
		good.ReportID,
		good.CreatedAt, good.ID)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "export_goods")
	}

	var (
		reportID string
		item     Good
	)
	_, err = pgx.ForEachRow(rows, []any{&reportID, &item.Product, &item.Amount, &item.Unit, &item.Reason, &item.Note}, func() error {
		byID[reportID].Goods = append(byID[reportID].Goods, item)
		return nil
	})
	return dberr.Wrap(err, "scan_export_good")
}

// attachTasks loads tasks newest first and then their letters, newest letter first.
func (repository *PostgresRepository) attachTasks(context context.Context, ids []string, byID map[string]*Record) error {
	task, workgroup := schema.AssignedTask, schema.Workgroup
	query := fmt.Sprintf(`
		SELECT t.%s, t.%s, t.%s, t.%s, w.%s
		FROM %s t JOIN %s w ON w.%s = t.%s
		WHERE t.%s = ANY($1::uuid[])
		ORDER BY t.%s DESC, t.%s DESC`,
		task.ID, task.ReportID, task.ImposedFine, task.PaidFine, workgroup.Name,
		task.Table, workgroup.Table, workgroup.ID, task.WorkgroupID,
		task.ReportID,
		task.CreatedAt, task.ID)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "export_tasks")
	}

	type position struct {
		reportID string
		index    int
	}
	tasks := make(map[string]position)

	var (
		taskID, reportID string
		item             Task
	)
	_, err = pgx.ForEachRow(rows, []any{&taskID, &reportID, &item.ImposedFine, &item.PaidFine, &item.Workgroup}, func() error {
		record := byID[reportID]
		tasks[taskID] = position{reportID: reportID, index: len(record.Tasks)}
		record.Tasks = append(record.Tasks, item)
		return nil
	})
	if err != nil {
		return dberr.Wrap(err, "scan_export_task")
	}
	if len(tasks) == 0 {
		return nil
	}

	letter, action := schema.AssignedLetter, schema.LetterAction
	query = fmt.Sprintf(`
		SELECT l.%s, l.%s, l.%s, a.%s
		FROM %s l
		JOIN %s t ON t.%s = l.%s
		JOIN %s a ON a.%s = l.%s
		WHERE t.%s = ANY($1::uuid[])
		ORDER BY l.%s DESC, l.%s DESC`,
		letter.TaskID, letter.Number, letter.LetterDate, action.Name,
		letter.Table,
		task.Table, task.ID, letter.TaskID,
		action.Table, action.ID, letter.ActionID,
		task.ReportID,
		letter.LetterDate, letter.CreatedAt)

	rows, err = repository.db.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "export_letters")
	}

	var entry Letter
	_, err = pgx.ForEachRow(rows, []any{&taskID, &entry.Number, &entry.Date, &entry.Action}, func() error {
		at := tasks[taskID]
		owner := &byID[at.reportID].Tasks[at.index]
		owner.Letters = append(owner.Letters, entry)
		return nil
	})
	return dberr.Wrap(err, "scan_export_letter")
}

func scanRecord(row pgx.Row) (*Record, error) {
	var (
		record = &Record{}
		kind   string
		v      = &record.Violation
		o      = &record.Officer
	)

	err := row.Scan(
		&record.ReportID, &record.CaseNumber, &record.ProtocolNumber, &record.ReportDate, &record.OfficeName, &record.PointName,
		&v.ID, &kind, &v.CompanyName, &v.CompanyBossFullName, &v.Address, &v.Phone,
		&v.ViolatorName, &v.ViolatorSurname, &v.FatherName, &v.DateOfBirth, &v.PlaceOfBirth,
		&v.PassportNumber, &v.PassportIssueDate, &v.ViolatorAddress, &v.NationalityName,
		&record.Direction, &record.FromCountry, &record.ToCountry, &record.VehicleBrand, &record.CarNumber,
		&record.TransportCompany, &record.Basis, &record.Method, &record.LanguageOfWork,
		&o.Name, &o.Surname, &o.Midname, &o.Position, &o.MilitaryName,
		&record.CreatedAt, &record.UpdatedAt,
	)
	v.Kind = violation.Kind(kind)
	return record, err
}
