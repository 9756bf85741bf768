package database

import (
	"context"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/timeclock/internal/model"
)

type TotalTimeDAO struct {
	Logger *slog.Logger
	*Conn
}

func NewTotalTimeDAO(logger *slog.Logger, conn *Conn) *TotalTimeDAO {
	return &TotalTimeDAO{
		Logger: logger.With("dao", "total_time"),
		Conn:   conn,
	}
}

func (dao *TotalTimeDAO) Get(ctx context.Context, person model.ID) (model.TotalTime, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("person_id", "sum_time", "days_worked", "break_time").
		From("total_time").
		Where(squirrel.Eq{"person_id": person}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.TotalTime{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var total model.TotalTime
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&total); err != nil {
		if IsNoRows(err) {
			return model.TotalTime{}, model.NewError("total time", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.TotalTime{}, err
	}

	logger.Debug("success query execute", "total", total)

	return total, nil
}

func (dao *TotalTimeDAO) FindWithPersons(ctx context.Context) ([]model.PersonTotalTime, error) {
	logger := dao.Logger.With("query", "find_with_persons")

	query, args, err := dao.Builder.
		Select(
			"p.id AS person_id", "p.first_name", "p.last_name",
			"COALESCE(t.sum_time, '00:00:00') AS sum_time",
			"COALESCE(t.days_worked, 0) AS days_worked",
			"COALESCE(t.break_time, '00:00:00') AS break_time",
		).
		From("persons p").
		LeftJoin("total_time t ON t.person_id = p.id").
		OrderBy("p.id ASC").
		ToSql()
	if err != nil {
		return []model.PersonTotalTime{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	totals := make([]model.PersonTotalTime, 0)
	if err := dao.selectContext(ctx, &totals, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return []model.PersonTotalTime{}, err
	}

	logger.Debug("success query execute", "countTotals", len(totals))

	return totals, nil
}

// Upsert overwrites the aggregate columns of a person's row, creating the row
// when it is missing. An existing break_time is left as stored.
func (dao *TotalTimeDAO) Upsert(ctx context.Context, total model.TotalTime) error {
	logger := dao.Logger.With("query", "upsert")

	if total.BreakTime == "" {
		total.BreakTime = model.ZeroClock
	}

	query, args, err := dao.Builder.
		Insert("total_time").
		Columns("person_id", "sum_time", "days_worked", "break_time").
		Values(total.PersonID, total.SumTime, total.DaysWorked, total.BreakTime).
		Suffix("ON CONFLICT (person_id) DO UPDATE SET " +
			"sum_time = EXCLUDED.sum_time, " +
			"days_worked = EXCLUDED.days_worked").
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err := dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsForeignKeyViolation(err) {
			return model.NewError("person", model.ErrNotFound)
		}

		return err
	}

	logger.Debug("success query execute", "personId", total.PersonID)

	return nil
}

func (dao *TotalTimeDAO) Delete(ctx context.Context, person model.ID) error {
	logger := dao.Logger.With("query", "delete")

	query, args, err := dao.Builder.
		Delete("total_time").
		Where(squirrel.Eq{"person_id": person}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err := dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	logger.Debug("success query execute", "deleteId", person)

	return nil
}
