package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/timeclock/internal/model"
)

var _personColumns = []string{
	"id", "created_at", "updated_at",
	"first_name", "last_name", "tag_num", "email", "role",
}

type PersonDAO struct {
	Logger *slog.Logger
	*Conn
}

func NewPersonDAO(logger *slog.Logger, conn *Conn) *PersonDAO {
	return &PersonDAO{
		Logger: logger.With("dao", "person"),
		Conn:   conn,
	}
}

type FindOptions struct {
	Limit  uint64
	Offset uint64
}

type FindPersonFilter struct {
	Name *string
}

func (dao *PersonDAO) Find(ctx context.Context, filter FindPersonFilter, opts FindOptions) ([]model.Person, error) {
	logger := dao.Logger.With("query", "find")

	builder := dao.Builder.
		Select(_personColumns...).
		From("persons").
		OrderBy("id ASC")

	if filter.Name != nil {
		builder = builder.Where(squirrel.Or{
			squirrel.Eq{"first_name": *filter.Name},
			squirrel.Eq{"last_name": *filter.Name},
		})
	}
	if opts.Limit > 0 {
		builder = builder.Limit(opts.Limit).Offset(opts.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return []model.Person{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	persons := make([]model.Person, 0, opts.Limit)
	if err := dao.selectContext(ctx, &persons, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return []model.Person{}, err
	}

	logger.Debug("success query execute", "countPersons", len(persons))

	return persons, nil
}

func (dao *PersonDAO) Get(ctx context.Context, id model.ID) (model.Person, error) {
	return dao.get(ctx, id, false)
}

// GetForUpdate loads the person and, on Postgres, takes a row lock that is
// held until the surrounding transaction ends. SQLite transactions are opened
// as immediate writers, which already excludes concurrent writers.
func (dao *PersonDAO) GetForUpdate(ctx context.Context, id model.ID) (model.Person, error) {
	return dao.get(ctx, id, dao.Dialect == DialectPostgres)
}

func (dao *PersonDAO) get(ctx context.Context, id model.ID, lock bool) (model.Person, error) {
	logger := dao.Logger.With("query", "get")

	builder := dao.Builder.
		Select(_personColumns...).
		From("persons").
		Where(squirrel.Eq{"id": id}).
		Limit(1)
	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return model.Person{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var person model.Person
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&person); err != nil {
		if IsNoRows(err) {
			return model.Person{}, model.NewError("person", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Person{}, err
	}

	logger.Debug("success query execute", "personId", person.ID)

	return person, nil
}

type InsertPersonDTO struct {
	FirstName string
	LastName  string
	TagNum    string
	Email     string
	Role      model.Role
}

func (dao *PersonDAO) Insert(ctx context.Context, dto InsertPersonDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	now := time.Now()
	query, args, err := dao.Builder.
		Insert("persons").
		Columns("created_at", "updated_at", "first_name", "last_name", "tag_num", "email", "role").
		Values(now, now, dto.FirstName, dto.LastName, dto.TagNum, dto.Email, dto.Role).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var id model.ID
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&id); err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsUniqueViolation(err) {
			return 0, model.NewError("person", model.ErrExists)
		}

		return 0, err
	}

	logger.Debug("success query execute", "insertId", id)

	return id, nil
}

type UpdatePersonDTO struct {
	FirstName *string
	LastName  *string
	Email     *string
	Role      *model.Role
}

func (dao *PersonDAO) Update(ctx context.Context, id model.ID, dto UpdatePersonDTO) error {
	logger := dao.Logger.With("query", "update")

	data := make(map[string]any, 5)
	data["updated_at"] = time.Now()
	if dto.FirstName != nil {
		data["first_name"] = *dto.FirstName
	}
	if dto.LastName != nil {
		data["last_name"] = *dto.LastName
	}
	if dto.Email != nil {
		data["email"] = *dto.Email
	}
	if dto.Role != nil {
		data["role"] = *dto.Role
	}

	query, args, err := dao.Builder.
		Update("persons").
		SetMap(data).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	res, err := dao.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsUniqueViolation(err) {
			return model.NewError("person", model.ErrExists)
		}

		return err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.NewError("person", model.ErrNotFound)
	}

	logger.Debug("success query execute", "updateId", id, "countUpdatedFields", len(data))

	return nil
}

func (dao *PersonDAO) Delete(ctx context.Context, id model.ID) error {
	logger := dao.Logger.With("query", "delete")

	query, args, err := dao.Builder.
		Delete("persons").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	logger.Debug("success query execute", "deleteId", id)

	return nil
}
