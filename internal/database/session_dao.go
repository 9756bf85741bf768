package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/timeclock/internal/model"
)

var _sessionColumns = []string{
	"id", "person_id", "start_time", "stop_time", "break_seconds",
}

type SessionDAO struct {
	Logger *slog.Logger
	*Conn
}

func NewSessionDAO(logger *slog.Logger, conn *Conn) *SessionDAO {
	return &SessionDAO{
		Logger: logger.With("dao", "session"),
		Conn:   conn,
	}
}

func (dao *SessionDAO) Get(ctx context.Context, person, id model.ID) (model.Session, error) {
	return dao.getOne(ctx, "get", squirrel.Eq{"id": id, "person_id": person})
}

func (dao *SessionDAO) GetOpen(ctx context.Context, person model.ID) (model.Session, error) {
	return dao.getOne(ctx, "get_open", squirrel.Eq{"person_id": person, "stop_time": nil})
}

func (dao *SessionDAO) getOne(ctx context.Context, name string, where squirrel.Eq) (model.Session, error) {
	logger := dao.Logger.With("query", name)

	query, args, err := dao.Builder.
		Select(_sessionColumns...).
		From("sessions").
		Where(where).
		OrderBy("start_time DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Session{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var session model.Session
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&session); err != nil {
		if IsNoRows(err) {
			return model.Session{}, model.NewError("session", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Session{}, err
	}

	dao.normalize(&session)

	logger.Debug("success query execute", "sessionId", session.ID)

	return session, nil
}

type FindSessionFilter struct {
	Person   *model.ID
	OpenOnly bool
	// ClosedOnly wins over OpenOnly when both are set.
	ClosedOnly bool
}

func (dao *SessionDAO) Find(ctx context.Context, filter FindSessionFilter) ([]model.Session, error) {
	logger := dao.Logger.With("query", "find")

	builder := dao.Builder.
		Select(_sessionColumns...).
		From("sessions").
		OrderBy("start_time ASC", "id ASC")

	if filter.Person != nil {
		builder = builder.Where(squirrel.Eq{"person_id": *filter.Person})
	}
	switch {
	case filter.ClosedOnly:
		builder = builder.Where(squirrel.NotEq{"stop_time": nil})
	case filter.OpenOnly:
		builder = builder.Where(squirrel.Eq{"stop_time": nil})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return []model.Session{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	sessions := make([]model.Session, 0)
	if err := dao.selectContext(ctx, &sessions, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return []model.Session{}, err
	}

	for i := range sessions {
		dao.normalize(&sessions[i])
	}

	logger.Debug("success query execute", "countSessions", len(sessions))

	return sessions, nil
}

func (dao *SessionDAO) FindWithPersons(ctx context.Context) ([]model.SessionEntry, error) {
	logger := dao.Logger.With("query", "find_with_persons")

	query, args, err := dao.Builder.
		Select(
			"s.id", "s.person_id", "s.start_time", "s.stop_time", "s.break_seconds",
			"p.first_name", "p.last_name",
		).
		From("sessions s").
		Join("persons p ON p.id = s.person_id").
		OrderBy("s.start_time ASC", "s.id ASC").
		ToSql()
	if err != nil {
		return []model.SessionEntry{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	entries := make([]model.SessionEntry, 0)
	if err := dao.selectContext(ctx, &entries, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return []model.SessionEntry{}, err
	}

	for i := range entries {
		dao.normalize(&entries[i].Session)
	}

	logger.Debug("success query execute", "countSessions", len(entries))

	return entries, nil
}

type InsertSessionDTO struct {
	Person model.ID
	Start  time.Time
}

func (dao *SessionDAO) Insert(ctx context.Context, dto InsertSessionDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("sessions").
		Columns("person_id", "start_time", "break_seconds").
		Values(dto.Person, dto.Start, 0).
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
			return 0, model.NewDetailedError("session", model.ErrConflict, "session already open")
		}
		if IsForeignKeyViolation(err) {
			return 0, model.NewError("person", model.ErrNotFound)
		}

		return 0, err
	}

	logger.Debug("success query execute", "insertId", id)

	return id, nil
}

type UpdateSessionDTO struct {
	Start *time.Time
	Stop  *time.Time
}

func (dao *SessionDAO) Update(ctx context.Context, person, id model.ID, dto UpdateSessionDTO) (int64, error) {
	logger := dao.Logger.With("query", "update")

	data := make(map[string]any, 2)
	if dto.Start != nil {
		data["start_time"] = *dto.Start
	}
	if dto.Stop != nil {
		data["stop_time"] = *dto.Stop
	}

	query, args, err := dao.Builder.
		Update("sessions").
		SetMap(data).
		Where(squirrel.Eq{"id": id, "person_id": person}).
		ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	res, err := dao.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsUniqueViolation(err) {
			return 0, model.NewDetailedError("session", model.ErrConflict, "session already open")
		}

		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	logger.Debug("success query execute", "updateId", id, "countUpdatedRows", affected)

	return affected, nil
}

func (dao *SessionDAO) DeleteClosed(ctx context.Context, person, id model.ID) (int64, error) {
	return dao.delete(ctx, "delete_closed", squirrel.And{
		squirrel.Eq{"id": id, "person_id": person},
		squirrel.NotEq{"stop_time": nil},
	})
}

func (dao *SessionDAO) DeleteByPerson(ctx context.Context, person model.ID) (int64, error) {
	return dao.delete(ctx, "delete_by_person", squirrel.Eq{"person_id": person})
}

func (dao *SessionDAO) delete(ctx context.Context, name string, where squirrel.Sqlizer) (int64, error) {
	logger := dao.Logger.With("query", name)

	query, args, err := dao.Builder.
		Delete("sessions").
		Where(where).
		ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	res, err := dao.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Warn("failed query execute", "error", err)

		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	logger.Debug("success query execute", "countDeletedRows", affected)

	return affected, nil
}

func (dao *SessionDAO) normalize(s *model.Session) {
	s.Start = dao.wallClock(s.Start)
	if s.Stop != nil {
		stop := dao.wallClock(*s.Stop)
		s.Stop = &stop
	}
}
