package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/domain"
)

func (r *Repository) InsertTimetable(timetable *domain.Timetable) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO timetables (branch, semester, year, days_per_week, hours_per_day, lunch_break_start, lunch_break_duration, score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, version
	`

	params := []any{
		timetable.Branch,
		timetable.Semester,
		timetable.Year,
		timetable.DaysPerWeek,
		timetable.HoursPerDay,
		timetable.LunchBreakStart,
		timetable.LunchBreakDuration,
		timetable.Score,
	}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&timetable.ID, &timetable.CreatedAt, &timetable.Version); err != nil {
		return err
	}

	for _, entry := range timetable.Entries {
		query := `
			INSERT INTO timetable_entries (timetable_id, day_of_week, hour_of_day, subject_id, subject_name, subject_code, faculty, room, is_lab)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`

		params := []any{timetable.ID, entry.Day, entry.Hour, entry.SubjectID, entry.SubjectName, entry.SubjectCode, entry.Faculty, entry.Room, entry.IsLab}
		if _, err := tx.ExecContext(ctx, query, params...); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetTimetableByID(id int64) (*domain.Timetable, error) {
	query := `
		SELECT
			t.id,
			t.branch,
			t.semester,
			t.year,
			t.days_per_week,
			t.hours_per_day,
			t.lunch_break_start,
			t.lunch_break_duration,
			t.score,
			t.created_at,
			t.version,
			te.day_of_week,
			te.hour_of_day,
			te.subject_id,
			te.subject_name,
			te.subject_code,
			te.faculty,
			te.room,
			te.is_lab
		FROM timetables t
		LEFT JOIN timetable_entries te ON t.id = te.timetable_id
		WHERE t.id = $1
		ORDER BY te.day_of_week, te.hour_of_day
	`

	return r.getTimetable(query, id)
}

// GetLatestTimetable 返回最近一次生成的课表
func (r *Repository) GetLatestTimetable() (*domain.Timetable, error) {
	query := `
		SELECT
			t.id,
			t.branch,
			t.semester,
			t.year,
			t.days_per_week,
			t.hours_per_day,
			t.lunch_break_start,
			t.lunch_break_duration,
			t.score,
			t.created_at,
			t.version,
			te.day_of_week,
			te.hour_of_day,
			te.subject_id,
			te.subject_name,
			te.subject_code,
			te.faculty,
			te.room,
			te.is_lab
		FROM timetables t
		LEFT JOIN timetable_entries te ON t.id = te.timetable_id
		WHERE t.id = (SELECT id FROM timetables ORDER BY created_at DESC, id DESC LIMIT 1)
		ORDER BY te.day_of_week, te.hour_of_day
	`

	return r.getTimetable(query)
}

func (r *Repository) getTimetable(query string, args ...any) (*domain.Timetable, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	timetable := &domain.Timetable{
		Entries: make([]domain.TimetableEntry, 0),
	}
	found := false

	for rows.Next() {
		var row struct {
			ID                 int64
			Branch             string
			Semester           int32
			Year               int32
			DaysPerWeek        int32
			HoursPerDay        int32
			LunchBreakStart    int32
			LunchBreakDuration int32
			Score              int32
			CreatedAt          time.Time
			Version            int32

			Day         sql.NullInt32
			Hour        sql.NullInt32
			SubjectID   sql.NullInt64
			SubjectName sql.NullString
			SubjectCode sql.NullString
			Faculty     sql.NullString
			Room        sql.NullString
			IsLab       sql.NullBool
		}

		dst := []any{
			&row.ID,
			&row.Branch,
			&row.Semester,
			&row.Year,
			&row.DaysPerWeek,
			&row.HoursPerDay,
			&row.LunchBreakStart,
			&row.LunchBreakDuration,
			&row.Score,
			&row.CreatedAt,
			&row.Version,
			&row.Day,
			&row.Hour,
			&row.SubjectID,
			&row.SubjectName,
			&row.SubjectCode,
			&row.Faculty,
			&row.Room,
			&row.IsLab,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if !found {
			// 第一行才需要填充课表本身的信息
			timetable.ID = row.ID
			timetable.Branch = row.Branch
			timetable.Semester = row.Semester
			timetable.Year = row.Year
			timetable.DaysPerWeek = row.DaysPerWeek
			timetable.HoursPerDay = row.HoursPerDay
			timetable.LunchBreakStart = row.LunchBreakStart
			timetable.LunchBreakDuration = row.LunchBreakDuration
			timetable.Score = row.Score
			timetable.CreatedAt = row.CreatedAt
			timetable.Version = row.Version
			found = true
		}

		if !row.Day.Valid {
			// 说明这张课表没有任何格子被占用，业务上几乎不可能，但还是要处理
			continue
		}

		timetable.Entries = append(timetable.Entries, domain.TimetableEntry{
			Day:         row.Day.Int32,
			Hour:        row.Hour.Int32,
			SubjectID:   row.SubjectID.Int64,
			SubjectName: row.SubjectName.String,
			SubjectCode: row.SubjectCode.String,
			Faculty:     row.Faculty.String,
			Room:        row.Room.String,
			IsLab:       row.IsLab.Bool,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !found {
		return nil, sql.ErrNoRows
	}

	return timetable, nil
}

func (r *Repository) GetAllTimetables() ([]*domain.Timetable, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	// 列表页不需要具体的格子，只返回课表的元信息
	query := `
		SELECT id, branch, semester, year, days_per_week, hours_per_day, lunch_break_start, lunch_break_duration, score, created_at, version
		FROM timetables
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	timetables := make([]*domain.Timetable, 0)

	for rows.Next() {
		timetable := &domain.Timetable{}

		dst := []any{
			&timetable.ID,
			&timetable.Branch,
			&timetable.Semester,
			&timetable.Year,
			&timetable.DaysPerWeek,
			&timetable.HoursPerDay,
			&timetable.LunchBreakStart,
			&timetable.LunchBreakDuration,
			&timetable.Score,
			&timetable.CreatedAt,
			&timetable.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		timetables = append(timetables, timetable)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return timetables, nil
}

func (r *Repository) DeleteTimetable(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `DELETE FROM timetables WHERE id = $1`

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
