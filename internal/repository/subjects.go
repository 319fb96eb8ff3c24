package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/domain"
)

func (r *Repository) CreateSubject(subject *domain.Subject) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO subjects (name, code, faculty, room, hours_per_week, is_lab)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	params := []any{subject.Name, subject.Code, subject.Faculty, subject.Room, subject.HoursPerWeek, subject.IsLab}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&subject.ID, &subject.CreatedAt, &subject.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllSubjects() ([]*domain.Subject, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, code, faculty, room, hours_per_week, is_lab, created_at, version
		FROM subjects
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := make([]*domain.Subject, 0)

	for rows.Next() {
		subject := &domain.Subject{}

		dst := []any{
			&subject.ID,
			&subject.Name,
			&subject.Code,
			&subject.Faculty,
			&subject.Room,
			&subject.HoursPerWeek,
			&subject.IsLab,
			&subject.CreatedAt,
			&subject.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

func (r *Repository) GetSubjectByID(id int64) (*domain.Subject, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, code, faculty, room, hours_per_week, is_lab, created_at, version
		FROM subjects
		WHERE id = $1
	`

	subject := &domain.Subject{}

	dst := []any{
		&subject.ID,
		&subject.Name,
		&subject.Code,
		&subject.Faculty,
		&subject.Room,
		&subject.HoursPerWeek,
		&subject.IsLab,
		&subject.CreatedAt,
		&subject.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return subject, nil
}

func (r *Repository) UpdateSubject(subject *domain.Subject) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE subjects
		SET
			name = $1,
			code = $2,
			faculty = $3,
			room = $4,
			hours_per_week = $5,
			is_lab = $6,
			version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING version
	`

	params := []any{subject.Name, subject.Code, subject.Faculty, subject.Room, subject.HoursPerWeek, subject.IsLab, subject.ID, subject.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&subject.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteSubject(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `DELETE FROM subjects WHERE id = $1`

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

// DeleteAllSubjects 清空课程列表，对应前端的重置操作
func (r *Repository) DeleteAllSubjects() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `DELETE FROM subjects`

	if _, err := r.dbpool.ExecContext(ctx, query); err != nil {
		return err
	}

	return nil
}
