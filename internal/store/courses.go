package store

import (
	"database/sql"
	"fmt"

	"kdtboard/internal/model"
)

// BatchInsertCourses 과정 데이터 일괄 삽입
func (s *Store) BatchInsertCourses(courses []*model.Course) error {
	if len(courses) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO courses (
			id, row_no,
			training_id, name, round,
			institution, institution_group, partner_institution,
			leading_company, is_leading_company, training_type,
			ncs_code, ncs_name,
			start_date, end_date, invalid_period, total_days, total_hours,
			enrolled, completed,
			completion_rate, satisfaction,
			revenue_2021, revenue_2022, revenue_2023,
			revenue_2024, revenue_2025, revenue_2026,
			cumulative_revenue, revenue_vs_target,
			source_sheet, source_file
		) VALUES (
			?, ?,
			?, ?, ?,
			?, ?, ?,
			?, ?, ?,
			?, ?,
			?, ?, ?, ?, ?,
			?, ?,
			?, ?,
			?, ?, ?,
			?, ?, ?,
			?, ?,
			?, ?
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, c := range courses {
		_, err := stmt.Exec(
			c.ID, c.RowNo,
			c.TrainingID, c.Name, c.Round,
			c.Institution, c.InstitutionGroup, c.PartnerInstitution,
			c.LeadingCompany, c.IsLeadingCompany, c.TrainingType,
			c.NcsCode, c.NcsName,
			c.StartDate, c.EndDate, c.InvalidPeriod, c.TotalDays, c.TotalHours,
			c.Enrolled, c.Completed,
			c.CompletionRate, c.Satisfaction,
			c.Revenue2021, c.Revenue2022, c.Revenue2023,
			c.Revenue2024, c.Revenue2025, c.Revenue2026,
			c.CumulativeRevenue, c.RevenueVsTarget,
			c.SourceSheet, c.SourceFile,
		)
		if err != nil {
			return fmt.Errorf("failed to insert course: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CourseQueryOptions 과정 조회 옵션
type CourseQueryOptions struct {
	TrainingID       *string
	InstitutionGroup *string
	TrainingType     *string
	NcsCode          *string
	StartYear        *int // 개강 연도
	IsLeadingCompany *bool
	Limit            int
	Offset           int
}

func (o CourseQueryOptions) whereClause() (string, []interface{}) {
	clause := " WHERE 1=1"
	args := []interface{}{}

	if o.TrainingID != nil {
		clause += " AND training_id = ?"
		args = append(args, *o.TrainingID)
	}
	if o.InstitutionGroup != nil {
		clause += " AND institution_group = ?"
		args = append(args, *o.InstitutionGroup)
	}
	if o.TrainingType != nil {
		clause += " AND training_type = ?"
		args = append(args, *o.TrainingType)
	}
	if o.NcsCode != nil {
		clause += " AND ncs_code = ?"
		args = append(args, *o.NcsCode)
	}
	if o.StartYear != nil {
		clause += " AND CAST(strftime('%Y', start_date) AS INTEGER) = ?"
		args = append(args, *o.StartYear)
	}
	if o.IsLeadingCompany != nil {
		clause += " AND is_leading_company = ?"
		args = append(args, *o.IsLeadingCompany)
	}

	return clause, args
}

// GetCourses 조건에 맞는 과정 목록 조회
func (s *Store) GetCourses(opts CourseQueryOptions) ([]*model.Course, error) {
	clause, args := opts.whereClause()
	query := selectCourseColumns + clause + " ORDER BY row_no, id"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, opts.Offset)
		}
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	return scanCourseRows(rows)
}

// GetCourseByID 과정 단건 조회
func (s *Store) GetCourseByID(id string) (*model.Course, error) {
	row := s.db.QueryRow(selectCourseColumns+" WHERE id = ?", id)
	c, err := scanCourseRow(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("course not found: %s", id)
	}
	return c, err
}

// CountCourses 조건에 맞는 과정 수
func (s *Store) CountCourses(opts CourseQueryOptions) (int, error) {
	clause, args := opts.whereClause()

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM courses"+clause, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}

	return count, nil
}

// DeleteAllCourses 전체 과정 삭제 (재임포트용)
func (s *Store) DeleteAllCourses() error {
	if _, err := s.db.Exec("DELETE FROM courses"); err != nil {
		return fmt.Errorf("failed to delete courses: %w", err)
	}
	return nil
}

// DeleteCoursesBySourceFile 특정 파일에서 들어온 과정 삭제
func (s *Store) DeleteCoursesBySourceFile(sourceFile string) error {
	if _, err := s.db.Exec("DELETE FROM courses WHERE source_file = ?", sourceFile); err != nil {
		return fmt.Errorf("failed to delete courses: %w", err)
	}
	return nil
}

const selectCourseColumns = `
	SELECT
		id, row_no,
		training_id, name, round,
		institution, institution_group, partner_institution,
		leading_company, is_leading_company, training_type,
		ncs_code, ncs_name,
		start_date, end_date, invalid_period, total_days, total_hours,
		enrolled, completed,
		completion_rate, satisfaction,
		revenue_2021, revenue_2022, revenue_2023,
		revenue_2024, revenue_2025, revenue_2026,
		cumulative_revenue, revenue_vs_target,
		source_sheet, source_file, created_at
	FROM courses`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCourse(r rowScanner) (*model.Course, error) {
	c := &model.Course{}
	err := r.Scan(
		&c.ID, &c.RowNo,
		&c.TrainingID, &c.Name, &c.Round,
		&c.Institution, &c.InstitutionGroup, &c.PartnerInstitution,
		&c.LeadingCompany, &c.IsLeadingCompany, &c.TrainingType,
		&c.NcsCode, &c.NcsName,
		&c.StartDate, &c.EndDate, &c.InvalidPeriod, &c.TotalDays, &c.TotalHours,
		&c.Enrolled, &c.Completed,
		&c.CompletionRate, &c.Satisfaction,
		&c.Revenue2021, &c.Revenue2022, &c.Revenue2023,
		&c.Revenue2024, &c.Revenue2025, &c.Revenue2026,
		&c.CumulativeRevenue, &c.RevenueVsTarget,
		&c.SourceSheet, &c.SourceFile, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func scanCourseRows(rows *sql.Rows) ([]*model.Course, error) {
	var courses []*model.Course

	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return courses, nil
}

func scanCourseRow(row *sql.Row) (*model.Course, error) {
	c, err := scanCourse(row)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan course: %w", err)
	}
	return c, nil
}
