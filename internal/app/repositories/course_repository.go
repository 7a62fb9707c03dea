package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/malek/tadreeb/internal/app/models"
	"github.com/malek/tadreeb/internal/app/models/dto"
	"github.com/malek/tadreeb/internal/pkg/apperrors"
	"github.com/malek/tadreeb/internal/pkg/dberrors"
)

const courseColumns = `id, course_number, course_code, course_field_id, course_name, course_venue,
	course_start_date, course_end_date, course_duration, course_hours,
	number_of_beneficiaries, number_of_graduates, trainer_name, trainer_phone_number,
	notes, created_at, updated_at`

// ListCoursesFilter narrows the course listing
type ListCoursesFilter struct {
	Search    string
	FieldID   *int64
	StartDate *time.Time
	EndDate   *time.Time
	Offset    int
	Limit     int
}

// CourseStatRow is the minimal projection the statistics aggregator
// groups over in memory.
type CourseStatRow struct {
	FieldID       int64
	StartDate     time.Time
	Graduates     int
	Beneficiaries int
	Hours         int
	TrainerName   string
	TrainerPhone  string
}

// CourseRepository handles database operations for courses and loads
// their owned images and documents.
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

func scanCourse(row pgx.Row, c *models.Course) error {
	return row.Scan(
		&c.ID, &c.CourseNumber, &c.CourseCode, &c.CourseFieldID, &c.CourseName, &c.CourseVenue,
		&c.CourseStartDate, &c.CourseEndDate, &c.CourseDuration, &c.CourseHours,
		&c.NumberOfBeneficiaries, &c.NumberOfGraduates, &c.TrainerName, &c.TrainerPhoneNumber,
		&c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
}

// buildListWhere assembles the WHERE clause for a filter. Search is an
// OR over course number, name and trainer name; date bounds are
// inclusive on start/end date respectively.
func buildListWhere(f ListCoursesFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(course_number ILIKE $%d OR course_name ILIKE $%d OR trainer_name ILIKE $%d)", n, n, n))
	}
	if f.FieldID != nil {
		args = append(args, *f.FieldID)
		conds = append(conds, fmt.Sprintf("course_field_id = $%d", len(args)))
	}
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		conds = append(conds, fmt.Sprintf("course_start_date >= $%d", len(args)))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		conds = append(conds, fmt.Sprintf("course_end_date <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// List returns one page of courses ordered by start date descending,
// with their field, images and documents, plus the total match count.
func (r *CourseRepository) List(ctx context.Context, f ListCoursesFilter) ([]models.Course, int64, error) {
	where, args := buildListWhere(f)

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM courses "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM courses %s ORDER BY course_start_date DESC LIMIT $%d OFFSET $%d`,
		courseColumns, where, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		var c models.Course
		if err := scanCourse(rows, &c); err != nil {
			return nil, 0, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.loadAssociations(ctx, courses); err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// GetByID retrieves a full course record with its associations
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses WHERE id = $1`, courseColumns)

	var c models.Course
	if err := scanCourse(r.db.QueryRow(ctx, query, id), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	courses := []models.Course{c}
	if err := r.loadAssociations(ctx, courses); err != nil {
		return nil, err
	}

	return &courses[0], nil
}

// Exists reports whether a course id is present
func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	return exists, nil
}

// Create inserts a course and fills in its generated columns
func (r *CourseRepository) Create(ctx context.Context, c *models.Course) error {
	query := `
		INSERT INTO courses (
			course_number, course_code, course_field_id, course_name, course_venue,
			course_start_date, course_end_date, course_duration, course_hours,
			number_of_beneficiaries, number_of_graduates, trainer_name, trainer_phone_number, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		c.CourseNumber, c.CourseCode, c.CourseFieldID, c.CourseName, c.CourseVenue,
		c.CourseStartDate, c.CourseEndDate, c.CourseDuration, c.CourseHours,
		c.NumberOfBeneficiaries, c.NumberOfGraduates, c.TrainerName, c.TrainerPhoneNumber, c.Notes,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_course_number_key") {
			return apperrors.ErrCourseNumberAlreadyUsed
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInvalidReference
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// Update writes a full merged row back. The service merges the partial
// payload into the loaded record before calling this.
func (r *CourseRepository) Update(ctx context.Context, c *models.Course) error {
	query := `
		UPDATE courses SET
			course_number = $1, course_code = $2, course_field_id = $3, course_name = $4,
			course_venue = $5, course_start_date = $6, course_end_date = $7,
			course_duration = $8, course_hours = $9, number_of_beneficiaries = $10,
			number_of_graduates = $11, trainer_name = $12, trainer_phone_number = $13,
			notes = $14, updated_at = NOW()
		WHERE id = $15
	`

	cmdTag, err := r.db.Exec(ctx, query,
		c.CourseNumber, c.CourseCode, c.CourseFieldID, c.CourseName, c.CourseVenue,
		c.CourseStartDate, c.CourseEndDate, c.CourseDuration, c.CourseHours,
		c.NumberOfBeneficiaries, c.NumberOfGraduates, c.TrainerName, c.TrainerPhoneNumber,
		c.Notes, c.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_course_number_key") {
			return apperrors.ErrCourseNumberAlreadyUsed
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInvalidReference
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course row; image and document rows cascade.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// AggregateTotals computes whole-store sums, optionally restricted to an
// inclusive start-date range.
func (r *CourseRepository) AggregateTotals(ctx context.Context, from, to *time.Time) (dto.OverviewTotals, error) {
	var conds []string
	var args []interface{}
	if from != nil {
		args = append(args, *from)
		conds = append(conds, fmt.Sprintf("course_start_date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, fmt.Sprintf("course_start_date <= $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT COUNT(*),
			COALESCE(SUM(number_of_graduates), 0),
			COALESCE(SUM(course_hours), 0),
			COALESCE(SUM(number_of_beneficiaries), 0)
		FROM courses %s`, where)

	var totals dto.OverviewTotals
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&totals.TotalCourses, &totals.TotalGraduates, &totals.TotalHours, &totals.TotalBeneficiaries)
	if err != nil {
		return dto.OverviewTotals{}, fmt.Errorf("error aggregating course totals: %w", err)
	}

	return totals, nil
}

// Recent returns the n most recent courses by start date with their
// field attached (no images or documents).
func (r *CourseRepository) Recent(ctx context.Context, n int) ([]models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses ORDER BY course_start_date DESC LIMIT $1`, courseColumns)

	rows, err := r.db.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("error listing recent courses: %w", err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0, n)
	for rows.Next() {
		var c models.Course
		if err := scanCourse(rows, &c); err != nil {
			return nil, err
		}
		c.Images = []models.CourseImage{}
		c.Documents = []models.CourseDocument{}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadFields(ctx, courses); err != nil {
		return nil, err
	}

	return courses, nil
}

// ListStatRows fetches the projection the statistics aggregator groups
// over, optionally restricted to an inclusive start-date range.
func (r *CourseRepository) ListStatRows(ctx context.Context, from, to *time.Time) ([]CourseStatRow, error) {
	var conds []string
	var args []interface{}
	if from != nil {
		args = append(args, *from)
		conds = append(conds, fmt.Sprintf("course_start_date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, fmt.Sprintf("course_start_date <= $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT course_field_id, course_start_date, number_of_graduates,
			number_of_beneficiaries, course_hours, trainer_name, trainer_phone_number
		FROM courses %s`, where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing course stat rows: %w", err)
	}
	defer rows.Close()

	statRows := make([]CourseStatRow, 0)
	for rows.Next() {
		var row CourseStatRow
		if err := rows.Scan(&row.FieldID, &row.StartDate, &row.Graduates,
			&row.Beneficiaries, &row.Hours, &row.TrainerName, &row.TrainerPhone); err != nil {
			return nil, err
		}
		statRows = append(statRows, row)
	}

	return statRows, rows.Err()
}

// loadFields attaches the referenced field to each course
func (r *CourseRepository) loadFields(ctx context.Context, courses []models.Course) error {
	if len(courses) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(courses))
	for i := range courses {
		ids = append(ids, courses[i].CourseFieldID)
	}

	rows, err := r.db.Query(ctx, `SELECT id, name FROM course_fields WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("error loading course fields: %w", err)
	}
	defer rows.Close()

	fields := make(map[int64]*models.CourseField)
	for rows.Next() {
		var field models.CourseField
		if err := rows.Scan(&field.ID, &field.Name); err != nil {
			return err
		}
		fields[field.ID] = &field
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range courses {
		courses[i].CourseField = fields[courses[i].CourseFieldID]
	}

	return nil
}

// loadAssociations attaches field, images and documents to every course
// in the slice with one query per association.
func (r *CourseRepository) loadAssociations(ctx context.Context, courses []models.Course) error {
	if len(courses) == 0 {
		return nil
	}

	if err := r.loadFields(ctx, courses); err != nil {
		return err
	}

	ids := make([]int64, 0, len(courses))
	index := make(map[int64]int, len(courses))
	for i := range courses {
		ids = append(ids, courses[i].ID)
		index[courses[i].ID] = i
		courses[i].Images = []models.CourseImage{}
		courses[i].Documents = []models.CourseDocument{}
	}

	imgRows, err := r.db.Query(ctx, `
		SELECT id, course_id, url, alt_text, created_at
		FROM course_images
		WHERE course_id = ANY($1)
		ORDER BY id`, ids)
	if err != nil {
		return fmt.Errorf("error loading course images: %w", err)
	}
	defer imgRows.Close()

	for imgRows.Next() {
		var img models.CourseImage
		if err := imgRows.Scan(&img.ID, &img.CourseID, &img.URL, &img.AltText, &img.CreatedAt); err != nil {
			return err
		}
		i := index[img.CourseID]
		courses[i].Images = append(courses[i].Images, img)
	}
	if err := imgRows.Err(); err != nil {
		return err
	}

	docRows, err := r.db.Query(ctx, `
		SELECT id, course_id, type, path, file_name, created_at
		FROM course_documents
		WHERE course_id = ANY($1)
		ORDER BY id`, ids)
	if err != nil {
		return fmt.Errorf("error loading course documents: %w", err)
	}
	defer docRows.Close()

	for docRows.Next() {
		var doc models.CourseDocument
		if err := docRows.Scan(&doc.ID, &doc.CourseID, &doc.Type, &doc.Path, &doc.FileName, &doc.CreatedAt); err != nil {
			return err
		}
		i := index[doc.CourseID]
		courses[i].Documents = append(courses[i].Documents, doc)
	}

	return docRows.Err()
}
