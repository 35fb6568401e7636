package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/burak/campusplace/internal/app/models"
	"github.com/burak/campusplace/internal/db"
)

// PlacementRepository handles database operations for placement records.
// Records are written in partition-sized batches and never updated in place.
type PlacementRepository struct {
	db *pgxpool.Pool
}

// NewPlacementRepository creates a new placement repository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{
		db: db,
	}
}

// RecordQuery scopes reads to a college with optional partition filters.
// Empty ClassYear or Department means no restriction on that key.
type RecordQuery struct {
	CollegeID  int64
	ClassYear  string
	Department string
	Limit      int
	Skip       int
}

func (q RecordQuery) whereClause() (string, []interface{}) {
	where := `WHERE college_id = $1`
	args := []interface{}{q.CollegeID}

	if q.ClassYear != "" {
		args = append(args, q.ClassYear)
		where += fmt.Sprintf(" AND class_year = $%d", len(args))
	}
	if q.Department != "" {
		args = append(args, q.Department)
		where += fmt.Sprintf(" AND department = $%d", len(args))
	}

	return where, args
}

// CountPartition returns the number of stored rows in one exact
// (college, class year, department) partition.
func (r *PlacementRepository) CountPartition(ctx context.Context, collegeID int64, classYear, department string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM placement_records WHERE college_id = $1 AND class_year = $2 AND department = $3`,
		collegeID, classYear, department).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting partition records: %w", err)
	}

	return count, nil
}

// ReplacePartition stores a batch of records for one partition. When replace
// is set, existing partition rows are deleted first. Delete and insert run
// in a single transaction so concurrent readers never observe a half-empty
// partition.
func (r *PlacementRepository) ReplacePartition(ctx context.Context, collegeID int64, classYear, department string, records []models.PlacementRecord, replace bool) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if replace {
			_, err := tx.Exec(ctx,
				`DELETE FROM placement_records WHERE college_id = $1 AND class_year = $2 AND department = $3`,
				collegeID, classYear, department)
			if err != nil {
				return fmt.Errorf("error deleting partition records: %w", err)
			}
		}

		columns := []string{
			"college_id", "student_id", "student_name", "department", "class_year",
			"company_name", "job_profile", "offers_received", "ctc_lpa",
			"placed_status", "offer_date",
		}

		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"placement_records"},
			columns,
			pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
				rec := records[i]
				return []interface{}{
					rec.CollegeID, rec.StudentID, rec.StudentName, rec.Department, rec.ClassYear,
					rec.CompanyName, rec.JobProfile, rec.OffersReceived, rec.CtcLpa,
					rec.PlacedStatus, rec.OfferDate,
				}, nil
			}),
		)
		if err != nil {
			return fmt.Errorf("error bulk inserting records: %w", err)
		}

		return nil
	})
}

const recordColumns = `id, college_id, student_id, student_name, department, class_year,
		company_name, job_profile, offers_received, ctc_lpa, placed_status, offer_date, created_at`

func scanRecord(rows pgx.Rows) (models.PlacementRecord, error) {
	var rec models.PlacementRecord
	err := rows.Scan(
		&rec.ID,
		&rec.CollegeID,
		&rec.StudentID,
		&rec.StudentName,
		&rec.Department,
		&rec.ClassYear,
		&rec.CompanyName,
		&rec.JobProfile,
		&rec.OffersReceived,
		&rec.CtcLpa,
		&rec.PlacedStatus,
		&rec.OfferDate,
		&rec.CreatedAt,
	)
	return rec, err
}

// Find returns all records matching the query, without pagination or a
// guaranteed order. Used by the aggregation paths that scan whole filtered
// sets.
func (r *PlacementRepository) Find(ctx context.Context, q RecordQuery) ([]models.PlacementRecord, error) {
	where, args := q.whereClause()
	query := fmt.Sprintf(`SELECT %s FROM placement_records %s`, recordColumns, where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.PlacementRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// FindPage returns a page of records ordered by student name then student id,
// plus the unpaginated total for the same filters.
func (r *PlacementRepository) FindPage(ctx context.Context, q RecordQuery) ([]models.PlacementRecord, int, error) {
	where, args := q.whereClause()

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM placement_records %s`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting records: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM placement_records %s ORDER BY student_name, student_id`, recordColumns, where)
	if q.Skip > 0 {
		args = append(args, q.Skip)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []models.PlacementRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// ListPartitions returns the distinct (class year, department) pairs stored
// for a college, for building the facet selectors.
func (r *PlacementRepository) ListPartitions(ctx context.Context, collegeID int64) ([][2]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT class_year, department FROM placement_records WHERE college_id = $1`,
		collegeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partitions [][2]string
	for rows.Next() {
		var year, department string
		if err := rows.Scan(&year, &department); err != nil {
			return nil, err
		}
		partitions = append(partitions, [2]string{year, department})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return partitions, nil
}
