package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/burak/campusplace/internal/app/models"
)

// Partnership error types
var (
	ErrPartnershipNotFound = errors.New("partnership not found")
)

// PartnershipRepository handles database operations for college-company
// partnerships. Pairs are unordered; every lookup has to consider both
// directions.
type PartnershipRepository struct {
	db *pgxpool.Pool
}

// NewPartnershipRepository creates a new partnership repository
func NewPartnershipRepository(db *pgxpool.Pool) *PartnershipRepository {
	return &PartnershipRepository{
		db: db,
	}
}

// Create inserts a new pending partnership and fills in its generated id.
// The unique index on the sorted pair rejects duplicates in either direction.
func (r *PartnershipRepository) Create(ctx context.Context, p *models.Partnership) error {
	query := `
		INSERT INTO partnerships (requester_id, recipient_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, p.RequesterID, p.RecipientID, p.Status).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a partnership by id
func (r *PartnershipRepository) GetByID(ctx context.Context, id int64) (*models.Partnership, error) {
	query := `
		SELECT id, requester_id, recipient_id, status, created_at
		FROM partnerships
		WHERE id = $1
	`

	var p models.Partnership
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.RequesterID, &p.RecipientID, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPartnershipNotFound
		}
		return nil, fmt.Errorf("error retrieving partnership: %w", err)
	}

	return &p, nil
}

// UpdateStatus transitions a partnership to the given status
func (r *PartnershipRepository) UpdateStatus(ctx context.Context, id int64, status models.PartnershipStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE partnerships SET status = $1 WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating partnership status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPartnershipNotFound
	}

	return nil
}

// ListByUser returns every partnership a user appears in, on either side,
// with both party names joined.
func (r *PartnershipRepository) ListByUser(ctx context.Context, userID int64) ([]models.Partnership, error) {
	query := `
		SELECT p.id, p.requester_id, p.recipient_id, p.status, p.created_at,
			req.name, rec.name
		FROM partnerships p
		JOIN users req ON req.id = p.requester_id
		JOIN users rec ON rec.id = p.recipient_id
		WHERE p.requester_id = $1 OR p.recipient_id = $1
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partnerships []models.Partnership
	for rows.Next() {
		var p models.Partnership
		err := rows.Scan(
			&p.ID, &p.RequesterID, &p.RecipientID, &p.Status, &p.CreatedAt,
			&p.RequesterName, &p.RecipientName,
		)
		if err != nil {
			return nil, err
		}
		partnerships = append(partnerships, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return partnerships, nil
}

// ActivePartnerIDs returns the user ids on the other side of every active
// partnership the given user is part of, regardless of who requested it.
func (r *PartnershipRepository) ActivePartnerIDs(ctx context.Context, userID int64) (map[int64]bool, error) {
	query := `
		SELECT requester_id, recipient_id
		FROM partnerships
		WHERE status = $1 AND (requester_id = $2 OR recipient_id = $2)
	`

	rows, err := r.db.Query(ctx, query, models.PartnershipActive, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := make(map[int64]bool)
	for rows.Next() {
		var requesterID, recipientID int64
		if err := rows.Scan(&requesterID, &recipientID); err != nil {
			return nil, err
		}
		if requesterID == userID {
			partners[recipientID] = true
		} else {
			partners[requesterID] = true
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}

// HasActiveBetween reports whether an active partnership links the two users,
// in either direction.
func (r *PartnershipRepository) HasActiveBetween(ctx context.Context, a, b int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM partnerships
			WHERE status = $1
				AND ((requester_id = $2 AND recipient_id = $3)
					OR (requester_id = $3 AND recipient_id = $2))
		)
	`, models.PartnershipActive, a, b).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking partnership: %w", err)
	}

	return exists, nil
}

// PairExists reports whether any partnership record links the two users,
// in either direction and in any status.
func (r *PartnershipRepository) PairExists(ctx context.Context, a, b int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM partnerships
			WHERE (requester_id = $1 AND recipient_id = $2)
				OR (requester_id = $2 AND recipient_id = $1)
		)
	`, a, b).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking partnership pair: %w", err)
	}

	return exists, nil
}
