package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"complaint_tracker/internal/model"

	"github.com/jackc/pgx/v5"
)

// ComplaintRepository defines operations for complaint data
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) error
	FindByID(ctx context.Context, id int64) (*model.Complaint, error)
	FindByUser(ctx context.Context, userID int) ([]model.Complaint, error)
	FindAll(ctx context.Context, filters model.ComplaintFilters) ([]model.Complaint, error)
	DeletePending(ctx context.Context, id int64, userID int) (bool, error)
	Assign(ctx context.Context, id int64, workerID int, workerName, workerPhone string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status model.ComplaintStatus) error
	SaveFeedback(ctx context.Context, id int64, userID int, rating int, text string) (bool, error)
	FindAssignedToWorker(ctx context.Context, workerID int) ([]model.AssignedComplaint, error)
	Resolve(ctx context.Context, id int64, workerID int) (bool, error)
}

type complaintRepository struct {
	db DB
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

const complaintColumns = `id, user_id, type, description, priority, status, scope, location,
            worker_id, worker_name, worker_phone, image_path, verification_code,
            feedback_rating, feedback_text, created_at`

func scanComplaint(row pgx.Row, c *model.Complaint) error {
	return row.Scan(
		&c.ID, &c.UserID, &c.Type, &c.Description, &c.Priority, &c.Status, &c.Scope, &c.Location,
		&c.WorkerID, &c.WorkerName, &c.WorkerPhone, &c.ImagePath, &c.VerificationCode,
		&c.FeedbackRating, &c.FeedbackText, &c.CreatedAt,
	)
}

// Create inserts a new complaint and fills in its generated id.
func (r *complaintRepository) Create(ctx context.Context, c *model.Complaint) error {
	sql := `INSERT INTO complaints (user_id, type, description, priority, status, scope, location, image_path, verification_code, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, c.UserID, c.Type, c.Description, c.Priority, c.Status, c.Scope, c.Location, c.ImagePath, c.VerificationCode, c.CreatedAt).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

// FindByID retrieves a complaint by its ID
func (r *complaintRepository) FindByID(ctx context.Context, id int64) (*model.Complaint, error) {
	c := &model.Complaint{}
	sql := fmt.Sprintf(`SELECT %s FROM complaints WHERE id = $1`, complaintColumns)
	err := scanComplaint(r.db.QueryRow(ctx, sql, id), c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find complaint by ID: %w", err)
	}
	return c, nil
}

// FindByUser retrieves a user's complaints, newest first
func (r *complaintRepository) FindByUser(ctx context.Context, userID int) ([]model.Complaint, error) {
	sql := fmt.Sprintf(`SELECT %s FROM complaints WHERE user_id = $1 ORDER BY created_at DESC`, complaintColumns)
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query complaints by user: %w", err)
	}
	defer rows.Close()
	return collectComplaints(rows)
}

// FindAll retrieves all complaints with optional AND-combined filters for admin
func (r *complaintRepository) FindAll(ctx context.Context, filters model.ComplaintFilters) ([]model.Complaint, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s FROM complaints`, complaintColumns))

	args := []interface{}{}
	argCount := 1
	var conditions []string

	if filters.Priority != nil {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", argCount))
		args = append(args, *filters.Priority)
		argCount++
	}
	if filters.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *filters.Status)
		argCount++
	}
	if filters.Scope != nil {
		conditions = append(conditions, fmt.Sprintf("scope = $%d", argCount))
		args = append(args, *filters.Scope)
		argCount++
	}
	if filters.WorkerName != nil && *filters.WorkerName != "" {
		conditions = append(conditions, fmt.Sprintf("worker_name = $%d", argCount))
		args = append(args, *filters.WorkerName)
		argCount++
	}
	if filters.Unassigned {
		conditions = append(conditions, "worker_id IS NULL")
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY created_at DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query all complaints: %w", err)
	}
	defer rows.Close()
	return collectComplaints(rows)
}

// DeletePending removes a complaint only while it still belongs to the
// user and has not been picked up. Returns false when no matching row was
// deleted (wrong owner, unknown id, or already processed).
func (r *complaintRepository) DeletePending(ctx context.Context, id int64, userID int) (bool, error) {
	sql := `DELETE FROM complaints WHERE id = $1 AND user_id = $2 AND status = 'Pending'`
	cmdTag, err := r.db.Exec(ctx, sql, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete complaint: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Assign attaches a worker to a still-unassigned complaint, denormalizing
// the worker's name and phone and moving the status to In Progress. The
// WHERE clause is the assignment guard: a second assigner matches no rows.
func (r *complaintRepository) Assign(ctx context.Context, id int64, workerID int, workerName, workerPhone string) (bool, error) {
	sql := `UPDATE complaints SET worker_id = $1, worker_name = $2, worker_phone = $3, status = 'In Progress'
            WHERE id = $4 AND worker_id IS NULL`
	cmdTag, err := r.db.Exec(ctx, sql, workerID, workerName, workerPhone, id)
	if err != nil {
		return false, fmt.Errorf("failed to assign complaint: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// UpdateStatus force-sets the status. The Resolved-is-final rule is
// enforced by the service before calling this.
func (r *complaintRepository) UpdateStatus(ctx context.Context, id int64, status model.ComplaintStatus) error {
	sql := `UPDATE complaints SET status = $1 WHERE id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, status, id)
	if err != nil {
		return fmt.Errorf("failed to update complaint status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("complaint not found for status update")
	}
	return nil
}

// SaveFeedback records a rating once per complaint. The WHERE clause keeps
// all the eligibility rules in one place: owner, Resolved, and no feedback
// recorded yet. Returns false when no row qualified.
func (r *complaintRepository) SaveFeedback(ctx context.Context, id int64, userID int, rating int, text string) (bool, error) {
	sql := `UPDATE complaints SET feedback_rating = $1, feedback_text = $2
            WHERE id = $3 AND user_id = $4 AND status = 'Resolved' AND feedback_rating IS NULL`
	cmdTag, err := r.db.Exec(ctx, sql, rating, text, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to save feedback: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// FindAssignedToWorker retrieves the complaints assigned to a worker that
// are not yet Resolved, including the submitter's phone and, for Personal
// complaints, the submitter's address.
func (r *complaintRepository) FindAssignedToWorker(ctx context.Context, workerID int) ([]model.AssignedComplaint, error) {
	sql := `SELECT c.id, c.user_id, c.type, c.description, c.priority, c.status, c.scope, c.location,
                   c.worker_id, c.worker_name, c.worker_phone, c.image_path, c.verification_code,
                   c.feedback_rating, c.feedback_text, c.created_at,
                   u.phone,
                   a.id, a.house_no, a.tower, a.floor_no, a.locality, a.area, a.city, a.state, a.pincode
            FROM complaints c
            JOIN users u ON c.user_id = u.id
            LEFT JOIN addresses a ON a.user_id = c.user_id AND c.scope = 'Personal'
            WHERE c.worker_id = $1 AND c.status != 'Resolved'
            ORDER BY c.created_at DESC`
	rows, err := r.db.Query(ctx, sql, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assigned complaints: %w", err)
	}
	defer rows.Close()

	var complaints []model.AssignedComplaint
	for rows.Next() {
		var ac model.AssignedComplaint
		var addrID, houseNo, floorNo, pincode *int
		var tower, locality, area, city, state *string
		if err := rows.Scan(
			&ac.ID, &ac.UserID, &ac.Type, &ac.Description, &ac.Priority, &ac.Status, &ac.Scope, &ac.Location,
			&ac.WorkerID, &ac.WorkerName, &ac.WorkerPhone, &ac.ImagePath, &ac.VerificationCode,
			&ac.FeedbackRating, &ac.FeedbackText, &ac.CreatedAt,
			&ac.UserPhone,
			&addrID, &houseNo, &tower, &floorNo, &locality, &area, &city, &state, &pincode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assigned complaint row: %w", err)
		}
		if addrID != nil {
			ac.Address = &model.Address{
				ID:       *addrID,
				UserID:   ac.UserID,
				HouseNo:  *houseNo,
				Tower:    *tower,
				FloorNo:  *floorNo,
				Locality: *locality,
				Area:     *area,
				City:     *city,
				State:    *state,
				Pincode:  *pincode,
			}
		}
		complaints = append(complaints, ac)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assigned complaint rows: %w", err)
	}
	return complaints, nil
}

// Resolve marks a complaint Resolved, provided it is assigned to the given
// worker. Code verification happens in the service before this call.
func (r *complaintRepository) Resolve(ctx context.Context, id int64, workerID int) (bool, error) {
	sql := `UPDATE complaints SET status = 'Resolved' WHERE id = $1 AND worker_id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, id, workerID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve complaint: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func collectComplaints(rows pgx.Rows) ([]model.Complaint, error) {
	var complaints []model.Complaint
	for rows.Next() {
		var c model.Complaint
		if err := scanComplaint(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan complaint row: %w", err)
		}
		complaints = append(complaints, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaint rows: %w", err)
	}
	return complaints, nil
}
