package model

import "time"

// ComplaintStatus is the lifecycle state of a complaint
type ComplaintStatus string

// ComplaintScope distinguishes private-residence from shared-area complaints
type ComplaintScope string

// ComplaintPriority is the urgency of a complaint
type ComplaintPriority string

const (
	StatusPending    ComplaintStatus = "Pending"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"

	ScopePersonal  ComplaintScope = "Personal"
	ScopeCommunity ComplaintScope = "Community"

	PriorityUrgent ComplaintPriority = "Urgent"
	PriorityNormal ComplaintPriority = "Normal"
)

// IsValidStatus reports whether s is one of the three lifecycle states
func IsValidStatus(s ComplaintStatus) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusResolved
}

// IsValidScope reports whether s is a known scope
func IsValidScope(s ComplaintScope) bool {
	return s == ScopePersonal || s == ScopeCommunity
}

// IsValidPriority reports whether p is a known priority
func IsValidPriority(p ComplaintPriority) bool {
	return p == PriorityUrgent || p == PriorityNormal
}

// Complaint represents a filed complaint. Worker name and phone are
// denormalized copies taken at assignment time; a nil WorkerID means the
// complaint is still unassigned.
type Complaint struct {
	ID               int64             `json:"id"`
	UserID           int               `json:"user_id"`
	Type             string            `json:"type"`
	Description      string            `json:"description"`
	Priority         ComplaintPriority `json:"priority"`
	Status           ComplaintStatus   `json:"status"`
	Scope            ComplaintScope    `json:"scope"`
	Location         *string           `json:"location,omitempty"` // Community complaints only
	WorkerID         *int              `json:"worker_id,omitempty"`
	WorkerName       *string           `json:"worker_name,omitempty"`
	WorkerPhone      *string           `json:"worker_phone,omitempty"`
	ImagePath        *string           `json:"image_path,omitempty"`
	VerificationCode string            `json:"-"` // Disclosed to the submitter by email only
	FeedbackRating   *int              `json:"feedback_rating,omitempty"`
	FeedbackText     *string           `json:"feedback_text,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// CreateComplaintInput carries the submission form fields. Scope arrives as
// a single-letter flag: "P" for Personal, "C" for Community.
type CreateComplaintInput struct {
	ScopeFlag   string
	Type        string
	Description string
	Priority    string
	Location    string
}

// FeedbackRequest is used to rate a resolved complaint
type FeedbackRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text"`
}

// ComplaintFilters contains the AND-combined equality filters for the
// admin complaint listing
type ComplaintFilters struct {
	Priority   *ComplaintPriority
	Status     *ComplaintStatus
	Scope      *ComplaintScope
	WorkerName *string
	Unassigned bool
}

// AssignedComplaint is a worker's view of a complaint: the submitter's
// phone, and the submitter's address when the scope is Personal.
type AssignedComplaint struct {
	Complaint
	UserPhone string   `json:"user_phone"`
	Address   *Address `json:"address,omitempty"`
}
