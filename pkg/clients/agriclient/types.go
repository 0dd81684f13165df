package agriclient

import "time"

// User mirrors the identity payload returned by the auth endpoints.
type User struct {
	ID          string     `json:"id"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Application struct {
	ID            string     `json:"id"`
	FullName      string     `json:"full_name"`
	Email         string     `json:"email"`
	PreferredRole string     `json:"preferred_role"`
	About         string     `json:"about_yourself"`
	Status        string     `json:"status"`
	CanReview     bool       `json:"can_review"`
	ProcessedBy   *string    `json:"processed_by,omitempty"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type Program struct {
	ID        string     `json:"id"`
	Name      string     `json:"program_name"`
	Role      string     `json:"role"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Status    string     `json:"status"`
}

type Location struct {
	State string `json:"state"`
	LGA   string `json:"lga"`
}

type Volunteer struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	PreferredRole string    `json:"preferred_role"`
	About         string    `json:"about_yourself"`
	Skills        []string  `json:"skills,omitempty"`
	Availability  *string   `json:"availability,omitempty"`
	Location      *Location `json:"location,omitempty"`
	Status        string    `json:"status"`
	Programs      []Program `json:"assigned_programs"`
	Hours         int       `json:"hours_contributed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type DesignImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type CallApplication struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Message     string    `json:"message,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
}

type Call struct {
	ID                 string            `json:"id"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	Requirements       string            `json:"requirements,omitempty"`
	DesignImage        *DesignImage      `json:"design_image,omitempty"`
	EventDate          time.Time         `json:"event_date"`
	Deadline           time.Time         `json:"deadline"`
	Location           string            `json:"location"`
	NumberOfVolunteers int               `json:"number_of_volunteers"`
	Category           string            `json:"category"`
	Status             string            `json:"status"`
	EffectiveStatus    string            `json:"effective_status"`
	IsPublished        bool              `json:"is_published"`
	Applications       []CallApplication `json:"applications,omitempty"`
	ApplicationCount   int               `json:"application_count"`
	ViewCount          int               `json:"view_count"`
	CreatedAt          time.Time         `json:"created_at"`
}

type CoverImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type Photo struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	PublicID   string    `json:"public_id"`
	Caption    *string   `json:"caption,omitempty"`
	Order      int       `json:"order"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type Gallery struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	CoverImage  *CoverImage `json:"cover_image,omitempty"`
	EventDate   time.Time   `json:"event_date"`
	Location    *string     `json:"location,omitempty"`
	Category    string      `json:"category"`
	IsPublished bool        `json:"is_published"`
	Photos      []Photo     `json:"photos,omitempty"`
	PhotoCount  int         `json:"photo_count"`
	ViewCount   int         `json:"view_count"`
	CreatedAt   time.Time   `json:"created_at"`
}

type DashboardStats struct {
	TotalVolunteers       int64         `json:"total_volunteers"`
	ActiveVolunteers      int64         `json:"active_volunteers"`
	PendingApplications   int64         `json:"pending_applications"`
	TotalHoursContributed int64         `json:"total_hours_contributed"`
	RecentApplications    []Application `json:"recent_applications"`
}

// Meta mirrors the server's pagination block.
type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}
