package agriclient

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// AdminService covers the /api/admin surface: application review, volunteer
// management, dashboard stats, and system users.
type AdminService struct {
	c *Client
}

// ---------- Applications ----------

type applicationListData struct {
	Items []Application `json:"items"`
	Meta  Meta          `json:"meta"`
}

func (s *AdminService) Applications(ctx context.Context, status string) ([]Application, Meta, error) {
	path := "/api/admin/applications"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var data applicationListData
	if err := s.c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, Meta{}, err
	}
	return data.Items, data.Meta, nil
}

// ReviewApplication decides an application: status must be accepted or
// rejected. The server refuses decisions on terminal applications.
func (s *AdminService) ReviewApplication(ctx context.Context, id, status, notes string) (Application, error) {
	body := map[string]string{"status": status}
	if notes != "" {
		body["notes"] = notes
	}
	var data struct {
		Application Application `json:"application"`
	}
	err := s.c.do(ctx, http.MethodPut, "/api/admin/applications/"+id+"/review", body, &data)
	return data.Application, err
}

func (s *AdminService) MarkReviewed(ctx context.Context, id string) (Application, error) {
	var data struct {
		Application Application `json:"application"`
	}
	err := s.c.do(ctx, http.MethodPut, "/api/admin/applications/"+id+"/mark-reviewed", nil, &data)
	return data.Application, err
}

// ---------- Volunteers ----------

type volunteerListData struct {
	Items []Volunteer `json:"items"`
	Meta  Meta        `json:"meta"`
}

func (s *AdminService) Volunteers(ctx context.Context, status string) ([]Volunteer, Meta, error) {
	path := "/api/admin/volunteers"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var data volunteerListData
	if err := s.c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, Meta{}, err
	}
	return data.Items, data.Meta, nil
}

func (s *AdminService) Volunteer(ctx context.Context, id string) (Volunteer, error) {
	var data struct {
		Volunteer Volunteer `json:"volunteer"`
	}
	err := s.c.do(ctx, http.MethodGet, "/api/admin/volunteers/"+id, nil, &data)
	return data.Volunteer, err
}

func (s *AdminService) UpdateVolunteerStatus(ctx context.Context, id, status, notes string) (Volunteer, error) {
	body := map[string]string{"status": status}
	if notes != "" {
		body["notes"] = notes
	}
	var data struct {
		Volunteer Volunteer `json:"volunteer"`
	}
	err := s.c.do(ctx, http.MethodPut, "/api/admin/volunteers/"+id+"/status", body, &data)
	return data.Volunteer, err
}

type AssignProgramRequest struct {
	ProgramName string     `json:"program_name"`
	Role        string     `json:"role"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

func (s *AdminService) AssignProgram(ctx context.Context, volunteerID string, req AssignProgramRequest) (Volunteer, error) {
	var data struct {
		Volunteer Volunteer `json:"volunteer"`
	}
	err := s.c.do(ctx, http.MethodPost, "/api/admin/volunteers/"+volunteerID+"/assign", req, &data)
	return data.Volunteer, err
}

// UpdateHours sets the cumulative hours. The server rejects decreases.
func (s *AdminService) UpdateHours(ctx context.Context, volunteerID string, hours int) (Volunteer, error) {
	body := map[string]int{"hours_contributed": hours}
	var data struct {
		Volunteer Volunteer `json:"volunteer"`
	}
	err := s.c.do(ctx, http.MethodPut, "/api/admin/volunteers/"+volunteerID+"/hours", body, &data)
	return data.Volunteer, err
}

// ---------- Dashboard ----------

func (s *AdminService) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	err := s.c.do(ctx, http.MethodGet, "/api/admin/dashboard/stats", nil, &stats)
	return stats, err
}

// ---------- System users (superadmin only) ----------

type userListData struct {
	Items []User `json:"items"`
	Meta  Meta   `json:"meta"`
}

func (s *AdminService) Users(ctx context.Context) ([]User, Meta, error) {
	var data userListData
	if err := s.c.do(ctx, http.MethodGet, "/api/admin/users", nil, &data); err != nil {
		return nil, Meta{}, err
	}
	return data.Items, data.Meta, nil
}

func (s *AdminService) UpdateUserRole(ctx context.Context, id, role string) (User, error) {
	var data struct {
		User User `json:"user"`
	}
	err := s.c.do(ctx, http.MethodPut, "/api/admin/users/"+id+"/role", map[string]string{"role": role}, &data)
	return data.User, err
}

func (s *AdminService) ToggleUserStatus(ctx context.Context, id string) (User, error) {
	var data struct {
		User User `json:"user"`
	}
	err := s.c.do(ctx, http.MethodPut, "/api/admin/users/"+id+"/toggle-status", nil, &data)
	return data.User, err
}
