package agriclient

import (
	"context"
	"net/http"
)

// VolunteerService covers the public apply endpoint and the volunteer's own
// profile.
type VolunteerService struct {
	c *Client
}

func (c *Client) Volunteers() *VolunteerService { return &VolunteerService{c: c} }

type ApplyRequest struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	PreferredRole string `json:"preferred_role"`
	About         string `json:"about_yourself"`
}

// Apply submits a general volunteer application. No session is required.
func (s *VolunteerService) Apply(ctx context.Context, req ApplyRequest) (Application, error) {
	var data struct {
		Application Application `json:"application"`
	}
	err := s.c.do(ctx, http.MethodPost, "/api/volunteers/apply", req, &data)
	return data.Application, err
}

func (s *VolunteerService) Profile(ctx context.Context) (Volunteer, error) {
	var data struct {
		Volunteer Volunteer `json:"volunteer"`
	}
	err := s.c.do(ctx, http.MethodGet, "/api/volunteers/profile", nil, &data)
	return data.Volunteer, err
}

type UpdateProfileRequest struct {
	PreferredRole string   `json:"preferred_role,omitempty"`
	About         string   `json:"about_yourself,omitempty"`
	Skills        []string `json:"skills,omitempty"`
	Availability  string   `json:"availability,omitempty"`
	LocationState string   `json:"location_state,omitempty"`
	LocationLGA   string   `json:"location_lga,omitempty"`
}

func (s *VolunteerService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (Volunteer, error) {
	var data struct {
		Volunteer Volunteer `json:"volunteer"`
	}
	err := s.c.do(ctx, http.MethodPut, "/api/volunteers/profile", req, &data)
	return data.Volunteer, err
}
