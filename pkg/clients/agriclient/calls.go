package agriclient

import (
	"context"
	"net/http"
	"time"
)

// CallService covers volunteer calls, public and administrative.
type CallService struct {
	c *Client
}

type callListData struct {
	Items []Call `json:"items"`
	Meta  Meta   `json:"meta"`
}

// PublicList returns published calls only.
func (s *CallService) PublicList(ctx context.Context) ([]Call, Meta, error) {
	var data callListData
	if err := s.c.do(ctx, http.MethodGet, "/api/volunteer-calls", nil, &data); err != nil {
		return nil, Meta{}, err
	}
	return data.Items, data.Meta, nil
}

func (s *CallService) PublicGet(ctx context.Context, id string) (Call, error) {
	var data struct {
		Call Call `json:"call"`
	}
	err := s.c.do(ctx, http.MethodGet, "/api/volunteer-calls/"+id, nil, &data)
	return data.Call, err
}

type CallApplyRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message,omitempty"`
}

// Apply submits an application against a published, effectively open call.
func (s *CallService) Apply(ctx context.Context, callID string, req CallApplyRequest) (CallApplication, error) {
	var data struct {
		Application CallApplication `json:"application"`
	}
	err := s.c.do(ctx, http.MethodPost, "/api/volunteer-calls/"+callID+"/apply", req, &data)
	return data.Application, err
}

// ---------- Admin ----------

func (s *CallService) AdminList(ctx context.Context) ([]Call, Meta, error) {
	var data callListData
	if err := s.c.do(ctx, http.MethodGet, "/api/admin/volunteer-calls", nil, &data); err != nil {
		return nil, Meta{}, err
	}
	return data.Items, data.Meta, nil
}

func (s *CallService) Get(ctx context.Context, id string) (Call, error) {
	var data struct {
		Call Call `json:"call"`
	}
	err := s.c.do(ctx, http.MethodGet, "/api/admin/volunteer-calls/"+id, nil, &data)
	return data.Call, err
}

type CreateCallRequest struct {
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Requirements       string    `json:"requirements,omitempty"`
	EventDate          time.Time `json:"event_date"`
	Deadline           time.Time `json:"deadline"`
	Location           string    `json:"location"`
	NumberOfVolunteers int       `json:"number_of_volunteers"`
	Category           string    `json:"category"`
}

// ValidateSchedule mirrors the server's invariant: the deadline must be
// strictly before the event date.
func (r CreateCallRequest) ValidateSchedule() error {
	if !r.Deadline.Before(r.EventDate) {
		return &FieldError{Field: "deadline", Message: "must be before the event date"}
	}
	return nil
}

// Create rejects a bad deadline locally, before any request is sent.
func (s *CallService) Create(ctx context.Context, req CreateCallRequest) (Call, error) {
	if err := req.ValidateSchedule(); err != nil {
		return Call{}, err
	}
	var data struct {
		Call Call `json:"call"`
	}
	err := s.c.do(ctx, http.MethodPost, "/api/admin/volunteer-calls", req, &data)
	return data.Call, err
}

type UpdateCallRequest struct {
	Title              *string    `json:"title,omitempty"`
	Description        *string    `json:"description,omitempty"`
	Requirements       *string    `json:"requirements,omitempty"`
	EventDate          *time.Time `json:"event_date,omitempty"`
	Deadline           *time.Time `json:"deadline,omitempty"`
	Location           *string    `json:"location,omitempty"`
	NumberOfVolunteers *int       `json:"number_of_volunteers,omitempty"`
	Category           *string    `json:"category,omitempty"`
}

// Update checks the schedule locally when both dates are present in the
// request; partial updates are re-validated against stored values by the
// server.
func (s *CallService) Update(ctx context.Context, id string, req UpdateCallRequest) (Call, error) {
	if req.Deadline != nil && req.EventDate != nil && !req.Deadline.Before(*req.EventDate) {
		return Call{}, &FieldError{Field: "deadline", Message: "must be before the event date"}
	}
	var data struct {
		Call Call `json:"call"`
	}
	err := s.c.do(ctx, http.MethodPut, "/api/admin/volunteer-calls/"+id, req, &data)
	return data.Call, err
}

func (s *CallService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/api/admin/volunteer-calls/"+id, nil, nil)
}

// SetPublished toggles public visibility without touching the stored status.
func (s *CallService) SetPublished(ctx context.Context, id string, published bool) (Call, error) {
	var data struct {
		Call Call `json:"call"`
	}
	err := s.c.do(ctx, http.MethodPut, "/api/admin/volunteer-calls/"+id+"/publish",
		map[string]bool{"is_published": published}, &data)
	return data.Call, err
}

func (s *CallService) SetStatus(ctx context.Context, id, status string) (Call, error) {
	var data struct {
		Call Call `json:"call"`
	}
	err := s.c.do(ctx, http.MethodPut, "/api/admin/volunteer-calls/"+id+"/status",
		map[string]string{"status": status}, &data)
	return data.Call, err
}

func (s *CallService) SetApplicationStatus(ctx context.Context, callID, applicationID, status string) (CallApplication, error) {
	var data struct {
		Application CallApplication `json:"application"`
	}
	err := s.c.do(ctx, http.MethodPut,
		"/api/admin/volunteer-calls/"+callID+"/applications/"+applicationID,
		map[string]string{"status": status}, &data)
	return data.Application, err
}
