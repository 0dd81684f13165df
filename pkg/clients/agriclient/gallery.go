package agriclient

import (
	"context"
	"net/http"
	"net/url"
)

// GalleryService covers both the public and the administrative gallery
// endpoints.
type GalleryService struct {
	c *Client
}

type galleryListData struct {
	Items []Gallery `json:"items"`
	Meta  Meta      `json:"meta"`
}

// PublicList returns published galleries only.
func (s *GalleryService) PublicList(ctx context.Context) ([]Gallery, Meta, error) {
	var data galleryListData
	if err := s.c.do(ctx, http.MethodGet, "/api/galleries/public", nil, &data); err != nil {
		return nil, Meta{}, err
	}
	return data.Items, data.Meta, nil
}

func (s *GalleryService) Featured(ctx context.Context) ([]Gallery, error) {
	var data struct {
		Items []Gallery `json:"items"`
	}
	err := s.c.do(ctx, http.MethodGet, "/api/galleries/public/featured", nil, &data)
	return data.Items, err
}

func (s *GalleryService) ByCategory(ctx context.Context, category string) ([]Gallery, error) {
	var data struct {
		Items []Gallery `json:"items"`
	}
	err := s.c.do(ctx, http.MethodGet, "/api/galleries/public/category/"+url.PathEscape(category), nil, &data)
	return data.Items, err
}

func (s *GalleryService) PublicGet(ctx context.Context, id string) (Gallery, error) {
	var data struct {
		Gallery Gallery `json:"gallery"`
	}
	err := s.c.do(ctx, http.MethodGet, "/api/galleries/public/"+id, nil, &data)
	return data.Gallery, err
}

// ---------- Admin ----------

func (s *GalleryService) AdminList(ctx context.Context) ([]Gallery, Meta, error) {
	var data galleryListData
	if err := s.c.do(ctx, http.MethodGet, "/api/galleries", nil, &data); err != nil {
		return nil, Meta{}, err
	}
	return data.Items, data.Meta, nil
}

func (s *GalleryService) Get(ctx context.Context, id string) (Gallery, error) {
	var data struct {
		Gallery Gallery `json:"gallery"`
	}
	err := s.c.do(ctx, http.MethodGet, "/api/galleries/"+id, nil, &data)
	return data.Gallery, err
}

type CreateGalleryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	EventDate   string `json:"event_date"`
	Location    string `json:"location,omitempty"`
	Category    string `json:"category"`
}

func (s *GalleryService) Create(ctx context.Context, req CreateGalleryRequest) (Gallery, error) {
	var data struct {
		Gallery Gallery `json:"gallery"`
	}
	err := s.c.do(ctx, http.MethodPost, "/api/galleries", req, &data)
	return data.Gallery, err
}

func (s *GalleryService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/api/galleries/"+id, nil, nil)
}

// SetCover designates a photo as the cover. The public_id must belong to one
// of the gallery's photos or the server rejects it.
func (s *GalleryService) SetCover(ctx context.Context, id, publicID string) (Gallery, error) {
	var data struct {
		Gallery Gallery `json:"gallery"`
	}
	err := s.c.do(ctx, http.MethodPut, "/api/galleries/"+id+"/cover",
		map[string]string{"public_id": publicID}, &data)
	return data.Gallery, err
}

func (s *GalleryService) SetPublished(ctx context.Context, id string, published bool) (Gallery, error) {
	var data struct {
		Gallery Gallery `json:"gallery"`
	}
	err := s.c.do(ctx, http.MethodPut, "/api/galleries/"+id+"/publish",
		map[string]bool{"is_published": published}, &data)
	return data.Gallery, err
}

func (s *GalleryService) DeletePhoto(ctx context.Context, galleryID, photoID string) error {
	return s.c.do(ctx, http.MethodDelete, "/api/galleries/"+galleryID+"/photos/"+photoID, nil, nil)
}
