package dto

import (
	"time"

	"agriformation_backend/internals/features/galleries/model"
)

// ============================
// Response DTOs
// ============================

type CoverImageDTO struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type PhotoDTO struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	PublicID   string    `json:"public_id"`
	Caption    *string   `json:"caption,omitempty"`
	Order      int       `json:"order"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type GalleryDTO struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	CoverImage  *CoverImageDTO `json:"cover_image,omitempty"`
	EventDate   time.Time      `json:"event_date"`
	Location    *string        `json:"location,omitempty"`
	Category    string         `json:"category"`
	IsPublished bool           `json:"is_published"`
	Photos      []PhotoDTO     `json:"photos,omitempty"`
	PhotoCount  int            `json:"photo_count"`
	ViewCount   int            `json:"view_count"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ============================
// Request DTOs
// ============================

type CreateGalleryRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=150"`
	Description string    `json:"description" validate:"omitempty,max=5000"`
	EventDate   time.Time `json:"event_date" validate:"required"`
	Location    string    `json:"location" validate:"omitempty,max=200"`
	Category    string    `json:"category" validate:"required,oneof=farm_excursion workshop community_event training other"`
}

type UpdateGalleryRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=3,max=150"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	EventDate   *time.Time `json:"event_date"`
	Location    *string    `json:"location" validate:"omitempty,max=200"`
	Category    *string    `json:"category" validate:"omitempty,oneof=farm_excursion workshop community_event training other"`
}

type UpdatePhotoRequest struct {
	Caption *string `json:"caption" validate:"omitempty,max=300"`
	Order   *int    `json:"order" validate:"omitempty,min=0"`
}

type SetCoverRequest struct {
	PublicID string `json:"public_id" validate:"required"`
}

type PublishGalleryRequest struct {
	IsPublished bool `json:"is_published"`
}

// ============================
// Converters
// ============================

func ToPhotoDTO(m model.PhotoModel) PhotoDTO {
	return PhotoDTO{
		ID:         m.PhotoID.String(),
		URL:        m.PhotoURL,
		PublicID:   m.PhotoKey,
		Caption:    m.PhotoCaption,
		Order:      m.PhotoOrder,
		UploadedAt: m.PhotoUploadedAt,
	}
}

// ToGalleryDTO renders a gallery. photo_count is always derived from the loaded
// photos; withPhotos controls whether the photo list itself is included.
func ToGalleryDTO(m model.GalleryModel, withPhotos bool) GalleryDTO {
	var cover *CoverImageDTO
	if m.GalleryCoverImageURL != nil && m.GalleryCoverImageKey != nil {
		cover = &CoverImageDTO{URL: *m.GalleryCoverImageURL, PublicID: *m.GalleryCoverImageKey}
	}

	out := GalleryDTO{
		ID:          m.GalleryID.String(),
		Title:       m.GalleryTitle,
		Description: m.GalleryDescription,
		CoverImage:  cover,
		EventDate:   m.GalleryEventDate,
		Location:    m.GalleryLocation,
		Category:    m.GalleryCategory,
		IsPublished: m.GalleryIsPublished,
		PhotoCount:  len(m.Photos),
		ViewCount:   m.GalleryViewCount,
		CreatedAt:   m.GalleryCreatedAt,
		UpdatedAt:   m.GalleryUpdatedAt,
	}

	if withPhotos {
		out.Photos = make([]PhotoDTO, 0, len(m.Photos))
		for _, p := range m.Photos {
			out.Photos = append(out.Photos, ToPhotoDTO(p))
		}
	}
	return out
}
