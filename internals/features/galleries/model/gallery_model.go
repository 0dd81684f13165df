package model

import (
	"time"

	"github.com/google/uuid"
)

type GalleryModel struct {
	GalleryID            uuid.UUID  `gorm:"column:gallery_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"gallery_id"`
	GalleryTitle         string     `gorm:"column:gallery_title;type:varchar(150);not null" json:"gallery_title"`
	GalleryDescription   string     `gorm:"column:gallery_description;type:text" json:"gallery_description"`
	GalleryCoverImageURL *string    `gorm:"column:gallery_cover_image_url;type:text" json:"gallery_cover_image_url,omitempty"`
	GalleryCoverImageKey *string    `gorm:"column:gallery_cover_image_key;type:text" json:"gallery_cover_image_key,omitempty"`
	GalleryEventDate     time.Time  `gorm:"column:gallery_event_date;not null" json:"gallery_event_date"`
	GalleryLocation      *string    `gorm:"column:gallery_location;type:varchar(200)" json:"gallery_location,omitempty"`
	GalleryCategory      string     `gorm:"column:gallery_category;type:varchar(50);not null" json:"gallery_category"`
	GalleryIsPublished   bool       `gorm:"column:gallery_is_published;not null;default:false" json:"gallery_is_published"`
	GalleryViewCount     int        `gorm:"column:gallery_view_count;not null;default:0" json:"gallery_view_count"`

	Photos []PhotoModel `gorm:"foreignKey:PhotoGalleryID;references:GalleryID" json:"photos,omitempty"`

	GalleryCreatedAt time.Time `gorm:"column:gallery_created_at;autoCreateTime" json:"gallery_created_at"`
	GalleryUpdatedAt time.Time `gorm:"column:gallery_updated_at;autoUpdateTime" json:"gallery_updated_at"`
}

func (GalleryModel) TableName() string {
	return "galleries"
}

type PhotoModel struct {
	PhotoID         uuid.UUID `gorm:"column:photo_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"photo_id"`
	PhotoGalleryID  uuid.UUID `gorm:"column:photo_gallery_id;type:uuid;not null;index" json:"photo_gallery_id"`
	PhotoURL        string    `gorm:"column:photo_url;type:text;not null" json:"photo_url"`
	PhotoKey        string    `gorm:"column:photo_key;type:text;not null" json:"photo_key"`
	PhotoCaption    *string   `gorm:"column:photo_caption;type:varchar(300)" json:"photo_caption,omitempty"`
	PhotoOrder      int       `gorm:"column:photo_order;not null;default:0" json:"photo_order"`
	PhotoUploadedAt time.Time `gorm:"column:photo_uploaded_at;autoCreateTime" json:"photo_uploaded_at"`
}

func (PhotoModel) TableName() string {
	return "gallery_photos"
}

// FindPhotoByKey returns the loaded photo whose storage key matches, or nil.
// The cover reference is only ever set to a key that resolves here.
func (m *GalleryModel) FindPhotoByKey(key string) *PhotoModel {
	for i := range m.Photos {
		if m.Photos[i].PhotoKey == key {
			return &m.Photos[i]
		}
	}
	return nil
}

// IsCover reports whether the given photo key is the gallery's current cover.
func (m *GalleryModel) IsCover(key string) bool {
	return m.GalleryCoverImageKey != nil && *m.GalleryCoverImageKey == key
}

// ClearCover drops the cover reference. Called when the cover photo is deleted
// so the reference never dangles.
func (m *GalleryModel) ClearCover() {
	m.GalleryCoverImageURL = nil
	m.GalleryCoverImageKey = nil
}
