package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func galleryWithPhotos(keys ...string) GalleryModel {
	g := GalleryModel{GalleryID: uuid.New()}
	for i, key := range keys {
		g.Photos = append(g.Photos, PhotoModel{
			PhotoID:        uuid.New(),
			PhotoGalleryID: g.GalleryID,
			PhotoURL:       "https://cdn.example.com/" + key,
			PhotoKey:       key,
			PhotoOrder:     i,
		})
	}
	return g
}

func TestFindPhotoByKey(t *testing.T) {
	g := galleryWithPhotos("a.webp", "b.webp")

	photo := g.FindPhotoByKey("b.webp")
	require.NotNil(t, photo)
	assert.Equal(t, "b.webp", photo.PhotoKey)

	assert.Nil(t, g.FindPhotoByKey("missing.webp"))
}

func TestCoverMustReferenceOwnedPhoto(t *testing.T) {
	g := galleryWithPhotos("a.webp")

	// the set-cover flow resolves the key through FindPhotoByKey first
	photo := g.FindPhotoByKey("a.webp")
	require.NotNil(t, photo)
	g.GalleryCoverImageURL = &photo.PhotoURL
	g.GalleryCoverImageKey = &photo.PhotoKey

	assert.True(t, g.IsCover("a.webp"))
	assert.False(t, g.IsCover("b.webp"))
}

func TestClearCoverAfterCoverPhotoDeletion(t *testing.T) {
	g := galleryWithPhotos("a.webp", "b.webp")
	photo := g.FindPhotoByKey("a.webp")
	g.GalleryCoverImageURL = &photo.PhotoURL
	g.GalleryCoverImageKey = &photo.PhotoKey

	require.True(t, g.IsCover("a.webp"))
	g.ClearCover()

	assert.Nil(t, g.GalleryCoverImageKey)
	assert.Nil(t, g.GalleryCoverImageURL)
	assert.False(t, g.IsCover("a.webp"))
}
