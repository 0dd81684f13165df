package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"agriformation_backend/internals/configs"
)

const (
	MaxImageSize  = 5 * 1024 * 1024 // 5MB
	webpMaxWidth  = 1600
	webpMaxHeight = 1600
	webpQuality   = 80
)

// ValidateImageUpload rejects non-image or oversized uploads before any work is done.
func ValidateImageUpload(fh *multipart.FileHeader) error {
	if fh.Size > MaxImageSize {
		return fmt.Errorf("image exceeds 5MB (%dKB)", fh.Size/1024)
	}
	ct := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("unsupported file type: %s", ct)
	}
	return nil
}

// decodeImage sniffs the MIME and decodes jpeg/png/webp.
func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	// fallback by extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("unsupported image format: %s", ct)
}

// ConvertToWebP downscales (keep aspect) and re-encodes as lossy webp.
func ConvertToWebP(all []byte, filename string) ([]byte, error) {
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	img = imaging.Fit(img, webpMaxWidth, webpMaxHeight, imaging.CatmullRom)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sanitizeFilename(filename string) string {
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

// GenerateObjectKey builds a unique storage key; this key doubles as the public id.
func GenerateObjectKey(folder, originalFilename string) string {
	base := strings.TrimSuffix(sanitizeFilename(originalFilename), filepath.Ext(originalFilename))
	return fmt.Sprintf("%s/%s-%s-%s.webp", folder, time.Now().Format("20060102"), uuid.NewString(), base)
}

// UploadImage validates, recompresses and stores a multipart image.
// Returns the public URL and the object key (public id).
func UploadImage(folder string, fh *multipart.FileHeader) (string, string, error) {
	if err := ValidateImageUpload(fh); err != nil {
		return "", "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open image: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", "", fmt.Errorf("failed to read image: %w", err)
	}

	converted, err := ConvertToWebP(buf.Bytes(), fh.Filename)
	if err != nil {
		return "", "", fmt.Errorf("image conversion failed: %w", err)
	}

	key := GenerateObjectKey(folder, fh.Filename)
	if err := uploadToStorage("image", key, "image/webp", bytes.NewBuffer(converted)); err != nil {
		return "", "", fmt.Errorf("image upload failed: %w", err)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/image/%s",
		configs.StorageURL, url.PathEscape(key))
	return publicURL, key, nil
}

func uploadToStorage(bucket, key, contentType string, data *bytes.Buffer) error {
	if configs.StorageURL == "" || configs.StorageKey == "" {
		return fmt.Errorf("STORAGE_PROJECT_URL or STORAGE_SERVICE_ROLE_KEY is not set")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", configs.StorageURL, bucket, key)
	req, err := http.NewRequest(http.MethodPut, endpoint, data)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+configs.StorageKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// DeleteImage removes a stored object by key. Missing objects are not an error.
func DeleteImage(key string) error {
	if configs.StorageURL == "" || configs.StorageKey == "" {
		return fmt.Errorf("storage is not configured")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/image/%s", configs.StorageURL, key)
	req, err := http.NewRequest(http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+configs.StorageKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete failed status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
