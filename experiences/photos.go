package experiences

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"

	"voyago/utils"
)

const (
	photoDir     = "static/uploads/experiences"
	thumbDir     = "static/uploads/experiences/thumb"
	maxPhotoSize = 10 << 20
	thumbWidth   = 200
)

var supportedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// POST /api/experiences/photo
// Accepts a multipart photo upload, stores the original and a thumbnail, and
// returns the URLs for the experience's photos list.
func UploadPhoto(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing photo file")
		return
	}
	defer file.Close()

	if !supportedPhotoTypes[header.Header.Get("Content-Type")] {
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported photo type. Use JPEG, PNG or GIF.")
		return
	}

	buf, err := io.ReadAll(io.LimitReader(file, maxPhotoSize))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to read photo")
		return
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Could not decode image")
		return
	}

	name := utils.GetUUID() + strings.ToLower(filepath.Ext(header.Filename))
	if err := savePhoto(buf, img, name); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store photo")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"url":      "/" + photoDir + "/" + name,
		"thumbUrl": "/" + thumbDir + "/" + thumbName(name),
	})
}

func savePhoto(original []byte, img image.Image, name string) error {
	if err := os.MkdirAll(photoDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", photoDir, err)
	}
	if err := os.WriteFile(filepath.Join(photoDir, name), original, 0o644); err != nil {
		return fmt.Errorf("save photo: %w", err)
	}

	resized := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos) // maintain aspect ratio
	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", thumbDir, err)
	}

	out, err := os.Create(filepath.Join(thumbDir, thumbName(name)))
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, resized, &jpeg.Options{Quality: 85}); err != nil {
		return fmt.Errorf("encode thumbnail: %w", err)
	}
	return nil
}

func thumbName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
}
