package uploads

import (
	"bytes"
	"fmt"
	"log"
	"mime/multipart"
	"strconv"
	"strings"

	"gallery/config"
	"gallery/models"
	"gallery/storage"
	"gallery/utils"

	"github.com/google/uuid"
)

// Album.Img is varchar(100); keep the key comfortably below that even with
// the "user/<id>/" prefix and the 36-char uuid
const maxNamePart = 30

// StorageKey builds the key a new upload is stored under. Keys are namespaced
// per user and carry a generated suffix, so two users uploading "cat.png" (or
// one user uploading it twice) never collide and Album.Img stays unique.
func StorageKey(userID uint64, clientName string) string {
	name := utils.SanitizeFilename(clientName)
	if len(name) > maxNamePart {
		// Keep the extension when truncating
		ext := ""
		if idx := strings.LastIndex(name, "."); idx > 0 && len(name)-idx <= 10 {
			ext = name[idx:]
		}
		name = name[:maxNamePart-len(ext)] + ext
	}
	return "user/" + strconv.FormatUint(userID, 10) + "/" + uuid.NewString() + "_" + name
}

// ThumbKey is where the generated thumbnail for a stored photo lives
func ThumbKey(key string) string {
	return key + "_thumb.jpg"
}

// Process runs the upload pipeline for an authenticated user: store the bytes,
// record the album entry, then try for a thumbnail. If the metadata insert
// fails the stored file is removed again so disk and database stay consistent.
func Process(user *models.User, file *multipart.FileHeader, displayName string) (models.Album, error) {
	if displayName == "" {
		displayName = file.Filename
	}
	if len(displayName) > 50 {
		displayName = displayName[:50]
	}
	stor := storage.GetDefaultStorage()
	key := StorageKey(user.ID, file.Filename)

	reader, err := file.Open()
	if err != nil {
		return models.Album{}, fmt.Errorf("opening upload: %w", err)
	}
	_, err = stor.Save(key, reader)
	reader.Close()
	if err != nil {
		return models.Album{}, fmt.Errorf("storing photo: %w", err)
	}

	album, err := models.AlbumCreate(user.ID, key, displayName)
	if err != nil {
		if delErr := stor.Delete(key); delErr != nil {
			log.Printf("could not remove orphaned upload %s: %v", key, delErr)
		}
		return models.Album{}, err
	}

	createThumb(stor, key)
	return album, nil
}

// createThumb is best-effort - non-image uploads and resize failures only log
func createThumb(stor storage.StorageAPI, key string) {
	var buf, thumb bytes.Buffer
	if _, err := stor.Load(key, &buf); err != nil {
		log.Printf("thumb: cannot re-read %s: %v", key, err)
		return
	}
	if _, err := utils.CreateThumb(uint(config.THUMB_SIZE), &buf, &thumb); err != nil {
		// Most likely not an image at all
		return
	}
	if _, err := stor.Save(ThumbKey(key), &thumb); err != nil {
		log.Printf("thumb: cannot save for %s: %v", key, err)
	}
}
