package models

import (
	"gallery/db"
	"time"
)

// Album is the metadata for one uploaded photo.
// Img is the storage key and must be unique across the whole store.
type Album struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index:user_album,priority:1"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt int64  `gorm:"index:user_album,priority:2"`
	Img       string `gorm:"type:varchar(100);index:uniq_img,unique;not null"`
	ImgName   string `gorm:"type:varchar(50)"` // user-supplied display name
}

func AlbumCreate(userID uint64, img, imgName string) (a Album, err error) {
	a.UserID = userID
	a.Img = img
	a.ImgName = imgName
	a.CreatedAt = time.Now().Unix()
	err = db.Instance.Create(&a).Error
	if isDuplicateErr(err) {
		return Album{}, ErrDuplicateFilename
	}
	return a, err
}

// AlbumsForUser returns the given user's photos in the order they were
// uploaded. An empty album is not an error - callers get an empty slice.
func AlbumsForUser(userID uint64) (albums []Album, err error) {
	err = db.Instance.Where("user_id = ?", userID).Order("id ASC").Find(&albums).Error
	return
}

// AlbumFindForUser looks up one photo by storage key, restricted to its owner.
func AlbumFindForUser(userID uint64, img string) (Album, error) {
	var a Album
	result := db.Instance.Where("user_id = ? and img = ?", userID, img).Limit(1).Find(&a)
	if result.Error != nil {
		return Album{}, result.Error
	}
	if result.RowsAffected != 1 {
		return Album{}, ErrNotFound
	}
	return a, nil
}
