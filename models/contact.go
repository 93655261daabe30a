package models

import (
	"gallery/db"
	"time"
)

// Contact is a visitor's message. It is owned by no one and is only ever
// inserted and listed in bulk.
type Contact struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	Name      string `gorm:"type:varchar(20)"`
	Email     string `gorm:"type:varchar(40)"`
	Message   string `gorm:"type:varchar(500)"`
}

func ContactCreate(name, email, message string) (c Contact, err error) {
	c.Name = name
	c.Email = email
	c.Message = message
	c.CreatedAt = time.Now().Unix()
	err = db.Instance.Create(&c).Error
	return
}

func ContactList() (contacts []Contact, err error) {
	err = db.Instance.Order("id ASC").Find(&contacts).Error
	return
}
