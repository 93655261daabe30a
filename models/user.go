package models

import (
	"errors"

	"gallery/db"
	"gallery/utils"

	"gorm.io/gorm"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Name      string  `gorm:"type:varchar(20)"`
	Email     string  `gorm:"type:varchar(40);index:uniq_email,unique"`
	Password  string  `gorm:"type:varchar(128)"` // hex of sha512(password+salt)
	PassSalt  string  `gorm:"type:varchar(200)"`
	Albums    []Album `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

const saltSize = 60

// UserCreate registers a new user. The password is never stored as-is:
// a random salt is generated and only the salted hash is persisted.
func UserCreate(name, email, plainTextPassword string) (u User, err error) {
	u.Name = name
	u.Email = email
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
	err = db.Instance.Create(&u).Error
	if isDuplicateErr(err) {
		return User{}, ErrDuplicateEmail
	}
	return u, err
}

// UserLogin returns the user for the given credentials. A missing email and
// a wrong password are indistinguishable to the caller.
func UserLogin(email, plainTextPassword string) (User, error) {
	var u User
	result := db.Instance.First(&u, "email = ?", email)
	if result.Error != nil {
		return User{}, ErrInvalidCredentials
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func UserFindByEmail(email string) (User, error) {
	var u User
	err := db.Instance.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}
	return u, err
}

func UserFindByID(id uint64) (User, error) {
	var u User
	err := db.Instance.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}
	return u, err
}

// UserList is used by the debug listing end-point only
func UserList() (users []User, err error) {
	err = db.Instance.Order("id ASC").Find(&users).Error
	return
}
