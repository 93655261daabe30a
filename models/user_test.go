package models

import (
	"errors"
	"testing"
)

func TestUserRegisterAndLogin(t *testing.T) {
	created, err := UserCreate("Alice Smith", "alice@example.com", "pass1")
	if err != nil {
		t.Fatalf("UserCreate: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created user has no ID")
	}
	if created.Password == "pass1" || created.PassSalt == "" {
		t.Error("password must not be stored as plain text")
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantOK   bool
	}{
		{"correct credentials", "alice@example.com", "pass1", true},
		{"wrong password", "alice@example.com", "pass2", false},
		{"unknown email", "nobody@example.com", "pass1", false},
		{"empty password", "alice@example.com", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := UserLogin(tt.email, tt.password)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("UserLogin: %v", err)
				}
				if u.ID != created.ID {
					t.Errorf("logged in as user %d, want %d", u.ID, created.ID)
				}
				return
			}
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestUserDuplicateEmail(t *testing.T) {
	first, err := UserCreate("First User", "dup@example.com", "secret1")
	if err != nil {
		t.Fatalf("UserCreate: %v", err)
	}
	_, err = UserCreate("Second User", "dup@example.com", "secret2")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
	// The first registration must be intact
	u, err := UserFindByEmail("dup@example.com")
	if err != nil {
		t.Fatalf("UserFindByEmail: %v", err)
	}
	if u.ID != first.ID || u.Name != "First User" {
		t.Errorf("surviving user = (%d, %q), want (%d, %q)", u.ID, u.Name, first.ID, "First User")
	}
}

func TestUserFindByID(t *testing.T) {
	created, err := UserCreate("Find Me", "findme@example.com", "secret1")
	if err != nil {
		t.Fatalf("UserCreate: %v", err)
	}
	u, err := UserFindByID(created.ID)
	if err != nil {
		t.Fatalf("UserFindByID: %v", err)
	}
	if u.Email != "findme@example.com" {
		t.Errorf("Email = %q", u.Email)
	}
	if _, err = UserFindByID(99999999); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
