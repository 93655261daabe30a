package models

import (
	"errors"
	"testing"
)

func TestAlbumsForUser(t *testing.T) {
	userA, err := UserCreate("Album UserA", "albums-a@example.com", "secret1")
	if err != nil {
		t.Fatal(err)
	}
	userB, err := UserCreate("Album UserB", "albums-b@example.com", "secret1")
	if err != nil {
		t.Fatal(err)
	}

	// Interleave uploads so ownership filtering is actually exercised
	for _, row := range []struct {
		userID uint64
		img    string
		name   string
	}{
		{userA.ID, "user/a/1_cat.png", "My Cat"},
		{userB.ID, "user/b/1_dog.png", "My Dog"},
		{userA.ID, "user/a/2_sea.png", "The Sea"},
	} {
		if _, err := AlbumCreate(row.userID, row.img, row.name); err != nil {
			t.Fatalf("AlbumCreate(%q): %v", row.img, err)
		}
	}

	albums, err := AlbumsForUser(userA.ID)
	if err != nil {
		t.Fatalf("AlbumsForUser: %v", err)
	}
	if len(albums) != 2 {
		t.Fatalf("user A has %d albums, want 2", len(albums))
	}
	// Insertion order
	if albums[0].ImgName != "My Cat" || albums[1].ImgName != "The Sea" {
		t.Errorf("albums out of order: %q, %q", albums[0].ImgName, albums[1].ImgName)
	}
	for _, a := range albums {
		if a.UserID != userA.ID {
			t.Errorf("album %d belongs to user %d", a.ID, a.UserID)
		}
	}

	albums, err = AlbumsForUser(userB.ID)
	if err != nil {
		t.Fatalf("AlbumsForUser: %v", err)
	}
	if len(albums) != 1 || albums[0].ImgName != "My Dog" {
		t.Errorf("user B albums = %+v", albums)
	}
}

func TestAlbumsForUserEmpty(t *testing.T) {
	user, err := UserCreate("Empty Album", "albums-empty@example.com", "secret1")
	if err != nil {
		t.Fatal(err)
	}
	albums, err := AlbumsForUser(user.ID)
	if err != nil {
		t.Fatalf("an empty album must not be an error, got %v", err)
	}
	if len(albums) != 0 {
		t.Errorf("got %d albums, want 0", len(albums))
	}
}

func TestAlbumDuplicateFilename(t *testing.T) {
	user, err := UserCreate("Dup Album", "albums-dup@example.com", "secret1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = AlbumCreate(user.ID, "user/x/1_same.png", "One"); err != nil {
		t.Fatal(err)
	}
	_, err = AlbumCreate(user.ID, "user/x/1_same.png", "Two")
	if !errors.Is(err, ErrDuplicateFilename) {
		t.Errorf("err = %v, want ErrDuplicateFilename", err)
	}
}

func TestAlbumFindForUser(t *testing.T) {
	owner, err := UserCreate("Owner Here", "find-owner@example.com", "secret1")
	if err != nil {
		t.Fatal(err)
	}
	other, err := UserCreate("Other User", "find-other@example.com", "secret1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = AlbumCreate(owner.ID, "user/o/1_mine.png", "Mine"); err != nil {
		t.Fatal(err)
	}
	if _, err = AlbumFindForUser(owner.ID, "user/o/1_mine.png"); err != nil {
		t.Errorf("owner lookup failed: %v", err)
	}
	if _, err = AlbumFindForUser(other.ID, "user/o/1_mine.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("another user's photo must not be found, got %v", err)
	}
}
