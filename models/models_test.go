package models

import (
	"os"
	"path/filepath"
	"testing"

	"gallery/config"
	"gallery/db"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "gallery-models-test")
	if err != nil {
		panic(err)
	}
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = filepath.Join(dir, "test.db")
	db.Init()
	Init()

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}
