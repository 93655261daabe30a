package storage

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/sys/unix"
)

type DiskStorage struct {
	// BasePath is a directory (usually mount point of a disk) that is writable by the current process
	BasePath string
	bucket   Bucket
	// Concurrent writers to the same key race on the file contents,
	// so writes are serialized per storage key
	fileLocks cmap.ConcurrentMap[string, *sync.Mutex]
	dirs      cmap.ConcurrentMap[string, bool]
}

func NewDiskStorage(bucket *Bucket) StorageAPI {
	return &DiskStorage{
		BasePath:  bucket.Path,
		bucket:    *bucket,
		fileLocks: cmap.New[*sync.Mutex](),
		dirs:      cmap.New[bool](),
	}
}

func (s *DiskStorage) getFullPath(path string) string {
	return s.BasePath + "/" + path
}

func (s *DiskStorage) createDir(dir string) error {
	if _, ok := s.dirs.Get(dir); ok {
		return nil
	}
	s.dirs.Set(dir, true)
	return os.MkdirAll(dir, 0777)
}

func (s *DiskStorage) lockFor(path string) *sync.Mutex {
	lock := &sync.Mutex{}
	if !s.fileLocks.SetIfAbsent(path, lock) {
		lock, _ = s.fileLocks.Get(path)
	}
	return lock
}

func (s *DiskStorage) Save(path string, reader io.Reader) (int64, error) {
	lock := s.lockFor(path)
	lock.Lock()
	defer lock.Unlock()

	fileName := s.getFullPath(path)
	if err := s.createDir(filepath.Dir(fileName)); err != nil {
		return 0, err
	}
	file, err := os.Create(fileName)
	if err != nil {
		return 0, err
	}
	result, err := io.Copy(file, reader)
	file.Close()
	return result, err
}

func (s *DiskStorage) Load(path string, writer io.Writer) (int64, error) {
	fileName := s.getFullPath(path)
	file, err := os.Open(fileName)
	if err != nil {
		return 0, err
	}
	result, err := io.Copy(writer, file)
	file.Close()
	return result, err
}

func (s *DiskStorage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	fileName := s.getFullPath(path)
	http.ServeFile(writer, request, fileName)
}

func (s *DiskStorage) Delete(path string) error {
	lock := s.lockFor(path)
	lock.Lock()
	defer lock.Unlock()

	return os.Remove(s.getFullPath(path))
}

func (s *DiskStorage) GetSize(path string) int64 {
	fi, err := os.Stat(s.getFullPath(path))
	if err != nil {
		return -1
	}
	return fi.Size()
}

func (s *DiskStorage) GetTotalSpace() uint64 {
	var stat unix.Statfs_t
	if err := unix.Statfs(s.BasePath, &stat); err != nil {
		return 0
	}
	return stat.Blocks * uint64(stat.Bsize)
}

func (s *DiskStorage) GetFreeSpace() uint64 {
	var stat unix.Statfs_t
	if err := unix.Statfs(s.BasePath, &stat); err != nil {
		return 0
	}
	return stat.Bavail * uint64(stat.Bsize)
}

func (s *DiskStorage) GetBucket() *Bucket {
	return &s.bucket
}
