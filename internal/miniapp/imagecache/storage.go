package imagecache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStorage хранит снимок кэша в одном JSON-файле.
type FileStorage struct {
	path string
}

// NewFileStorage создаёт файловое хранилище по указанному пути.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load читает снимок. Отсутствующий файл - пустой кэш, не ошибка.
func (s *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// Store атомарно переписывает снимок через временный файл.
func (s *FileStorage) Store(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".imagecache-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, s.path)
}
