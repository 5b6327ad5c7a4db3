// Package mapped provides a read-only view of a whole file.
package mapped

import (
	"fmt"
	"os"
)

// File is an immutable view of a file's bytes. Data must not be
// written to and must not be used after Close.
type File struct {
	Data  []byte
	unmap func([]byte) error
}

// Open returns the contents of path, memory mapped where the
// platform allows it.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() == 0 {
		return &File{}, nil
	}

	return mapFile(f, int(info.Size()))
}

func (m *File) Close() error {
	data := m.Data
	m.Data = nil
	if m.unmap == nil || data == nil {
		return nil
	}
	if err := m.unmap(data); err != nil {
		return fmt.Errorf("failed to unmap file: %w", err)
	}
	return nil
}
