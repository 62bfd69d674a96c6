// Package filestore provides the storage the file routes are served from.
package filestore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/indigo-web/oneshot/http/status"
	"github.com/rs/zerolog"
)

var (
	// ErrNotFound is returned when there's no regular file with such a name.
	ErrNotFound = status.NewError(status.NotFound, "file not found")
	// ErrDirectoryMissing is returned when a file can't be created, because the directory it
	// must reside in doesn't exist.
	ErrDirectoryMissing = status.NewError(status.NotFound, "directory does not exist")
	// ErrIsDirectory is returned when a file is about to be written in place of a directory.
	ErrIsDirectory = status.NewError(status.NotFound, "a directory with such a name exists")
)

// Store reads and writes named files. Names are relative to whatever root the implementation
// was configured with.
type Store interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
}

const filePerm = 0o644

// Dir is a Store backed by a directory on the local filesystem.
//
// Names are joined with the root as is, therefore a name containing ".." segments can
// escape the root. There are no locks either: concurrent writes into the same file race
// at the filesystem level.
type Dir struct {
	root   string
	logger zerolog.Logger
}

func NewDir(root string, logger zerolog.Logger) Dir {
	return Dir{
		root:   root,
		logger: logger,
	}
}

func (d Dir) path(name string) string {
	path := filepath.Join(d.root, name)
	d.logger.Debug().Str("name", name).Str("path", path).Msg("resolved file path")

	return path
}

// Read returns the whole content of the file. Directories, as well as paths running
// through a regular file, are treated as not existing.
func (d Dir) Read(name string) ([]byte, error) {
	path := d.path(name)

	stat, err := os.Stat(path)
	if err != nil {
		return nil, d.mapErr(err, ErrNotFound)
	}

	if stat.IsDir() {
		return nil, ErrNotFound
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// the file may be removed in between
		return nil, d.mapErr(err, ErrNotFound)
	}

	return data, nil
}

// Write creates the file or truncates it if it already exists.
func (d Dir) Write(name string, data []byte) error {
	err := os.WriteFile(d.path(name), data, filePerm)
	if err == nil {
		return nil
	}

	if errors.Is(err, syscall.EISDIR) {
		return ErrIsDirectory
	}

	return d.mapErr(err, ErrDirectoryMissing)
}

// mapErr turns a missing path component into the negative result. Anything else is logged
// and reported as a bare internal server error, the OS message never reaches the client.
func (d Dir) mapErr(err, negative error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return negative
	}

	d.logger.Error().Err(err).Msg("file store failure")
	return status.ErrInternalServerError
}
