package fskit

import (
	"io/fs"
	"os"
)

// Backend is the seam between the operation surface and the platform
// filesystem. Tests substitute it to observe or fault individual calls.
type Backend interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	AppendFile(name string, data []byte, perm fs.FileMode) error
	Touch(name string, perm fs.FileMode) error
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
}

// osBackend implements Backend using the standard os package.
type osBackend struct{}

// OS returns the Backend backed by the real filesystem.
func OS() Backend {
	return osBackend{}
}

func (osBackend) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (osBackend) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (osBackend) AppendFile(name string, data []byte, perm fs.FileMode) error {
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Touch creates the file if absent and leaves existing content intact.
func (osBackend) Touch(name string, perm fs.FileMode) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	return f.Close()
}

func (osBackend) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osBackend) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (osBackend) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (osBackend) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (osBackend) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}
