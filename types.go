package fskit

import (
	"io/fs"
	"time"

	"github.com/filecraft/fskit/internal/logging"
)

// FileInfo represents file metadata.
type FileInfo struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	IsDir     bool      `json:"is_dir"`
	Mode      string    `json:"mode"`
	Modified  time.Time `json:"modified"`
	Extension string    `json:"extension,omitempty"`
}

// Permissions applied by operations that create files or directories.
const (
	filePerm fs.FileMode = 0o644
	dirPerm  fs.FileMode = 0o755
)

// Ops bundles the operation surface over a Backend. Fields are exported
// so tests and embedders can substitute the backend, config, or logger.
type Ops struct {
	Backend Backend
	Config  *Config
	Log     *logging.Logger
}

// New creates an Ops wired to the real filesystem, configuration from the
// environment, and a logger at the configured level.
func New() *Ops {
	cfg := LoadOrDefault()
	logger, err := logging.New(logging.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		logger = logging.NewNop()
	}
	return &Ops{Backend: OS(), Config: cfg, Log: logger}
}
