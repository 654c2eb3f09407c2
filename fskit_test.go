package fskit

import (
	"github.com/filecraft/fskit/internal/logging"
)

func newTestOps() *Ops {
	return &Ops{Backend: OS(), Config: Default(), Log: logging.NewNop()}
}
