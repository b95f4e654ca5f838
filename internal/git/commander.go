package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/sqve/gitfu/internal/errors"
)

// BinaryEnv overrides the git binary gitfu delegates to.
const BinaryEnv = "GITFU_GIT"

// Binary resolves the path to the real git binary once per process.
// The shell shim shadows `git` with a function, so the lookup has to go
// through PATH rather than the shell.
type Binary struct {
	once sync.Once
	path string
	err  error

	lookPath func(string) (string, error)
}

// NewBinary creates a Binary that resolves through exec.LookPath.
func NewBinary() *Binary {
	return &Binary{lookPath: exec.LookPath}
}

// DefaultBinary is shared by every Runner in the process.
var DefaultBinary = NewBinary()

// Path returns the resolved path, looking it up on first use.
func (b *Binary) Path() (string, error) {
	b.once.Do(func() {
		name := "git"
		if override := os.Getenv(BinaryEnv); override != "" {
			name = override
		}

		path, err := b.lookPath(name)
		if err != nil {
			b.err = errors.ErrGitNotFound(err)
			return
		}

		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		b.path = path
	})

	return b.path, b.err
}
