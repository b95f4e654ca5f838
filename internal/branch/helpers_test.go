package branch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/sqve/gitfu/internal/config"
	"github.com/sqve/gitfu/internal/logger"
)

type mockConfirmer struct {
	mock.Mock
}

func (m *mockConfirmer) ConfirmDeletion(names ...string) (bool, error) {
	args := m.Called(names)
	return args.Bool(0), args.Error(1)
}

// captureOutput redirects logger output in plain mode for the test.
func captureOutput(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	logger.SetOutput(stdout, stderr)
	config.Global.Plain = true
	t.Cleanup(func() {
		logger.SetOutput(nil, nil)
		config.Global.Plain = false
	})
	return stdout, stderr
}
