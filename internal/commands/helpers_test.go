package commands

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sqve/gitfu/internal/config"
	"github.com/sqve/gitfu/internal/logger"
	"github.com/sqve/gitfu/internal/prompt"
	"github.com/sqve/gitfu/internal/testutil"
)

// useMock installs mock as the executor and answers prompts from answers.
// Defaults are loaded into a fresh viper and logger output is captured in
// plain mode.
func useMock(t *testing.T, mock *testutil.MockExecutor, answers string) (stdout, stderr *bytes.Buffer) {
	t.Helper()

	SetExecutorProvider(NewExecutorProviderWith(mock, prompt.New(strings.NewReader(answers), io.Discard)))
	t.Cleanup(ResetExecutorProvider)

	viper.Reset()
	config.SetDefaults()
	t.Cleanup(viper.Reset)

	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	logger.SetOutput(stdout, stderr)
	config.Global.Plain = true
	t.Cleanup(func() {
		logger.SetOutput(nil, nil)
		config.Global.Plain = false
	})

	return stdout, stderr
}

func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	return testutil.ExecuteCommand(cmd, args...)
}
