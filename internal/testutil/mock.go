package testutil

import (
	"slices"
	"strings"

	"github.com/sqve/gitfu/internal/git"
)

// MockResponse is a canned result for a git invocation.
type MockResponse struct {
	Output string
	Error  error
}

type mockRule struct {
	prefix    string
	responses []MockResponse
}

// MockExecutor implements git.GitExecutor without running git. Every call is
// recorded in Commands. Responses are matched by the longest registered
// command prefix; each rule answers in order and keeps repeating its last
// response. Unmatched commands succeed with empty output.
type MockExecutor struct {
	Commands [][]string
	// Passthrough records which entries of Commands were streamed.
	Passthrough []bool

	rules []*mockRule
}

var _ git.GitExecutor = (*MockExecutor)(nil)

func NewMockExecutor() *MockExecutor {
	return &MockExecutor{}
}

// On queues a response for commands starting with prefix, e.g. "branch -r".
func (m *MockExecutor) On(prefix, output string, err error) *MockExecutor {
	for _, rule := range m.rules {
		if rule.prefix == prefix {
			rule.responses = append(rule.responses, MockResponse{Output: output, Error: err})
			return m
		}
	}
	m.rules = append(m.rules, &mockRule{
		prefix:    prefix,
		responses: []MockResponse{{Output: output, Error: err}},
	})
	return m
}

// Fail queues a git failure with the given stderr for commands starting with prefix.
func (m *MockExecutor) Fail(prefix, stderr string) *MockExecutor {
	return m.On(prefix, "", &git.GitError{
		Args:     strings.Fields(prefix),
		Stderr:   stderr,
		ExitCode: 1,
	})
}

func (m *MockExecutor) Execute(args ...string) (string, error) {
	return m.record(args, false)
}

func (m *MockExecutor) ExecuteRaw(args ...string) (string, error) {
	return m.record(args, false)
}

func (m *MockExecutor) ExecutePassthrough(args ...string) error {
	_, err := m.record(args, true)
	return err
}

func (m *MockExecutor) record(args []string, passthrough bool) (string, error) {
	m.Commands = append(m.Commands, slices.Clone(args))
	m.Passthrough = append(m.Passthrough, passthrough)

	key := strings.Join(args, " ")
	var match *mockRule
	for _, rule := range m.rules {
		if !matchesPrefix(key, rule.prefix) {
			continue
		}
		if match == nil || len(rule.prefix) > len(match.prefix) {
			match = rule
		}
	}
	if match == nil {
		return "", nil
	}

	resp := match.responses[0]
	if len(match.responses) > 1 {
		match.responses = match.responses[1:]
	}
	return resp.Output, resp.Error
}

// matchesPrefix matches whole words so "branch" does not match "branches".
func matchesPrefix(key, prefix string) bool {
	if !strings.HasPrefix(key, prefix) {
		return false
	}
	return len(key) == len(prefix) || key[len(prefix)] == ' '
}

// CommandStrings returns the recorded commands joined with spaces.
func (m *MockExecutor) CommandStrings() []string {
	out := make([]string, len(m.Commands))
	for i, cmd := range m.Commands {
		out[i] = strings.Join(cmd, " ")
	}
	return out
}

// Ran reports whether a command starting with prefix was executed.
func (m *MockExecutor) Ran(prefix string) bool {
	for _, cmd := range m.CommandStrings() {
		if matchesPrefix(cmd, prefix) {
			return true
		}
	}
	return false
}
