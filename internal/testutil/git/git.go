package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sqve/gitfu/internal/fs"
	"github.com/sqve/gitfu/internal/testutil"
)

// TestRepo provides a test git repository with proper configuration
type TestRepo struct {
	t    *testing.T
	Dir  string
	Path string
}

// NewTestRepo creates a new test repository with git config set up and an
// initial commit. Pass an optional branch name (default "main"). Tests are
// skipped when git is not installed.
func NewTestRepo(t *testing.T, branchName ...string) *TestRepo {
	t.Helper()
	testutil.RequireGit(t)

	dir := testutil.TempDir(t)
	repoPath := filepath.Join(dir, "repo")

	if err := os.MkdirAll(repoPath, fs.DirGit); err != nil {
		t.Fatalf("Failed to create repo dir: %v", err)
	}

	branch := "main"
	if len(branchName) > 0 && branchName[0] != "" {
		branch = branchName[0]
	}

	repo := &TestRepo{t: t, Dir: dir, Path: repoPath}
	repo.Git("init", "-b", branch)
	repo.Git("config", "commit.gpgsign", "false")
	repo.Git("config", "user.email", "test@example.com")
	repo.Git("config", "user.name", "Test User")

	repo.WriteFile("test.txt", "test")
	repo.Add("test.txt")
	repo.Commit("initial")

	return repo
}

// NewBareRemote creates a bare repository next to the test repo, registers
// it as remote name and pushes branch to it.
func (r *TestRepo) NewBareRemote(name string, branches ...string) string {
	r.t.Helper()
	bare := filepath.Join(r.Dir, name+".git")
	cmd := exec.Command("git", "init", "--bare", bare) // nolint:gosec
	if err := cmd.Run(); err != nil {
		r.t.Fatalf("Failed to init bare remote: %v", err)
	}
	r.Git("remote", "add", name, bare)
	for _, branch := range branches {
		r.Git("push", name, branch)
	}
	if len(branches) > 0 {
		r.Git("fetch", name)
	}
	return bare
}

// Git runs git in the repository and returns trimmed stdout. Fails the test on error.
func (r *TestRepo) Git(args ...string) string {
	r.t.Helper()
	cmd := exec.Command("git", args...) // nolint:gosec // Test helper with controlled input
	cmd.Dir = r.Path
	out, err := cmd.CombinedOutput()
	if err != nil {
		r.t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return strings.TrimSpace(string(out))
}

// CreateBranch creates a new branch at the current HEAD
func (r *TestRepo) CreateBranch(name string) {
	r.t.Helper()
	r.Git("branch", name)
}

// Checkout switches to a branch
func (r *TestRepo) Checkout(name string) {
	r.t.Helper()
	r.Git("checkout", name)
}

// CurrentBranch returns the checked out branch
func (r *TestRepo) CurrentBranch() string {
	r.t.Helper()
	return r.Git("rev-parse", "--abbrev-ref", "HEAD")
}

// Branches returns the local branch names
func (r *TestRepo) Branches() []string {
	r.t.Helper()
	out := r.Git("branch", "--format=%(refname:short)")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// WriteFile writes content to a file in the repository
func (r *TestRepo) WriteFile(name, content string) {
	r.t.Helper()
	testutil.WriteFile(r.t, filepath.Join(r.Path, name), content)
}

// ReadFile returns the content of a file in the repository
func (r *TestRepo) ReadFile(name string) string {
	r.t.Helper()
	data, err := os.ReadFile(filepath.Join(r.Path, name)) // nolint:gosec
	if err != nil {
		r.t.Fatalf("Failed to read file: %v", err)
	}
	return string(data)
}

// Add stages a file
func (r *TestRepo) Add(name string) {
	r.t.Helper()
	r.Git("add", name)
}

// Commit creates a commit with the given message
func (r *TestRepo) Commit(message string) {
	r.t.Helper()
	r.Git("commit", "-m", message)
}

// CommitFile writes, stages and commits a file in one step
func (r *TestRepo) CommitFile(name, content, message string) {
	r.t.Helper()
	r.WriteFile(name, content)
	r.Add(name)
	r.Commit(message)
}

// LastSubject returns the subject of the commit at HEAD
func (r *TestRepo) LastSubject() string {
	r.t.Helper()
	return r.Git("log", "-1", "--pretty=format:%s")
}

// Merge merges a branch into the current branch
func (r *TestRepo) Merge(branch string) {
	r.t.Helper()
	r.Git("merge", branch, "--no-edit")
}
