//go:build mage

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type (
	Test  mg.Namespace
	Build mg.Namespace
)

var Aliases = map[string]interface{}{
	"build": Build.Dev,
	"test":  Test.Unit,
}

// Unit runs every package test except the testscript suite.
func (Test) Unit() error {
	return sh.RunV("go", "test", "-short", "./...")
}

// Integration drives the built gitfu binary through cmd/gitfu/testdata/script.
func (Test) Integration() error {
	return sh.RunV("go", "test", "-tags=integration", "-run", "TestScript", "./cmd/gitfu/...")
}

// gitfuLdflags stamps `git describe` into app.Version so `gitfu --version`
// names the build.
func gitfuLdflags(extra ...string) string {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || version == "" {
		version = "dev"
	}
	return strings.Join(append(extra, "-X github.com/sqve/gitfu/internal/app.Version="+version), " ")
}

func (Build) Dev() error {
	return sh.RunV("go", "build", "-ldflags", gitfuLdflags(), "-o", "bin/gitfu", "./cmd/gitfu")
}

// Release cross-compiles gitfu for the platforms shell integration supports.
func (Build) Release() error {
	targets := []string{"linux/amd64", "linux/arm64", "darwin/amd64", "darwin/arm64", "windows/amd64"}
	flags := gitfuLdflags("-s", "-w")

	for _, target := range targets {
		goos, goarch, _ := strings.Cut(target, "/")
		output := fmt.Sprintf("bin/gitfu-%s-%s", goos, goarch)
		if goos == "windows" {
			output += ".exe"
		}

		env := map[string]string{"GOOS": goos, "GOARCH": goarch, "CGO_ENABLED": "0"}
		if err := sh.RunWithV(env, "go", "build", "-ldflags", flags, "-o", output, "./cmd/gitfu"); err != nil {
			return fmt.Errorf("build %s: %w", target, err)
		}
	}
	return nil
}

func Lint() error {
	if os.Getenv("CI") != "" {
		return sh.RunV("golangci-lint", "run")
	}
	return sh.RunV("golangci-lint", "run", "--fix")
}

// Default runs the unit tests.
func Default() error {
	return Test{}.Unit()
}

// Clean removes built binaries.
func Clean() error {
	return os.RemoveAll("bin")
}
