package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// getChangedPackages returns a list of Go packages that have changed.
// If stagedOnly is true, it checks staged changes (for pre-commit).
// If stagedOnly is false, it checks local changes against HEAD.
// Changes to go.mod, go.sum, or internal/domain return ./... because
// those flow into every package.
func getChangedPackages(stagedOnly bool) ([]string, error) {
	var out string
	var err error

	if stagedOnly {
		//nolint:forbidigo
		out, err = getCommandOutput("git", "diff", "--cached", "--name-only", "--diff-filter=ACMR")
	} else {
		//nolint:forbidigo
		out, err = getCommandOutput("git", "diff", "HEAD", "--name-only", "--diff-filter=ACMR")
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get changed files: %w", err)
	}

	if out == "" {
		return []string{}, nil
	}

	files := strings.Split(out, "\n")
	packageSet := make(map[string]bool)
	testAll := false

	for _, file := range files {
		file = strings.TrimSpace(file)
		if file == "" {
			continue
		}

		if file == "go.mod" || file == "go.sum" || strings.HasPrefix(file, "internal/domain/") {
			testAll = true
			break
		}

		if strings.HasSuffix(file, ".go") {
			// go test wants ./-prefixed package paths
			dir := filepath.ToSlash(filepath.Dir(file))
			if dir == "." {
				dir = "./"
			} else if !strings.HasPrefix(dir, "./") {
				dir = "./" + dir
			}
			packageSet[dir] = true
		}
	}

	if testAll {
		return []string{"./..."}, nil
	}

	packages := make([]string, 0, len(packageSet))
	for pkg := range packageSet {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)

	return packages, nil
}
