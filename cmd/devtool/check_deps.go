package main

import (
	"fmt"
	"os"
	"strings"
)

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required development dependencies"
}

// depProbe describes one tool to look for. Optional tools print a warning
// instead of failing the check.
type depProbe struct {
	label    string
	cmd      []string
	optional bool
	version  func(out string) string
	hint     []string
}

func (c *CheckDepsCommand) Run(args []string) error {
	fmt.Println("Checking dependencies...")

	probes := []depProbe{
		{
			label: "Go",
			cmd:   []string{"go", "version"},
			// go version go1.24.0 linux/amd64
			version: fieldAt(2),
			hint:    []string{"   Install from: https://go.dev/dl/"},
		},
		{
			label: "Docker",
			cmd:   []string{"docker", "--version"},
			// Docker version 24.0.5, build ced0996
			version: func(out string) string {
				return strings.TrimRight(fieldAt(2)(out), ",")
			},
			hint: []string{"   Install from: https://docs.docker.com/get-docker/"},
		},
		{
			label:    "Docker Compose",
			cmd:      []string{"docker", "compose", "version"},
			optional: true,
			// Docker Compose version v2.20.2
			version: fieldAt(3),
			hint:    []string{"⚠️  Docker Compose not found (needed for the local database)"},
		},
	}

	hasError := false
	for _, p := range probes {
		if out, err := getCommandOutput(p.cmd[0], p.cmd[1:]...); err == nil {
			fmt.Printf("✅ %s installed: %s\n", p.label, p.version(out))
			continue
		}
		if p.optional {
			for _, line := range p.hint {
				fmt.Println(line)
			}
			continue
		}
		fmt.Printf("❌ %s not found!\n", p.label)
		for _, line := range p.hint {
			fmt.Println(line)
		}
		hasError = true
	}

	c.checkGoose()

	if hasError {
		return fmt.Errorf("missing required dependencies")
	}

	fmt.Println("\n🎉 Environment check complete!")
	return nil
}

// fieldAt returns the nth whitespace field, or the whole string when the
// output is shorter than expected.
func fieldAt(n int) func(string) string {
	return func(out string) string {
		parts := strings.Fields(out)
		if len(parts) > n {
			return parts[n]
		}
		return out
	}
}

// checkGoose probes PATH first and ~/go/bin second, since go install drops
// binaries there without PATH necessarily knowing.
func (c *CheckDepsCommand) checkGoose() {
	if version, err := getCommandOutput("goose", "--version"); err == nil {
		fmt.Printf("✅ Goose installed: %s\n", gooseVersionString(version))
		return
	}

	home, _ := os.UserHomeDir()
	goosePath := home + "/go/bin/goose"
	if version, err := getCommandOutput(goosePath, "--version"); err == nil {
		fmt.Printf("✅ Goose installed (in ~/go/bin): %s\n", gooseVersionString(version))
		return
	}

	fmt.Println("⚠️  Goose not found (migrations fall back to 'go run')")
	fmt.Println("   Install: go install github.com/pressly/goose/v3/cmd/goose@latest")
}

// gooseVersionString handles both "goose version:v3.15.0" and
// "goose version v3.15.0" output shapes.
func gooseVersionString(out string) string {
	parts := strings.Fields(out)
	if len(parts) == 0 {
		return out
	}
	return strings.TrimPrefix(parts[len(parts)-1], "version:")
}
