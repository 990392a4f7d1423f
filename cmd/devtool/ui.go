package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// colorEnabled honors the NO_COLOR convention so CI logs stay readable
var colorEnabled = os.Getenv("NO_COLOR") == ""

func printColored(color, prefix, format string, a ...interface{}) {
	if !colorEnabled {
		fmt.Printf(prefix+format+"\n", a...)
		return
	}
	fmt.Printf(color+prefix+format+colorReset+"\n", a...)
}

func PrintInfo(format string, a ...interface{}) {
	printColored(colorBlue, "ℹ ", format, a...)
}

func PrintSuccess(format string, a ...interface{}) {
	printColored(colorGreen, "✓ ", format, a...)
}

func PrintWarning(format string, a ...interface{}) {
	printColored(colorYellow, "⚠ ", format, a...)
}

func PrintError(format string, a ...interface{}) {
	printColored(colorRed, "✗ ", format, a...)
}

func PrintHeader(title string) {
	fmt.Println()
	printColored(colorYellow, "=== ", "%s ===", title)
}

// Shell redirection, pipes, and command substitution markers. Arguments
// may eventually reach a shell-executing process, so these are refused
// outright. Single '&' and ';' stay allowed for URLs and SQL.
var hostilePatterns = []string{"|", "`", "$(", "&&", "||", ">", "<"}

// checkHostile rejects command arguments carrying shell injection patterns.
func checkHostile(inputs ...string) error {
	for _, s := range inputs {
		// Newlines and CR can split commands
		if strings.ContainsAny(s, "\n\r") {
			return fmt.Errorf("hostile input detected: newlines or carriage returns")
		}

		if strings.Contains(s, "\x00") {
			return fmt.Errorf("hostile input detected: null byte")
		}

		for _, p := range hostilePatterns {
			if strings.Contains(s, p) {
				return fmt.Errorf("hostile input detected: pattern %q in %q", p, s)
			}
		}
	}
	return nil
}

// checkedCommand builds an exec.Cmd after vetting every argument.
func checkedCommand(name string, args ...string) (*exec.Cmd, error) {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return nil, err
	}
	// #nosec G204 - arguments vetted above
	return exec.Command(name, args...), nil
}

func getCommandOutput(name string, args ...string) (string, error) {
	cmd, err := checkedCommand(name, args...)
	if err != nil {
		return "", err
	}
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// runCommand runs a command silently
func runCommand(name string, args ...string) error {
	cmd, err := checkedCommand(name, args...)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// runCommandVerbose runs a command and pipes output to stdout/stderr
func runCommandVerbose(name string, args ...string) error {
	cmd, err := checkedCommand(name, args...)
	if err != nil {
		return err
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
