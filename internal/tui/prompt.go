package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// Credentials is the pair collected by the login prompt
type Credentials struct {
	Email    string
	Password string
}

// Registration is the data collected by the registration prompt
type Registration struct {
	Nickname string
	Email    string
	Password string
	MaxPrice float64
}

// PromptCredentials collects login credentials interactively. Used by the
// auth commands when flags are absent.
func PromptCredentials() (Credentials, error) {
	var creds Credentials

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(&creds.Email).
			Validate(requireField("email")),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&creds.Password).
			Validate(requireField("password")),
	))

	if err := form.Run(); err != nil {
		return Credentials{}, fmt.Errorf("prompt failed: %w", err)
	}
	return creds, nil
}

// PromptRegistration collects the fields needed to create an account
func PromptRegistration() (Registration, error) {
	var reg Registration
	var maxPrice string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Nickname").
			Value(&reg.Nickname).
			Validate(requireField("nickname")),
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(&reg.Email).
			Validate(requireField("email")),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&reg.Password).
			Validate(requireField("password")),
		huh.NewInput().
			Title("Max price (EUR)").
			Placeholder("0 for no limit").
			Value(&maxPrice).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return nil
				}
				v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
				if err != nil || v < 0 {
					return fmt.Errorf("must be a non-negative number")
				}
				return nil
			}),
	))

	if err := form.Run(); err != nil {
		return Registration{}, fmt.Errorf("prompt failed: %w", err)
	}
	if trimmed := strings.TrimSpace(maxPrice); trimmed != "" {
		reg.MaxPrice, _ = strconv.ParseFloat(trimmed, 64)
	}
	return reg, nil
}

// PromptConfirm displays a yes/no confirmation prompt
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirmed := defaultValue

	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(message).
			Value(&confirmed),
	))

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return confirmed, nil
}

func requireField(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

// IsInteractive returns true if stdin is a terminal (not piped)
func IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// ShouldPrompt returns true if prompts should be shown based on environment.
// Prompts are disabled in CI environments or when stdin is not a terminal.
func ShouldPrompt() bool {
	ciEnvVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_URL",
		"TRAVIS",
		"CIRCLECI",
		"BUILDKITE",
	}

	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return false
		}
	}

	return IsInteractive()
}
