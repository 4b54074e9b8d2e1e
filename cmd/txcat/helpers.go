package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/mkarlsen/txcat/internal/api"
	"github.com/mkarlsen/txcat/internal/common"
	"github.com/mkarlsen/txcat/internal/theme"
)

// newAPIClient builds the backend client from configuration.
func newAPIClient() (*api.Client, error) {
	baseURL := viper.GetString("api.base_url")
	client, err := api.NewClient(baseURL)
	if err != nil {
		return nil, common.NewUserError("failed to create API client", err)
	}
	return client, nil
}

// newThemeManager resolves the active theme before any styled output.
func newThemeManager() *theme.Manager {
	manager := theme.NewManager(theme.NewStore(theme.DefaultStorePath()))
	manager.Init()
	return manager
}

// confirm asks a y/N question on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(response)) == "y"
}

// formatSuccess and friends style one-line command output.
func formatSuccess(th theme.Theme, message string) string {
	return th.StatusSuccess.Render("✓ " + message)
}

func formatError(th theme.Theme, message string) string {
	return th.StatusError.Render("✗ " + message)
}

func formatWarning(th theme.Theme, message string) string {
	return th.StatusWarning.Render("⚠ " + message)
}

func formatInfo(th theme.Theme, message string) string {
	return th.StatusInfo.Render("ℹ " + message)
}
