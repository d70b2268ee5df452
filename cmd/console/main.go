package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jasonfuller/relic-quest/internal/session"
)

type ConsoleConfig struct {
	APIBaseURL string
	Timeout    time.Duration
}

func main() {
	cfg := &ConsoleConfig{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		Timeout:    30 * time.Second,
	}

	client := &apiClient{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.APIBaseURL,
	}

	if !client.testConnection() {
		fmt.Fprintf(os.Stderr, "Could not connect to API. Please ensure the API is running.\nTry: docker-compose up -d\n")
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)

	if err := authenticate(client, reader); err != nil {
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n", err)
		os.Exit(1)
	}

	// An unfinished run resumes directly; otherwise pick a level.
	view, err := client.currentSession()
	if err != nil {
		view, err = pickAndStart(client, reader)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Printf("Resuming your run on %s.\n", view.Save.LevelID)
	}

	p := tea.NewProgram(NewConsoleUI(client, view), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func authenticate(client *apiClient, reader *bufio.Reader) error {
	fmt.Print("Do you have an account? [y/n]: ")
	answer, _ := reader.ReadString('\n')

	email := prompt(reader, "Email: ")
	password := prompt(reader, "Password: ")

	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
		return client.login(email, password)
	}

	displayName := prompt(reader, "Display name: ")
	return client.signup(displayName, email, password)
}

func pickAndStart(client *apiClient, reader *bufio.Reader) (*session.View, error) {
	levels, err := client.listLevels()
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels available")
	}

	fmt.Println("\nAvailable Levels:")
	for i, lvl := range levels {
		fmt.Printf("  %d - %s (%s, %d rooms)\n", i+1, lvl.Name, lvl.Difficulty, lvl.Rooms)
	}
	fmt.Print("\nSelect a level by number: ")

	var choice int
	if _, err := fmt.Scanf("%d", &choice); err != nil || choice < 1 || choice > len(levels) {
		return nil, fmt.Errorf("invalid selection")
	}

	return client.startSession(levels[choice-1].ID)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
