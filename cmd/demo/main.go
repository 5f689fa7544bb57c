package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"

	"user-lab/domain"
	"user-lab/internal"
	"user-lab/notify"
	"user-lab/users"
)

// Exit codes to provide meaningful status to the operating system.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Demo terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	rules, err := config.UserRules()
	if err != nil {
		return exitConfig, err
	}
	logger := internal.LoggerFromString(config.LogLevel)

	// 2. User management with the configured rules
	header("User management")
	manager, err := users.NewManager(rules, logger)
	if err != nil {
		return exitConfig, err
	}

	created, err := manager.CreateUser(domain.UserInput{
		Email:    "john@example.com",
		Name:     "John Doe",
		Password: "password123",
	})
	if err != nil {
		return exitRuntime, err
	}
	fmt.Printf("Created %s <%s> id=%s\n", created.Name, created.Email, created.ID)

	updated, err := manager.UpdateUser(created.ID, domain.UserInput{
		Email: "JANE@Example.com ",
		Name:  " Jane ",
	})
	if err != nil {
		return exitRuntime, err
	}

	// The update result carries no CreatedAt: callers re-merge the value
	// they retained from the create.
	updated.CreatedAt = created.CreatedAt
	fmt.Printf("Updated %s <%s> id=%s created=%s\n",
		updated.Name, updated.Email, updated.ID, updated.CreatedAt.Format(time.RFC3339))

	// 3. Custom rules: a stricter password minimum rejects the input
	header("Custom rules")
	strict, err := users.NewManager(users.Config{
		PasswordMinLength: 12,
		LoggingEnabled:    true,
	}, logger)
	if err != nil {
		return exitConfig, err
	}
	if _, err := strict.CreateUser(domain.UserInput{
		Email:    "bob@example.com",
		Name:     "Bob Johnson",
		Password: "short",
	}); err != nil {
		fmt.Printf("Validation error: %v\n", err)
	}

	// 4. Notifications: one message broadcast to every channel
	header("Notifications")
	service := notify.NewNotificationService(
		notify.NewEmailSender(os.Stdout),
		notify.NewSMSSender(os.Stdout),
		notify.NewPushSender(os.Stdout),
	)
	service.Notify(notify.Message{Content: "Welcome to the platform!"})

	return exitOK, nil
}

func header(title string) {
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render(" " + title + " "))
}
