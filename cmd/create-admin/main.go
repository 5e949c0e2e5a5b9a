package main

import (
	"bufio"
	"context"
	"fmt"
	"net/mail"
	"os"
	"strings"
	"syscall"

	"github.com/blanklearn/marketplace-backend/internal/config"
	"github.com/blanklearn/marketplace-backend/internal/database"
	"github.com/blanklearn/marketplace-backend/internal/logger"
	"github.com/blanklearn/marketplace-backend/internal/repository"
	"github.com/blanklearn/marketplace-backend/internal/service"
	"golang.org/x/term"
)

const minPasswordLength = 6

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	adminService := service.NewAdminService(repository.NewAdminRepository(pool), service.NewAuthService(cfg))

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Admin User ===")

	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		fmt.Println("Error: A valid email is required")
		return
	}

	password, ok := readPassword("Enter Password: ")
	if !ok {
		return
	}
	if len(password) < minPasswordLength {
		fmt.Printf("Error: Password must be at least %d characters\n", minPasswordLength)
		return
	}
	confirm, ok := readPassword("Confirm Password: ")
	if !ok {
		return
	}
	if confirm != password {
		fmt.Println("Error: Passwords do not match")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	admin, err := adminService.Create(ctx, name, email, password)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin")
	}

	fmt.Printf("\nSuccess! Admin '%s' (%s) created with ID: %d\n", admin.Name, admin.Email, admin.ID)
}

// readPassword prompts without echoing input.
func readPassword(prompt string) (string, bool) {
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Println("Error reading password")
		return "", false
	}
	return string(b), true
}
