package main

import (
	"bufio"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"ayudame3d-backend/internal/config"
	"ayudame3d-backend/internal/domain"
	"ayudame3d-backend/internal/logger"
	"ayudame3d-backend/internal/repository/postgres"
)

// seedadmin seeds the role/status reference tables and interactively
// creates the first admin account.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	skipAdmin := flag.Bool("skip-admin", false, "Only seed roles and statuses, do not create an admin user")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	ctx := context.Background()
	store := postgres.NewStore(db)

	if err := seedReferenceTables(ctx, store); err != nil {
		log.Fatalf("Failed to seed reference tables: %v", err)
	}
	logger.Info("Roles and statuses seeded")

	if *skipAdmin {
		return
	}

	if err := createAdmin(ctx, store); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	logger.Info("Admin user created")
}

func seedReferenceTables(ctx context.Context, store *postgres.Store) error {
	roles := map[int32]string{
		domain.RoleAdmin:   "Admin",
		domain.RoleManager: "Manager",
		domain.RoleHelper:  "Helper",
	}
	for id, name := range roles {
		if err := store.RoleRepository.Ensure(ctx, id, name); err != nil {
			return fmt.Errorf("seed role %q: %w", name, err)
		}
	}

	statuses := map[int32]string{
		domain.StatusPending:    "Pending",
		domain.StatusRejected:   "Rejected",
		domain.StatusProcessing: "Processing",
		domain.StatusReady:      "Ready",
		domain.StatusCompleted:  "Complete",
	}
	for id, name := range statuses {
		if err := store.StatusRepository.Ensure(ctx, id, name); err != nil {
			return fmt.Errorf("seed status %q: %w", name, err)
		}
	}
	return nil
}

func createAdmin(ctx context.Context, store *postgres.Store) error {
	reader := bufio.NewReader(os.Stdin)

	fullName := prompt(reader, "Full name")
	email := prompt(reader, "Email")
	password := promptPassword()
	phone := prompt(reader, "Phone")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		FullName:     fullName,
		Phone:        phone,
		RoleID:       domain.RoleAdmin,
		IsActive:     true,
	}
	if err := store.UserRepository.Create(ctx, user); err != nil {
		return err
	}

	fmt.Printf("Created admin %s (id %d)\n", user.Email, user.ID)
	return nil
}

// prompt keeps asking until the answer is non-empty.
func prompt(reader *bufio.Reader, label string) string {
	for {
		fmt.Printf("%s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
		if answer := strings.TrimSpace(line); answer != "" {
			return answer
		}
	}
}

func promptPassword() string {
	for {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			log.Fatalf("Failed to read password: %v", err)
		}
		if answer := strings.TrimSpace(string(raw)); answer != "" {
			return answer
		}
	}
}
