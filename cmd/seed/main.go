package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"tasktracker/internal/config"
	"tasktracker/internal/db"
	"tasktracker/internal/repository"
	"tasktracker/internal/service"
)

// SeedUser is one user of the fixture file.
type SeedUser struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Tasks    []SeedTask `json:"tasks"`
}

// SeedTask is one task of a fixture user.
type SeedTask struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// seedResult counts what a seed run did.
type seedResult struct {
	usersCreated int
	usersSkipped int
	tasksCreated int
}

func main() {
	file := flag.String("file", os.Getenv("SEED_FILE"), "path to the JSON fixture")
	flag.Parse()

	if *file == "" {
		log.Fatalf("no fixture given: use -file or SEED_FILE")
	}

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	users, err := loadFixture(*file)
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}
	log.Printf("Loaded %d users from %s", len(users), *file)

	// Sessions are never started by the seed, so none are wired.
	authService := service.NewAuthService(repository.NewUserRepository(gormDB), nil)
	taskService := service.NewTaskService(repository.NewTaskRepository(gormDB))

	res, err := seed(context.Background(), authService, taskService, users)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d", res.usersCreated)
	log.Printf("  - Users skipped (email already registered): %d", res.usersSkipped)
	log.Printf("  - Tasks created: %d", res.tasksCreated)
}

// loadFixture reads seed users from a JSON file.
func loadFixture(path string) ([]SeedUser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var users []SeedUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return users, nil
}

// seed registers each user and creates their tasks. Users whose email is
// already registered are skipped along with their tasks.
func seed(ctx context.Context, authService service.AuthService, taskService service.TaskService, users []SeedUser) (seedResult, error) {
	var res seedResult
	for _, u := range users {
		user, err := authService.Register(ctx, u.Email, u.Name, u.Password)
		if errors.Is(err, service.ErrUserAlreadyExists) {
			log.Printf("Skipping %s: already registered", u.Email)
			res.usersSkipped++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("register %s: %w", u.Email, err)
		}
		res.usersCreated++

		for _, t := range u.Tasks {
			task, err := taskService.Create(ctx, user.ID, t.Description)
			if err != nil {
				return res, fmt.Errorf("create task %q for %s: %w", t.Description, u.Email, err)
			}
			if t.Completed {
				done := true
				if _, err := taskService.SetCompleted(ctx, user.ID, task.ID, &done); err != nil {
					return res, fmt.Errorf("complete task %d: %w", task.ID, err)
				}
			}
			res.tasksCreated++
		}
	}
	return res, nil
}
