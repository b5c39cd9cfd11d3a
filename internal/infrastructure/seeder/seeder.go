package seeder

import (
	"log"

	"github.com/monopay/monopay-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Seeder handles database seeding operations
type Seeder struct {
	userRepo domain.UserRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(userRepo domain.UserRepository) *Seeder {
	return &Seeder{
		userRepo: userRepo,
	}
}

// SeedUsers seeds the database with demo accounts
func (s *Seeder) SeedUsers() error {
	log.Printf("Seeding users...")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	if err != nil {
		return err
	}
	passwordHash := string(hash)

	users := []struct {
		username    string
		displayName string
		email       string
	}{
		{"tophat", "Top Hat", "tophat@example.com"},
		{"racecar", "Race Car", "racecar@example.com"},
		{"thimble", "Thimble", "thimble@example.com"},
		{"scottie", "Scottie", "scottie@example.com"},
	}

	for _, u := range users {
		existingUser, err := s.userRepo.GetByUsername(u.username)
		if err != nil {
			log.Printf("Error checking existing user %s, skipping.", u.username)
			continue
		}

		if existingUser != nil {
			log.Printf("User %s already exists, skipping.", u.username)
			continue
		}

		user := &domain.User{
			UID:               domain.NewUID(),
			Username:          u.username,
			Password:          passwordHash,
			Email:             u.email,
			DisplayName:       u.displayName,
			AuthProvider:      domain.AuthProviderLocal,
			IsProfileComplete: true,
		}

		if err := s.userRepo.Create(user); err != nil {
			log.Printf("Error creating user %s.", u.username)
			return err
		}
		log.Printf("Successfully created user %s.", u.username)
	}

	log.Printf("User seeding completed successfully")
	return nil
}
