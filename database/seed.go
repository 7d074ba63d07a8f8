package database

import (
	"log"

	"learnhub/config"
	"learnhub/models"
	"learnhub/storage"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed bootstraps an empty database with one admin account and the
// demo catalog. Running it against a non-empty users table is a no-op.
func Seed(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	log.Println("Seeding database...")

	store := storage.New(db)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), config.AppConfig.SaltRound)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Admin User",
		Email:    "admin@example.com",
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}
	if err := store.CreateUser(&admin); err != nil {
		return err
	}

	for _, demo := range demoCourses() {
		if err := store.CreateCourse(&demo.course, demo.lessons); err != nil {
			return err
		}
	}

	log.Println("Database seeded.")
	return nil
}

type demoCourse struct {
	course  models.Course
	lessons []models.Lesson
}

func demoCourses() []demoCourse {
	return []demoCourse{
		{
			course: models.Course{
				Title:        "Full Stack React & Node",
				Slug:         "full-stack-react-node",
				Description:  "Learn to build modern web applications from scratch.",
				Price:        "49.99",
				Category:     "Development",
				Difficulty:   models.DifficultyIntermediate,
				ThumbnailURL: "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=800&q=80",
			},
			lessons: []models.Lesson{
				{Title: "Introduction", ContentHTML: "<p>Welcome to the course!</p>", Order: 1},
				{Title: "Setup", ContentHTML: "<p>Let's install Node.js</p>", Order: 2},
			},
		},
		{
			course: models.Course{
				Title:        "Advanced TypeScript Patterns",
				Slug:         "advanced-typescript",
				Description:  "Master generic types, utility types, and advanced architectural patterns.",
				Price:        "79.99",
				Category:     "Development",
				Difficulty:   models.DifficultyAdvanced,
				ThumbnailURL: "https://images.unsplash.com/photo-1516116216624-53e697fedbea?w=800&q=80",
			},
			lessons: []models.Lesson{
				{Title: "Generics Deep Dive", ContentHTML: "<p>Understanding generic constraints and defaults.</p>", Order: 1},
				{Title: "Conditional Types", ContentHTML: "<p>Creating dynamic types based on inputs.</p>", Order: 2},
			},
		},
		{
			course: models.Course{
				Title:        "UI/UX Design Fundamentals",
				Slug:         "ui-ux-fundamentals",
				Description:  "The essential guide to modern interface design and user experience.",
				Price:        "39.99",
				Category:     "Design",
				Difficulty:   models.DifficultyBeginner,
				ThumbnailURL: "https://images.unsplash.com/photo-1586717791821-3f44a563eb4c?w=800&q=80",
			},
			lessons: []models.Lesson{
				{Title: "Visual Hierarchy", ContentHTML: "<p>Guiding the user's eye with color and spacing.</p>", Order: 1},
				{Title: "Typography", ContentHTML: "<p>Choosing and pairing fonts effectively.</p>", Order: 2},
			},
		},
		{
			course: models.Course{
				Title:        "Mastering Tailwind CSS",
				Slug:         "mastering-tailwind",
				Description:  "Build beautiful, responsive layouts at lightning speed with Tailwind.",
				Price:        "29.99",
				Category:     "Design",
				Difficulty:   models.DifficultyIntermediate,
				ThumbnailURL: "https://images.unsplash.com/photo-1587620962725-abab7fe55159?w=800&q=80",
			},
			lessons: []models.Lesson{
				{Title: "Utility First Concept", ContentHTML: "<p>Why utility classes beat traditional CSS.</p>", Order: 1},
				{Title: "Responsive Design", ContentHTML: "<p>Building layouts for every screen size.</p>", Order: 2},
			},
		},
	}
}
