package database

import (
	"fmt"
	"os"

	"github.com/R-Nikhil-Ganesh/gittogether-backend/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect establishes a connection to the database
func Connect() {
	var err error

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}

	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}

	password := os.Getenv("DB_PASS")
	if password == "" {
		password = "postgres"
	}

	dbname := os.Getenv("DB_NAME")
	if dbname == "" {
		dbname = "gittogether"
	}

	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host, user, password, dbname, port)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	logrus.Info("Database connection established")
}

// Migrate automatically migrates the database schema
func Migrate() {
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.FriendRequest{},
		&models.FriendMessage{},
		&models.TeamPost{},
		&models.TeamRequest{},
		&models.TeamMessage{},
		&models.Event{},
	); err != nil {
		logrus.WithError(err).Fatal("Failed to migrate database schema")
	}

	// Backstop the single-active-request rules at the database, so two
	// concurrent sends cannot both slip past the handler-level checks.
	// The friend index normalizes the pair: direction does not matter.
	if err := DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_friend_request_active_pair
		ON friend_requests (LEAST(requester_id, target_id), GREATEST(requester_id, target_id))
		WHERE status IN ('pending', 'accepted')`).Error; err != nil {
		logrus.WithError(err).Fatal("Failed to create friend request pair index")
	}
	if err := DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_team_request_active
		ON team_requests (post_id, requester_id)
		WHERE status IN ('pending', 'accepted')`).Error; err != nil {
		logrus.WithError(err).Fatal("Failed to create team request index")
	}

	seedSkills()
	logrus.Info("Database migration completed")
}

// seedSkills fills the skill catalog on first boot so posts and profiles
// have something to reference before an admin curates the list.
func seedSkills() {
	var count int64
	DB.Model(&models.Skill{}).Count(&count)
	if count > 0 {
		return
	}

	skills := []models.Skill{
		{Name: "Python", Category: "Languages"},
		{Name: "JavaScript", Category: "Languages"},
		{Name: "TypeScript", Category: "Languages"},
		{Name: "Go", Category: "Languages"},
		{Name: "Java", Category: "Languages"},
		{Name: "C++", Category: "Languages"},
		{Name: "React", Category: "Frontend"},
		{Name: "Next.js", Category: "Frontend"},
		{Name: "Tailwind CSS", Category: "Frontend"},
		{Name: "UI/UX Design", Category: "Design"},
		{Name: "Figma", Category: "Design"},
		{Name: "Node.js", Category: "Backend"},
		{Name: "Express", Category: "Backend"},
		{Name: "Django", Category: "Backend"},
		{Name: "PostgreSQL", Category: "Databases"},
		{Name: "MongoDB", Category: "Databases"},
		{Name: "Docker", Category: "DevOps"},
		{Name: "Kubernetes", Category: "DevOps"},
		{Name: "Machine Learning", Category: "Data"},
		{Name: "TensorFlow", Category: "Data"},
		{Name: "Data Analysis", Category: "Data"},
	}

	if err := DB.Create(&skills).Error; err != nil {
		logrus.WithError(err).Warn("Failed to seed skill catalog")
		return
	}
	logrus.WithField("count", len(skills)).Info("Seeded skill catalog")
}
