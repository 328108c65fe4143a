package database

import (
	"log"
	"os"

	"github.com/Librity/gympoint-back-end/internal/domain/helporders"
	"github.com/Librity/gympoint-back-end/internal/domain/memberships"
	"github.com/Librity/gympoint-back-end/internal/domain/plans"
	"github.com/Librity/gympoint-back-end/internal/domain/students"
	"github.com/Librity/gympoint-back-end/internal/domain/users"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	if err := Seed(DB); err != nil {
		log.Fatal("❌ Seed error:", err)
	}

	log.Println("✅ Connected and migrated successfully")
}

// Migrate runs the schema migration for every domain model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&students.Student{},
		&plans.Plan{},
		&memberships.Membership{},
		&helporders.HelpOrder{},
	)
}

// Seed inserts the plan catalog and the admin account when missing.
func Seed(db *gorm.DB) error {
	catalog := []plans.Plan{
		{Title: "Silver", Symbol: "Ag", Duration: 1, Price: 129.99},
		{Title: "Gold", Symbol: "Au", Duration: 3, Price: 109.99},
		{Title: "Diamond", Symbol: "Di", Duration: 6, Price: 89.99},
	}
	for _, plan := range catalog {
		var existing plans.Plan
		if err := db.Where("title = ?", plan.Title).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&plan).Error; err != nil {
			return err
		}
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var admin users.User
	if err := db.Where("email = ?", adminEmail).First(&admin).Error; err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&users.User{
		Name:     "GymPoint Admin",
		Email:    adminEmail,
		Password: string(hashed),
	}).Error
}
