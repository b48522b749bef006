package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/workfair-app/workfair-backend/internal/models"
)

// Connect opens the Postgres connection.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")
	return db
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.SignupUser{},
		&models.Nationality{},
		&models.JobSeeker{},
		&models.Employer{},
		&models.Job{},
		&models.Application{},
		&models.EmployerProfile{},
		&models.Store{},
		&models.JobSeekerProfile{},
		&models.LearningProgress{},
		&models.Post{},
	)
}

// SeedNationalities inserts the nationality reference rows once.
func SeedNationalities(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Nationality{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	nationalities := []models.Nationality{
		{Code: "KR", Name: "대한민국 (South Korea)", PhoneCode: "+82"},
		{Code: "US", Name: "United States", PhoneCode: "+1"},
		{Code: "CA", Name: "Canada", PhoneCode: "+1"},
		{Code: "JP", Name: "日本 (Japan)", PhoneCode: "+81"},
		{Code: "CN", Name: "中国 (China)", PhoneCode: "+86"},
		{Code: "VN", Name: "Việt Nam (Vietnam)", PhoneCode: "+84"},
		{Code: "TH", Name: "ประเทศไทย (Thailand)", PhoneCode: "+66"},
		{Code: "PH", Name: "Philippines", PhoneCode: "+63"},
		{Code: "ID", Name: "Indonesia", PhoneCode: "+62"},
		{Code: "MY", Name: "Malaysia", PhoneCode: "+60"},
		{Code: "SG", Name: "Singapore", PhoneCode: "+65"},
		{Code: "TW", Name: "台灣 (Taiwan)", PhoneCode: "+886"},
		{Code: "HK", Name: "香港 (Hong Kong)", PhoneCode: "+852"},
		{Code: "MO", Name: "澳門 (Macau)", PhoneCode: "+853"},
		{Code: "IN", Name: "India", PhoneCode: "+91"},
		{Code: "BD", Name: "Bangladesh", PhoneCode: "+880"},
		{Code: "PK", Name: "Pakistan", PhoneCode: "+92"},
		{Code: "NP", Name: "Nepal", PhoneCode: "+977"},
		{Code: "LK", Name: "Sri Lanka", PhoneCode: "+94"},
		{Code: "MM", Name: "Myanmar", PhoneCode: "+95"},
		{Code: "KH", Name: "Cambodia", PhoneCode: "+855"},
		{Code: "LA", Name: "Laos", PhoneCode: "+856"},
		{Code: "MN", Name: "Mongolia", PhoneCode: "+976"},
		{Code: "KZ", Name: "Kazakhstan", PhoneCode: "+7"},
		{Code: "UZ", Name: "Uzbekistan", PhoneCode: "+998"},
		{Code: "RU", Name: "Russia", PhoneCode: "+7"},
		{Code: "AU", Name: "Australia", PhoneCode: "+61"},
		{Code: "NZ", Name: "New Zealand", PhoneCode: "+64"},
		{Code: "GB", Name: "United Kingdom", PhoneCode: "+44"},
		{Code: "FR", Name: "France", PhoneCode: "+33"},
		{Code: "DE", Name: "Germany", PhoneCode: "+49"},
	}

	if err := db.Create(&nationalities).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d nationalities", len(nationalities))
	return nil
}
