package main

import (
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"campusconnect/eligibility-engine/internal/config"
	"campusconnect/eligibility-engine/internal/models"
	"campusconnect/eligibility-engine/internal/repositories"
)

type seedFile struct {
	Opportunities []struct {
		Title             string   `yaml:"title"`
		Organization      string   `yaml:"organization"`
		Category          string   `yaml:"category"`
		RequiredSkills    []string `yaml:"required_skills"`
		MinAcademicMetric *float64 `yaml:"min_academic_metric"`
	} `yaml:"opportunities"`
}

func main() {
	log.Println("🚀 Starting opportunity catalog seeding...")

	path := "./configs/opportunities.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file %s: %v", path, err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		log.Fatalf("❌ Failed to parse seed file: %v", err)
	}

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	oppRepo := repositories.NewOpportunityRepository(db)

	successCount := 0
	failCount := 0

	for _, entry := range seed.Opportunities {
		log.Printf("\n📄 Seeding: %s", entry.Title)
		log.Printf("   Organization: %s", entry.Organization)
		log.Printf("   Skills: %s", strings.Join(entry.RequiredSkills, ", "))

		category := models.OpportunityCategory(entry.Category)
		if entry.Category == "" {
			category = models.CategoryJob
		}
		if !models.ValidCategory(category) {
			log.Printf("   ⚠️  Unknown category %q, skipping...", entry.Category)
			failCount++
			continue
		}

		opportunity := &models.Opportunity{
			ID:                uuid.New(),
			Title:             entry.Title,
			Organization:      entry.Organization,
			Category:          category,
			RequiredSkills:    entry.RequiredSkills,
			MinAcademicMetric: entry.MinAcademicMetric,
		}

		if err := oppRepo.Create(opportunity); err != nil {
			log.Printf("   ❌ Failed to create opportunity: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Created %s", opportunity.ID)
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Seeding Summary:")
	log.Printf("   ✅ Successful: %d opportunities", successCount)
	log.Printf("   ❌ Failed: %d opportunities", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}

	log.Println("✅ All opportunities seeded successfully!")
}
