// Команда seed наполняет каталог демо-набором провайдеров.
// Все записи создаются в статусе pending - одобрение за админом.
package main

import (
	"log"

	"serveeny_backend/internal/auth"
	"serveeny_backend/internal/config"
	"serveeny_backend/internal/database"
	"serveeny_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var providers = []models.Provider{
	{
		Name:         "Ahmed Ben Salem",
		Email:        "ahmed@example.com",
		Phone:        "+216 98 765 432",
		Whatsapp:     "+21698765432",
		Photo:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=200&fit=crop&crop=face",
		Category:     "electricity",
		Location:     "Tunis, La Marsa",
		Description:  "Électricien professionnel avec 15 ans d'expérience. Installation, dépannage, mise aux normes.",
		Services:     "Installation électrique, Dépannage, Mise aux normes, Tableau électrique",
		Availability: "Lun-Sam 8h-18h",
		IsAvailable:  true,
		IsPremium:    true,
		PriceRange:   "50-150 DT",
		Rating:       4.8,
		ReviewCount:  124,
	},
	{
		Name:         "Fatma Khelifi",
		Email:        "fatma@example.com",
		Phone:        "+216 55 123 456",
		Whatsapp:     "+21655123456",
		Photo:        "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200&h=200&fit=crop&crop=face",
		Category:     "cleaning",
		Location:     "Tunis, Lac 2",
		Description:  "Service de nettoyage professionnel pour maisons et bureaux. Produits écologiques.",
		Services:     "Nettoyage maison, Nettoyage bureau, Nettoyage après travaux, Repassage",
		Availability: "Tous les jours 7h-20h",
		IsAvailable:  true,
		IsPremium:    false,
		PriceRange:   "30-80 DT",
		Rating:       4.9,
		ReviewCount:  89,
	},
	{
		Name:         "Mohamed Trabelsi",
		Email:        "mohamed@example.com",
		Phone:        "+216 22 987 654",
		Whatsapp:     "+21622987654",
		Photo:        "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200&h=200&fit=crop&crop=face",
		Category:     "plumbing",
		Location:     "Sousse, Hammam Sousse",
		Description:  "Plombier qualifié. Réparation, installation sanitaire, chauffage.",
		Services:     "Réparation fuite, Installation sanitaire, Chauffe-eau, Débouchage",
		Availability: "Lun-Ven 8h-17h",
		IsAvailable:  false,
		IsPremium:    true,
		PriceRange:   "40-120 DT",
		Rating:       4.7,
		ReviewCount:  156,
	},
	{
		Name:         "Leila Mansouri",
		Email:        "leila@example.com",
		Phone:        "+216 99 456 789",
		Whatsapp:     "+21699456789",
		Photo:        "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=200&h=200&fit=crop&crop=face",
		Category:     "beauty",
		Location:     "Tunis, Menzah 6",
		Description:  "Esthéticienne diplômée. Soins visage, manucure, maquillage, coiffure à domicile.",
		Services:     "Soins visage, Manucure/Pédicure, Maquillage, Coiffure",
		Availability: "Sur rendez-vous",
		IsAvailable:  true,
		IsPremium:    true,
		PriceRange:   "25-100 DT",
		Rating:       5.0,
		ReviewCount:  203,
	},
	{
		Name:         "Karim Bouazizi",
		Email:        "karim@example.com",
		Phone:        "+216 50 321 987",
		Whatsapp:     "+21650321987",
		Photo:        "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=200&h=200&fit=crop&crop=face",
		Category:     "it",
		Location:     "Sfax, Centre ville",
		Description:  "Technicien informatique. Réparation PC/Mac, installation réseau, récupération données.",
		Services:     "Réparation PC, Installation réseau, Récupération données, Formation",
		Availability: "Lun-Sam 9h-19h",
		IsAvailable:  true,
		IsPremium:    false,
		PriceRange:   "35-150 DT",
		Rating:       4.6,
		ReviewCount:  67,
	},
	{
		Name:         "Sonia Ben Ali",
		Email:        "sonia@example.com",
		Phone:        "+216 27 654 321",
		Whatsapp:     "+21627654321",
		Photo:        "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200&h=200&fit=crop&crop=face",
		Category:     "gardening",
		Location:     "Tunis, Carthage",
		Description:  "Paysagiste professionnelle. Création jardins, entretien espaces verts, arrosage automatique.",
		Services:     "Création jardin, Entretien, Arrosage automatique, Taille arbres",
		Availability: "Lun-Ven 7h-16h",
		IsAvailable:  true,
		IsPremium:    false,
		PriceRange:   "50-200 DT",
		Rating:       4.8,
		ReviewCount:  45,
	},
}

const seedPassword = "password123"

func main() {
	config.LoadConfig()
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Чистим существующий каталог перед сидом
	if err := db.Exec("DELETE FROM providers").Error; err != nil {
		log.Fatalf("Failed to clear providers: %v", err)
	}
	log.Println("Cleared existing providers")

	hashedPassword, err := auth.HashPassword(seedPassword)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	for i := range providers {
		provider := providers[i]
		provider.PasswordHash = hashedPassword
		provider.Status = models.ProviderStatusPending

		if err := db.Create(&provider).Error; err != nil {
			log.Fatalf("Failed to create provider %s: %v", provider.Name, err)
		}
		log.Printf("Created provider: %s", provider.Name)
	}

	log.Println("Database seeded successfully!")
}
