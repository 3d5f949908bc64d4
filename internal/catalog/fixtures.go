// Package catalog holds the fixed default dataset: the products the shop
// launched with and one undetected status entry per tracked game. The seeder
// inserts these into an empty store, and the in-memory store serves them
// directly when no database is configured.
package catalog

import (
	"time"

	"github.com/elevatescripts/backend/internal/models"
)

var licenseTiers = []models.Duration{
	{Label: "1m", Months: 1, Price: 3_000_000},
	{Label: "3m", Months: 3, Price: 8_000_000},
}

// DefaultProducts returns fresh copies of the seed catalog.
func DefaultProducts() []models.Product {
	hardware := mustHardware("elevate-v1", "Elevate v.1", "Elevate v.1", 1_000_000)
	hardware.DescriptionFA = "دستگاه سخت‌افزاری برای فعال‌سازی لایسنس و اتصال به HWID."
	hardware.DescriptionEN = "Hardware unit for license activation and HWID binding."
	hardware.Images = []string{"/hardware.png"}
	hardware.Badge = "New"

	vmp := mustLicense("vmp-license", "لایسنس VMP — ESP + Aimbot", "VMP License — ESP + Aimbot", models.GameVMP)
	vmp.Images = []string{"/vmp.png"}
	vmp.Badge = "Best Value"

	cs2 := mustLicense("cs2-license", "لایسنس CS2 — ESP + Aimbot", "CS2 License — ESP + Aimbot", models.GameCS2)
	cs2.Images = []string{"/cs2.png"}

	r6 := mustLicense("r6-license", "لایسنس Rainbow Six — ESP + Aimbot", "R6 License — ESP + Aimbot", models.GameR6)
	r6.Images = []string{"/r6.png"}

	return []models.Product{*hardware, *vmp, *cs2, *r6}
}

// DefaultStatusEntries returns one undetected entry per tracked game,
// stamped now.
func DefaultStatusEntries() []models.StatusEntry {
	now := time.Now().UTC()
	entries := make([]models.StatusEntry, 0, len(models.Games))
	for _, g := range models.Games {
		entries = append(entries, models.StatusEntry{
			Game:      g,
			State:     models.StateUndetected,
			UpdatedAt: now,
		})
	}
	return entries
}

func mustHardware(slug, titleFA, titleEN string, price int64) *models.Product {
	p, err := models.NewHardwareProduct(slug, titleFA, titleEN, price)
	if err != nil {
		panic(err)
	}
	return p
}

func mustLicense(slug, titleFA, titleEN string, game models.Game) *models.Product {
	tiers := make([]models.Duration, len(licenseTiers))
	copy(tiers, licenseTiers)
	p, err := models.NewLicenseProduct(slug, titleFA, titleEN, game, tiers)
	if err != nil {
		panic(err)
	}
	p.DescriptionFA = "نیازمند دستگاه Elevate v.1 — تحویل ایمیلی تا ۱ ساعت."
	p.DescriptionEN = "Requires Elevate v.1 — Delivery within 1 hour via email."
	return p
}
