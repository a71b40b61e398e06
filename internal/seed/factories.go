// Package seed provides the built-in catalog plus fake demo data for development and testing.
package seed

import (
	"fmt"
	"time"

	"toolverse/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

var demoCategories = []string{
	"Text & Writing",
	"Image Generation",
	"Code Generation",
	"Music & Audio",
	"Video Creation",
	"Productivity",
	"Data Analysis",
}

var demoSuffixes = []string{"AI", "GPT", "Studio", "Copilot", "Lab", "Forge"}

// Factory builds fake catalog entities. The same seed yields the same entities.
type Factory struct {
	faker *gofakeit.Faker
	now   time.Time
}

// NewFactory creates a Factory. A zero seed picks a random one.
func NewFactory(seed int64, now time.Time) *Factory {
	return &Factory{faker: gofakeit.New(seed), now: now}
}

// BuildTool constructs a demo tool without persisting it. Demo ids are prefixed with "demo-".
func (f *Factory) BuildTool(overrides ...func(*models.Tool)) *models.Tool {
	name := fmt.Sprintf("%s %s", f.faker.AppName(), f.faker.RandomString(demoSuffixes))
	short := f.faker.Sentence(8)
	pricing := models.PricingTiers[f.faker.Number(0, len(models.PricingTiers)-1)]

	tool := &models.Tool{
		ID:               "demo-" + f.faker.UUID(),
		Name:             name,
		Description:      short + " " + f.faker.Paragraph(1, 3, 12, " "),
		ShortDescription: short,
		Category:         f.faker.RandomString(demoCategories),
		Pricing:          pricing,
		Website:          "https://" + f.faker.DomainName(),
		ImageURL:         ptr(fmt.Sprintf("https://picsum.photos/seed/%s/400/200", f.faker.UUID())),
		Rating:           float64(f.faker.Number(30, 50)) / 10,
		Featured:         f.faker.Number(1, 10) == 1,
		// realistic created_at spread over the last 90 days
		CreatedAt: f.now.Add(-time.Duration(f.faker.Number(0, 90*24)) * time.Hour),
	}

	switch pricing {
	case models.PricingFree:
		tool.Price = ptr("Free")
	case models.PricingFreemium:
		tool.Price = ptr(fmt.Sprintf("Free / $%d/month", f.faker.Number(5, 40)))
	case models.PricingPaid:
		tool.Price = ptr(fmt.Sprintf("$%d/month", f.faker.Number(5, 99)))
	case models.PricingOneTime:
		tool.Price = ptr(fmt.Sprintf("$%d once", f.faker.Number(19, 299)))
	}

	for _, override := range overrides {
		override(tool)
	}
	return tool
}

// BuildTools constructs n demo tools.
func (f *Factory) BuildTools(n int) []*models.Tool {
	out := make([]*models.Tool, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, f.BuildTool())
	}
	return out
}
