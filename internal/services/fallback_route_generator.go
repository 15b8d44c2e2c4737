package services

import (
	"fmt"

	"routeplanner/internal/models/response_models"
	"routeplanner/pkg/utils"
)

type variantDef struct {
	id    string
	name  string
	theme RouteTheme
}

// Fallback variants are always produced in this order.
var fallbackVariants = []variantDef{
	{id: "a", name: "方案 A（文化优先）", theme: ThemeCulture},
	{id: "b", name: "方案 B（自然优先）", theme: ThemeNature},
	{id: "c", name: "方案 C（轻松休闲）", theme: ThemeRelax},
}

const transferMinutes = 30

type FallbackRouteGeneratorInterface interface {
	Generate(destination string, startDate utils.Date, dayCount int) []response_models.PlanVariant
}

type FallbackRouteGenerator struct {
	newID func() string
}

func NewFallbackRouteGenerator() FallbackRouteGeneratorInterface {
	return &FallbackRouteGenerator{newID: utils.ShortID}
}

// Generate is deterministic in every field except item ids.
func (f *FallbackRouteGenerator) Generate(destination string, startDate utils.Date, dayCount int) []response_models.PlanVariant {
	pools := poolsForDestination(destination)

	variants := make([]response_models.PlanVariant, 0, len(fallbackVariants))
	for _, def := range fallbackVariants {
		variants = append(variants, response_models.PlanVariant{
			ID:   def.id,
			Name: def.name,
			Days: f.buildDays(pools.forTheme(def.theme), startDate, dayCount),
		})
	}
	return variants
}

func (f *FallbackRouteGenerator) buildDays(pool []poiSeed, startDate utils.Date, dayCount int) []response_models.DayPlan {
	days := make([]response_models.DayPlan, 0, dayCount)

	for i := 0; i < dayCount; i++ {
		n := 2 + i%2
		items := make([]response_models.POIItem, 0, n)
		totalStay := 0

		for j := 0; j < n; j++ {
			// (i*2+j) mod len cycles short pools; generated output depends on this exact index.
			row := pool[(i*2+j)%len(pool)]
			tags := make([]string, len(row.tags))
			copy(tags, row.tags)

			items = append(items, response_models.POIItem{
				ID:          f.newID(),
				Name:        row.name,
				Image:       fmt.Sprintf("https://picsum.photos/seed/poi%d/320/180", i*10+j),
				StayMinutes: row.stay,
				Tags:        tags,
			})
			totalStay += row.stay
		}

		days = append(days, response_models.DayPlan{
			DayIndex:        i + 1,
			Date:            startDate.AddDays(i),
			DurationMinutes: totalStay + transferMinutes*(len(items)-1),
			DistanceKm:      12 + 8*i,
			CommuteMinutes:  20 + 10*i,
			Items:           items,
		})
	}

	return days
}
