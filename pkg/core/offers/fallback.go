package offers

import "github.com/jakechorley/skip-hire/pkg/core/model"

var fallbackOffers = []model.SkipOffer{
	{
		ID:          "skip-4",
		Size:        "4",
		Price:       165,
		Period:      "week",
		Description: "Perfect for small home clearances and garden waste",
		Capacity:    "30-40 bin bags",
	},
	{
		ID:          "skip-6",
		Size:        "6",
		Price:       185,
		Period:      "week",
		Description: "Ideal for bathroom renovations and small construction projects",
		Capacity:    "50-60 bin bags",
	},
	{
		ID:          "skip-8",
		Size:        "8",
		Price:       205,
		Period:      "week",
		Description: "Great for kitchen renovations and medium construction waste",
		Capacity:    "70-80 bin bags",
	},
	{
		ID:          "skip-12",
		Size:        "12",
		Price:       245,
		Period:      "week",
		Description: "Perfect for large house clearances and major renovations",
		Capacity:    "100-120 bin bags",
	},
	{
		ID:          "skip-16",
		Size:        "16",
		Price:       285,
		Period:      "week",
		Description: "Ideal for commercial projects and large construction sites",
		Capacity:    "140-160 bin bags",
	},
	{
		ID:          "skip-20",
		Size:        "20",
		Price:       325,
		Period:      "week",
		Description: "Best for major commercial waste and large-scale projects",
		Capacity:    "180-200 bin bags",
	},
}

// Fallback returns a fresh copy of the built-in offers shown when the skip API is unavailable
func Fallback() []model.SkipOffer {
	result := make([]model.SkipOffer, len(fallbackOffers))
	copy(result, fallbackOffers)
	return result
}

// FallbackFunc adapts a function to the services.FallbackProvider interface
type FallbackFunc func() []model.SkipOffer

// FallbackOffers calls f
func (f FallbackFunc) FallbackOffers() []model.SkipOffer {
	return f()
}
