package model

// Location identifies where skips are being hired
type Location struct {
	Postcode string `yaml:"postcode" json:"postcode" validate:"required"`
	Area     string `yaml:"area" json:"area" validate:"required"`
}

// RawSkipRecord is a skip as returned by the skip-lookup API
type RawSkipRecord struct {
	ID               int     `json:"id"`
	Size             int     `json:"size" validate:"gt=0,lte=100"`
	PriceBeforeVAT   float64 `json:"price_before_vat" validate:"gte=0,lte=1000000"`
	VAT              float64 `json:"vat" validate:"gte=0,lte=100"`
	HirePeriodDays   int     `json:"hire_period_days" validate:"gt=0"`
	AllowedOnRoad    bool    `json:"allowed_on_road"`
	AllowsHeavyWaste bool    `json:"allows_heavy_waste"`
}

// SkipOffer is a display-ready skip hire option
type SkipOffer struct {
	ID          string `json:"id"`
	Size        string `json:"size"`
	Price       int    `json:"price"` // VAT inclusive, whole currency units
	Period      string `json:"period"`
	Description string `json:"description"`
	Capacity    string `json:"capacity"`
}

// SelectionSummary is produced when the user continues with a selected offer
type SelectionSummary struct {
	Reference string    `json:"reference"`
	Offer     SkipOffer `json:"offer"`
	Message   string    `json:"message"`
}
