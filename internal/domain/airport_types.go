package domain

// Airport category constants (OurAirports vocabulary)
const (
	CategoryLargeAirport  = "large_airport"
	CategoryMediumAirport = "medium_airport"
	CategorySmallAirport  = "small_airport"
	CategoryHeliport      = "heliport"
	CategorySeaplaneBase  = "seaplane_base"
	CategoryBalloonport   = "balloonport"
	CategoryClosed        = "closed"
)

// ValidAirportCategories returns list of valid airport categories
func ValidAirportCategories() []string {
	return []string{
		CategoryLargeAirport,
		CategoryMediumAirport,
		CategorySmallAirport,
		CategoryHeliport,
		CategorySeaplaneBase,
		CategoryBalloonport,
		CategoryClosed,
	}
}

// IsValidAirportCategory checks if category is valid
func IsValidAirportCategory(category string) bool {
	for _, c := range ValidAirportCategories() {
		if c == category {
			return true
		}
	}
	return false
}
