package catalog

import "strings"

// indianCities is the autocomplete directory. Kept small but covering the
// popular routes below.
var indianCities = []string{
	"Agra", "Ahmedabad", "Amritsar", "Bangalore", "Bhopal", "Chandigarh",
	"Chennai", "Coimbatore", "Dehradun", "Delhi", "Goa", "Guwahati",
	"Hyderabad", "Indore", "Jaipur", "Jodhpur", "Kanpur", "Kochi",
	"Kolkata", "Lucknow", "Ludhiana", "Madurai", "Mangalore", "Mumbai",
	"Mysore", "Nagpur", "Nashik", "Patna", "Pondicherry", "Pune",
	"Raipur", "Rajkot", "Ranchi", "Shimla", "Surat", "Thiruvananthapuram",
	"Tirupati", "Udaipur", "Vadodara", "Varanasi", "Vijayawada",
	"Visakhapatnam",
}

// Route is a popular city pair surfaced on the landing page.
type Route struct {
	From string `json:"from"`
	To   string `json:"to"`
}

var popularRoutes = []Route{
	{"Delhi", "Jaipur"},
	{"Mumbai", "Pune"},
	{"Bangalore", "Chennai"},
	{"Hyderabad", "Bangalore"},
	{"Delhi", "Chandigarh"},
	{"Mumbai", "Goa"},
}

// Cities returns the full city directory.
func Cities() []string {
	out := make([]string, len(indianCities))
	copy(out, indianCities)
	return out
}

// PopularRoutes returns the landing-page route shortcuts.
func PopularRoutes() []Route {
	out := make([]Route, len(popularRoutes))
	copy(out, popularRoutes)
	return out
}

// SuggestCities returns up to limit cities matching q, case-insensitive
// substring match. Empty q yields nothing.
func SuggestCities(q string, limit int) []string {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" || limit <= 0 {
		return nil
	}
	var out []string
	for _, city := range indianCities {
		if strings.Contains(strings.ToLower(city), q) {
			out = append(out, city)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
