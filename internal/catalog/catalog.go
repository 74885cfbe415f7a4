package catalog

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"busbuddy/internal/domain"
	"busbuddy/internal/utils"
)

// SearchParams is the query the catalog answers. The catalog is a stand-in
// for a real inventory service and fabricates its results in memory.
type SearchParams struct {
	Source      string `json:"source" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Passengers  int    `json:"passengers"`
}

var operators = []string{
	"Sharma Travels", "Orange Tours", "VRL Travels", "Neeta Deluxe",
	"Parveen Roadways", "KPN Express", "Zingbus", "IntrCity SmartBus",
	"Laxmi Holidays", "Royal Cruiser",
}

var busTypes = []string{
	"AC Sleeper (2+2)",
	"Non-AC Sleeper (2+2)",
	"AC Seater (3+2)",
	"Non-AC Seater (3+2)",
	"Volvo AC Seater",
}

var amenityPool = []string{
	"WiFi", "Charging Point", "Water Bottle", "Blanket", "Reading Light",
	"Live Tracking", "Emergency Contact", "Snacks", "CCTV",
}

// Search fabricates between 4 and 8 buses for the route. Results are
// deterministic per (source, destination, date): re-running the same
// search never reshuffles listings. Missing source or destination yields
// no results.
func Search(params SearchParams) []domain.Bus {
	src := utils.NormalizeSpace(params.Source)
	dst := utils.NormalizeSpace(params.Destination)
	date := strings.TrimSpace(params.Date)
	if src == "" || dst == "" || strings.EqualFold(src, dst) {
		return nil
	}

	rng := rand.New(rand.NewSource(querySeed(src, dst, date)))
	count := 4 + rng.Intn(5)

	buses := make([]domain.Bus, 0, count)
	for i := 0; i < count; i++ {
		busType := busTypes[rng.Intn(len(busTypes))]

		depHour := 6 + rng.Intn(17) // 06:00 .. 22:00
		depMin := 15 * rng.Intn(4)
		durMin := 240 + 30*rng.Intn(17) // 4h .. 12h in 30m steps

		price := basePrice(busType) + 50*int64(rng.Intn(10))

		buses = append(buses, domain.Bus{
			ID:             querySeed(src, dst, date, strconv.Itoa(i)),
			Name:           operators[rng.Intn(len(operators))],
			Type:           busType,
			Source:         src,
			Destination:    dst,
			Date:           date,
			DepartureTime:  fmt.Sprintf("%02d:%02d", depHour, depMin),
			ArrivalTime:    arrivalTime(depHour, depMin, durMin),
			Duration:       fmt.Sprintf("%dh %02dm", durMin/60, durMin%60),
			Price:          price,
			Rating:         float64(30+rng.Intn(20)) / 10, // 3.0 .. 4.9
			Amenities:      pickAmenities(rng),
			AvailableSeats: 5 + rng.Intn(36),
		})
	}
	return buses
}

// SortBuses orders a copy of buses by option: price, departure, duration
// or rating (rating descends, the rest ascend). Unknown options leave the
// order untouched.
func SortBuses(buses []domain.Bus, option string) []domain.Bus {
	out := make([]domain.Bus, len(buses))
	copy(out, buses)
	switch option {
	case "price":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "departure":
		sort.SliceStable(out, func(i, j int) bool { return out[i].DepartureTime < out[j].DepartureTime })
	case "duration":
		sort.SliceStable(out, func(i, j int) bool { return durationMinutes(out[i].Duration) < durationMinutes(out[j].Duration) })
	case "rating":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

// Filter narrows search results. Zero values mean "no constraint".
type Filter struct {
	BusType   string  `json:"busType"`
	MaxPrice  int64   `json:"maxPrice"`
	MinRating float64 `json:"minRating"`
}

// FilterBuses keeps buses satisfying every set constraint.
func FilterBuses(buses []domain.Bus, f Filter) []domain.Bus {
	out := make([]domain.Bus, 0, len(buses))
	for _, b := range buses {
		if f.BusType != "" && !strings.Contains(b.Type, f.BusType) {
			continue
		}
		if f.MaxPrice > 0 && b.Price > f.MaxPrice {
			continue
		}
		if f.MinRating > 0 && b.Rating < f.MinRating {
			continue
		}
		out = append(out, b)
	}
	return out
}

// querySeed folds the query parts into a 63-bit FNV hash. Bus IDs are
// built from the same hash with the result index appended, so distinct
// routes keep distinct ID spaces and the seat-map cache never serves one
// route's layout for another.
func querySeed(parts ...string) int64 {
	h := fnv.New64a()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{'|'})
		}
		h.Write([]byte(strings.ToLower(strings.TrimSpace(p))))
	}
	return int64(h.Sum64() & 0x7fffffffffffffff)
}

func basePrice(busType string) int64 {
	switch {
	case strings.HasPrefix(busType, "Volvo"):
		return 900
	case strings.HasPrefix(busType, "AC Sleeper"):
		return 800
	case strings.HasPrefix(busType, "Non-AC Sleeper"):
		return 600
	case strings.HasPrefix(busType, "AC Seater"):
		return 550
	default:
		return 400
	}
}

func arrivalTime(depHour, depMin, durMin int) string {
	total := depHour*60 + depMin + durMin
	return fmt.Sprintf("%02d:%02d", (total/60)%24, total%60)
}

func pickAmenities(rng *rand.Rand) []string {
	n := 3 + rng.Intn(4)
	perm := rng.Perm(len(amenityPool))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, amenityPool[idx])
	}
	sort.Strings(out)
	return out
}

func durationMinutes(d string) int {
	var h, m int
	fmt.Sscanf(d, "%dh %dm", &h, &m)
	return h*60 + m
}
