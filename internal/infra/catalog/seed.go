package catalog

import (
	"context"
	"fmt"
	"math/rand/v2"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var seedNamespace = uuid.MustParse("6f1c1a52-3c1e-4c61-9a8e-2b0f3f7d9a10")

type landmark struct {
	params hotel.HotelParams
	rooms  int
}

var landmarks = []landmark{
	{params: hotel.HotelParams{
		Name: "The Taj Mahal Palace", City: "Mumbai", Address: "Apollo Bunder, Colaba", StarRating: 5,
		Description: "Iconic luxury hotel overlooking the Gateway of India",
		Amenities:   []string{"WiFi", "Pool", "Spa", "Restaurant", "Bar", "Valet Parking", "Concierge"},
	}, rooms: 40},
	{params: hotel.HotelParams{
		Name: "The Oberoi Grand", City: "Kolkata", Address: "15 Jawaharlal Nehru Road", StarRating: 5,
		Description: "Heritage hotel in the heart of the city",
		Amenities:   []string{"WiFi", "Pool", "Spa", "Restaurant", "Fitness Center"},
	}, rooms: 30},
	{params: hotel.HotelParams{
		Name: "Grand Hyatt Mumbai", City: "Mumbai", Address: "Off Western Express Highway, Santacruz East", StarRating: 5,
		Description: "Business and leisure hotel with an art collection",
		Amenities:   []string{"WiFi", "Pool", "Spa", "Restaurant", "Business Center"},
	}, rooms: 35},
	{params: hotel.HotelParams{
		Name: "The Leela Palace", City: "New Delhi", Address: "Diplomatic Enclave, Chanakyapuri", StarRating: 5,
		Description: "Palatial hotel near the embassies",
		Amenities:   []string{"WiFi", "Pool", "Spa", "Restaurant", "Bar", "Concierge"},
	}, rooms: 30},
	{params: hotel.HotelParams{
		Name: "Rambagh Palace", City: "Jaipur", Address: "Bhawani Singh Road", StarRating: 5,
		Description: "Former royal residence set in formal gardens",
		Amenities:   []string{"WiFi", "Pool", "Spa", "Restaurant", "Garden"},
	}, rooms: 25},
	{params: hotel.HotelParams{
		Name: "ITC Gardenia", City: "Bengaluru", Address: "1 Residency Road", StarRating: 5,
		Description: "Garden themed hotel in the central business district",
		Amenities:   []string{"WiFi", "Pool", "Spa", "Restaurant", "Fitness Center"},
	}, rooms: 30},
	{params: hotel.HotelParams{
		Name: "Fort Kochi Residency", City: "Kochi", Address: "Princess Street, Fort Kochi", StarRating: 3,
		Description: "Colonial era guesthouse close to the Chinese fishing nets",
		Amenities:   []string{"WiFi", "Restaurant", "Airport Shuttle"},
	}, rooms: 20},
	{params: hotel.HotelParams{
		Name: "Royal Orchid Central", City: "Pune", Address: "Kalyani Nagar", StarRating: 4,
		Description: "Modern business hotel near the airport",
		Amenities:   []string{"WiFi", "Restaurant", "Fitness Center", "Business Center"},
	}, rooms: 25},
}

var (
	generatedCities   = []string{"Mumbai", "New Delhi", "Bengaluru", "Chennai", "Kolkata", "Hyderabad", "Pune", "Jaipur", "Goa", "Kochi"}
	generatedPrefixes = []string{"Grand", "Royal", "Imperial", "Golden", "Silver", "Park", "Palm", "Lotus", "Heritage", "Harbour"}
	generatedSuffixes = []string{"Inn", "Residency", "Suites", "Palace", "Plaza", "Retreat", "Towers", "Lodge"}
	hotelAmenities    = []string{"WiFi", "Pool", "Spa", "Restaurant", "Bar", "Fitness Center", "Parking", "Room Service"}
	roomAmenities     = []string{"AC", "Smart TV", "Mini Bar", "Balcony", "City View", "Sea View", "WiFi", "Safe", "Coffee Machine"}
)

type SeedOptions struct {
	GeneratedHotels int
	Seed            uint64
}

// Seed loads the landmark hotels followed by GeneratedHotels generated ones.
// The same options always produce the same ids, names and prices.
func Seed(ctx context.Context, store *Store, opts SeedOptions) (int, error) {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	count := 0
	for i, lm := range landmarks {
		if err := seedHotel(ctx, store, rng, fmt.Sprintf("landmark-%d", i), lm.params, lm.rooms); err != nil {
			return count, err
		}
		count++
	}

	for i := range max(opts.GeneratedHotels, 0) {
		params := generateHotelParams(rng, i)
		if err := seedHotel(ctx, store, rng, fmt.Sprintf("generated-%d-%d", opts.Seed, i), params, 5+rng.IntN(11)); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func generateHotelParams(rng *rand.Rand, i int) hotel.HotelParams {
	city := generatedCities[rng.IntN(len(generatedCities))]
	name := fmt.Sprintf("%s %s %s %d",
		generatedPrefixes[rng.IntN(len(generatedPrefixes))],
		city,
		generatedSuffixes[rng.IntN(len(generatedSuffixes))],
		i+1)
	return hotel.HotelParams{
		Name:        name,
		City:        city,
		Address:     fmt.Sprintf("%d Main Road, %s", 1+rng.IntN(400), city),
		StarRating:  2 + rng.IntN(4),
		Description: "Comfortable stay in " + city,
		Amenities:   pick(rng, hotelAmenities, 3+rng.IntN(4)),
	}
}

func seedHotel(ctx context.Context, store *Store, rng *rand.Rand, name string, params hotel.HotelParams, roomCount int) error {
	h, err := hotel.NewHotel(uuid.NewSHA1(seedNamespace, []byte(name)), params)
	if err != nil {
		return errs.Wrapf(err, "invalid seed hotel %q", params.Name)
	}

	rooms := make([]*hotel.Room, 0, roomCount)
	for j := range roomCount {
		roomType := hotel.RoomTypes[rng.IntN(len(hotel.RoomTypes))]
		occupancy := 2
		if roomType != hotel.RoomTypeSingle {
			occupancy = 2 + rng.IntN(3)
		}
		r, err := hotel.NewRoom(
			uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("%s/room-%d", name, j))),
			h.ID(),
			hotel.RoomParams{
				RoomNumber:   fmt.Sprintf("%d%02d", j/10+1, j%10+1),
				RoomType:     roomType,
				Price:        seedPrice(rng, params.StarRating),
				MaxOccupancy: occupancy,
				Amenities:    pick(rng, roomAmenities, 4+rng.IntN(4)),
			},
		)
		if err != nil {
			return errs.Wrapf(err, "invalid seed room for %q", params.Name)
		}
		rooms = append(rooms, r)
	}

	return store.AddHotel(ctx, h, rooms)
}

func seedPrice(rng *rand.Rand, stars int) int64 {
	if stars == 5 {
		return int64(8000 + rng.IntN(17001))
	}
	return int64(3000 + rng.IntN(9001))
}

func pick(rng *rand.Rand, from []string, n int) []string {
	shuffled := append([]string(nil), from...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:min(n, len(shuffled))]
}
