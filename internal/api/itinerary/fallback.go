package itinerary

import (
	"fmt"
	"strings"

	"github.com/wanderday/go-hangout-itinerary/internal/types"
)

// catalogEntry is one pre-authored itinerary in the fallback catalog.
type catalogEntry struct {
	key             string
	activities      []types.ItineraryActivity
	recommendations []types.Recommendation
}

// The catalog is ordered: lookup does case-insensitive substring matching of
// the requested location against each key and the first match wins. Anything
// unrecognized resolves to the default entry, so fallback never comes back
// empty-handed.
const defaultCatalogKey = "new delhi"

var fallbackCatalog = []catalogEntry{
	{
		key: "noida",
		activities: []types.ItineraryActivity{
			{
				ID:          "act1",
				Time:        "9:00 AM",
				Title:       "Breakfast at the Sector 18 Market",
				Description: "Start the day with parathas and chai at one of the busy breakfast joints in Noida's liveliest market.",
				Location:    "Sector 18 Market, Noida",
				Price:       "₹",
				Rating:      "4.5 ★",
				TimeOfDay:   types.TimeOfDayMorning,
				Type:        "cafe",
			},
			{
				ID:          "act2",
				Time:        "10:30 AM",
				Title:       "Walk Through Okhla Bird Sanctuary",
				Description: "Spot migratory birds and enjoy a quiet morning walk along the wetlands at the edge of the Yamuna.",
				Location:    "Okhla Bird Sanctuary, Noida",
				Price:       "₹",
				Rating:      "4.4 ★",
				TimeOfDay:   types.TimeOfDayMorning,
				Type:        "exploring",
			},
			{
				ID:          "act3",
				Time:        "1:00 PM",
				Title:       "Lunch at Desi Vibes",
				Description: "Dig into rich North Indian classics at this long-standing Sector 18 favourite.",
				Location:    "Sector 18, Noida",
				Price:       "₹₹",
				Rating:      "4.6 ★",
				TimeOfDay:   types.TimeOfDayAfternoon,
				Type:        "eating",
			},
			{
				ID:          "act4",
				Time:        "3:00 PM",
				Title:       "Shop at DLF Mall of India",
				Description: "Browse one of India's largest malls, from high-street brands to the indoor snow park.",
				Location:    "Sector 18, Noida",
				Price:       "₹₹",
				Rating:      "4.5 ★",
				TimeOfDay:   types.TimeOfDayAfternoon,
				Type:        "exploring",
			},
			{
				ID:          "act5",
				Time:        "5:30 PM",
				Title:       "Evening Stroll at the Botanic Garden",
				Description: "Unwind among themed gardens and lakeside paths as the heat of the day fades.",
				Location:    "Botanic Garden, Sector 38, Noida",
				Price:       "Free",
				Rating:      "4.3 ★",
				TimeOfDay:   types.TimeOfDayEvening,
				Type:        "exploring",
			},
			{
				ID:          "act6",
				Time:        "8:00 PM",
				Title:       "Dinner at Barbeque Nation",
				Description: "Finish with a lively grill-at-the-table dinner, a reliable crowd-pleaser for groups.",
				Location:    "Sector 18, Noida",
				Price:       "₹₹",
				Rating:      "4.4 ★",
				TimeOfDay:   types.TimeOfDayEvening,
				Type:        "eating",
			},
		},
		recommendations: []types.Recommendation{
			{
				ID:          "rec1",
				Title:       "Street Food Crawl in Atta Market",
				Description: "Sample chaat, momos and kulfi through the packed lanes of Noida's oldest market.",
				Rating:      "4.6 ★",
				Duration:    "2-3 hours",
			},
			{
				ID:          "rec2",
				Title:       "Day at Worlds of Wonder",
				Description: "Rides and water slides at the amusement park next to the Great India Place mall.",
				Rating:      "4.3 ★",
				Duration:    "Full day",
			},
			{
				ID:          "rec3",
				Title:       "Trip to Akshardham Temple",
				Description: "Cross into Delhi for the sprawling temple complex, exhibitions and evening water show.",
				Rating:      "4.8 ★",
				Duration:    "Half day",
			},
		},
	},
	{
		key: defaultCatalogKey,
		activities: []types.ItineraryActivity{
			{
				ID:          "act1",
				Time:        "9:00 AM",
				Title:       "Morning Chai at Connaught Place",
				Description: "Start your day with a traditional chai and breakfast at one of the iconic cafes in this colonial-era shopping district.",
				Location:    "Connaught Place, New Delhi",
				Price:       "₹",
				Rating:      "4.6 ★",
				TimeOfDay:   types.TimeOfDayMorning,
				Type:        "cafe",
			},
			{
				ID:          "act2",
				Time:        "11:00 AM",
				Title:       "Visit Humayun's Tomb",
				Description: "Explore this UNESCO World Heritage site with its stunning Mughal architecture and beautiful gardens.",
				Location:    "Mathura Road, Nizamuddin, New Delhi",
				Price:       "₹₹",
				Rating:      "4.8 ★",
				TimeOfDay:   types.TimeOfDayMorning,
				Type:        "historical",
			},
			{
				ID:          "act3",
				Time:        "1:30 PM",
				Title:       "Lunch at Karim's",
				Description: "Enjoy authentic Mughlai cuisine at this legendary restaurant known for its kebabs and curries.",
				Location:    "16, Gali Kababian, Jama Masjid, Old Delhi",
				Price:       "₹₹",
				Rating:      "4.7 ★",
				TimeOfDay:   types.TimeOfDayAfternoon,
				Type:        "eating",
			},
			{
				ID:          "act4",
				Time:        "3:30 PM",
				Title:       "Shop at Dilli Haat",
				Description: "Browse handcrafted items, textiles, and souvenirs from across India at this open-air market.",
				Location:    "INA Market, New Delhi",
				Price:       "₹",
				Rating:      "4.5 ★",
				TimeOfDay:   types.TimeOfDayAfternoon,
				Type:        "exploring",
			},
			{
				ID:          "act5",
				Time:        "6:30 PM",
				Title:       "Sunset at India Gate",
				Description: "Watch the sunset and see the monument beautifully lit up as evening falls.",
				Location:    "Rajpath, New Delhi",
				Price:       "Free",
				Rating:      "4.9 ★",
				TimeOfDay:   types.TimeOfDayEvening,
				Type:        "historical",
			},
			{
				ID:          "act6",
				Time:        "8:00 PM",
				Title:       "Dinner at Bukhara",
				Description: "Experience one of Delhi's finest dining venues known for its Northwest Frontier cuisine and tandoori dishes.",
				Location:    "ITC Maurya, Diplomatic Enclave, Sardar Patel Marg",
				Price:       "₹₹₹",
				Rating:      "4.8 ★",
				TimeOfDay:   types.TimeOfDayEvening,
				Type:        "eating",
			},
		},
		recommendations: []types.Recommendation{
			{
				ID:          "rec1",
				Title:       "Historical Delhi Tour",
				Description: "A full-day tour covering Red Fort, Qutub Minar, and other historical monuments in Delhi.",
				Rating:      "4.7 ★",
				Duration:    "Full day",
			},
			{
				ID:          "rec2",
				Title:       "Food Walk in Old Delhi",
				Description: "Sample the best street food Delhi has to offer in the narrow lanes of Chandni Chowk.",
				Rating:      "4.9 ★",
				Duration:    "3-4 hours",
			},
			{
				ID:          "rec3",
				Title:       "Day Trip to Agra",
				Description: "Visit the magnificent Taj Mahal and Agra Fort on a day trip from Delhi.",
				Rating:      "4.8 ★",
				Duration:    "Full day",
			},
		},
	},
	{
		key: "mumbai",
		activities: []types.ItineraryActivity{
			{
				ID:          "act1",
				Time:        "8:30 AM",
				Title:       "Breakfast at Kyani & Co.",
				Description: "Bun maska and Irani chai at one of Mumbai's oldest Irani cafes.",
				Location:    "Jer Mahal, Dhobi Talao, Mumbai",
				Price:       "₹",
				Rating:      "4.5 ★",
				TimeOfDay:   types.TimeOfDayMorning,
				Type:        "cafe",
			},
			{
				ID:          "act2",
				Time:        "10:00 AM",
				Title:       "Walk the Gateway of India",
				Description: "Take in the harbour views and the grand basalt arch built during the British Raj.",
				Location:    "Apollo Bandar, Colaba, Mumbai",
				Price:       "Free",
				Rating:      "4.7 ★",
				TimeOfDay:   types.TimeOfDayMorning,
				Type:        "historical",
			},
			{
				ID:          "act3",
				Time:        "1:00 PM",
				Title:       "Lunch at Britannia & Co.",
				Description: "The berry pulao at this Ballard Estate institution is worth the queue.",
				Location:    "Wakefield House, Ballard Estate, Mumbai",
				Price:       "₹₹",
				Rating:      "4.6 ★",
				TimeOfDay:   types.TimeOfDayAfternoon,
				Type:        "eating",
			},
			{
				ID:          "act4",
				Time:        "3:30 PM",
				Title:       "Explore Kala Ghoda Art Precinct",
				Description: "Galleries, boutiques and street art in the crescent-shaped arts district.",
				Location:    "Kala Ghoda, Fort, Mumbai",
				Price:       "₹",
				Rating:      "4.5 ★",
				TimeOfDay:   types.TimeOfDayAfternoon,
				Type:        "exploring",
			},
			{
				ID:          "act5",
				Time:        "6:00 PM",
				Title:       "Sunset at Marine Drive",
				Description: "Join the evening crowd on the promenade as the Queen's Necklace lights up.",
				Location:    "Marine Drive, Mumbai",
				Price:       "Free",
				Rating:      "4.8 ★",
				TimeOfDay:   types.TimeOfDayEvening,
				Type:        "exploring",
			},
			{
				ID:          "act6",
				Time:        "8:30 PM",
				Title:       "Dinner at Trishna",
				Description: "Butter garlic crab and coastal seafood at this famed Fort restaurant.",
				Location:    "Sai Baba Marg, Kala Ghoda, Mumbai",
				Price:       "₹₹₹",
				Rating:      "4.7 ★",
				TimeOfDay:   types.TimeOfDayEvening,
				Type:        "eating",
			},
		},
		recommendations: []types.Recommendation{
			{
				ID:          "rec1",
				Title:       "Elephanta Caves Ferry Trip",
				Description: "Take the ferry from the Gateway of India to the rock-cut cave temples.",
				Rating:      "4.6 ★",
				Duration:    "Half day",
			},
			{
				ID:          "rec2",
				Title:       "Dharavi Walking Tour",
				Description: "A guided walk through the workshops and micro-industries of Dharavi.",
				Rating:      "4.8 ★",
				Duration:    "2-3 hours",
			},
			{
				ID:          "rec3",
				Title:       "Bandra Street Art Walk",
				Description: "Murals, cafes and seaside promenades in Mumbai's most laid-back suburb.",
				Rating:      "4.5 ★",
				Duration:    "2-3 hours",
			},
		},
	},
}

// fallbackItinerary returns a pre-authored itinerary for the requested
// location, personalized with the submitted preferences. It never fails:
// unrecognized locations resolve to the default catalog entry.
func fallbackItinerary(prefs types.PreferenceSelection, loc types.LocationSelection) *types.ItineraryResponse {
	needle := strings.ToLower(strings.TrimSpace(loc.Location))

	entry := lookupCatalog(needle)

	activities := make([]types.ItineraryActivity, len(entry.activities))
	for i, a := range entry.activities {
		a.Image = randomImageForCategory(imageCategoryForActivity(a.Type))
		activities[i] = a
	}

	recommendations := make([]types.Recommendation, len(entry.recommendations))
	for i, r := range entry.recommendations {
		r.Image = randomImageForCategory("historical landmarks")
		recommendations[i] = r
	}

	return &types.ItineraryResponse{
		Title:           fmt.Sprintf("%s Adventure in %s", prefs.Duration, loc.Location),
		Description:     fmt.Sprintf("Enjoy a %s itinerary exploring the best of %s with a focus on %s.", strings.ToLower(prefs.Budget), loc.Location, strings.ToLower(strings.Join(prefs.HangoutTypes, ", "))),
		Location:        loc.Location,
		Activities:      activities,
		Recommendations: recommendations,
	}
}

func lookupCatalog(needle string) catalogEntry {
	for _, entry := range fallbackCatalog {
		if strings.Contains(needle, entry.key) {
			return entry
		}
	}
	for _, entry := range fallbackCatalog {
		if entry.key == defaultCatalogKey {
			return entry
		}
	}
	// Unreachable as long as the default entry exists.
	return fallbackCatalog[0]
}
