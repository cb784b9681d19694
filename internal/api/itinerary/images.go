package itinerary

import (
	"math/rand"
	"strings"
)

// Stock image tables keyed by category, used whenever a live photo lookup is
// unavailable or fails.
var (
	cityExplorationImages = []string{
		"https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1480714378408-67cf0d13bc1b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1449824913935-59a10b8d2000?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1444723121867-7a241cacace9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1570168007204-dfb528c6958f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1517760444937-f6397edcbbcd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
	}

	cafeAtmosphereImages = []string{
		"https://images.unsplash.com/photo-1517231925375-bf2cb42917a5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1445116572660-236099ec97a0?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1600093463592-8e36ae95ef56?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
	}

	historicalLandmarksImages = []string{
		"https://images.unsplash.com/photo-1547710272-f0cd2545f838?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1552832230-c0197dd311b5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1533929736458-ca588d08c8be?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1588614959060-4d489ad1f035?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
	}

	restaurantDiningImages = []string{
		"https://images.unsplash.com/photo-1555396273-367ea4eb4db5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1414235077428-338989a2e8c0?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1559339352-11d035aa65de?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
	}

	peopleEnjoyingOutingsImages = []string{
		"https://images.unsplash.com/photo-1529156069898-49953e39b3ac?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1548199973-03cce0bbc87b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1537721664796-76f77222a5d0?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		"https://images.unsplash.com/photo-1536640712-4d4c36ff0e4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
	}
)

var imageCategories = map[string][]string{
	"city exploration":        cityExplorationImages,
	"cafe atmosphere":         cafeAtmosphereImages,
	"historical landmarks":    historicalLandmarksImages,
	"restaurant dining":       restaurantDiningImages,
	"people enjoying outings": peopleEnjoyingOutingsImages,
}

// randomImageForCategory returns a random stock image from the named
// category, defaulting to the outings set for unknown categories.
func randomImageForCategory(category string) string {
	images, ok := imageCategories[category]
	if !ok {
		images = peopleEnjoyingOutingsImages
	}
	return images[rand.Intn(len(images))]
}

// imageCategoryForActivity maps an activity type to its stock image category.
func imageCategoryForActivity(activityType string) string {
	switch strings.ToLower(activityType) {
	case "exploring":
		return "city exploration"
	case "eating":
		return "restaurant dining"
	case "historical":
		return "historical landmarks"
	case "cafe":
		return "cafe atmosphere"
	default:
		return "people enjoying outings"
	}
}
