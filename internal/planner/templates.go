package planner

import (
	"strings"
	"unicode"
)

// interestTemplate is a set of day variants for one interest theme. Activity
// text may reference {destination}.
type interestTemplate struct {
	name     string
	keywords []string
	days     [][]templateActivity
}

type templateActivity struct {
	timeOfDay TimeOfDay
	clock     string
	name      string
	detail    string
	cost      string
}

const (
	templateCulture    = "culture"
	templateFood       = "food"
	templateAdventure  = "adventure"
	templateRelaxation = "relaxation"
	templateDefault    = "default"
)

// Matching order matters: the first template whose keyword appears wins.
var interestTemplates = []interestTemplate{
	{
		name:     templateCulture,
		keywords: []string{"culture", "cultural", "history", "historic", "historical", "museum", "art", "architecture", "heritage", "theatre", "theater"},
		days: [][]templateActivity{
			{
				{Morning, "09:00", "Historic centre walking tour", "Walk the historic centre of {destination} with a local guide.", "~20 per person"},
				{Afternoon, "14:00", "Main museum visit", "Spend the afternoon at the best-known museum in {destination}.", "~15 per person"},
				{Evening, "19:00", "Dinner in the old quarter", "Try a traditional restaurant in the old quarter.", "~30 per person"},
			},
			{
				{Morning, "09:30", "Landmark architecture", "Visit the signature buildings and monuments of {destination}.", "~10 per person"},
				{Afternoon, "14:00", "Galleries and local art", "Browse smaller galleries and artist studios.", "Free to ~10"},
				{Evening, "20:00", "Cultural performance", "Catch a concert, play or folk show.", "~35 per person"},
			},
			{
				{Morning, "10:00", "Heritage site", "Explore a heritage site or historic district near {destination}.", "~12 per person"},
				{Afternoon, "14:30", "History museum", "Learn how {destination} grew at the city or regional history museum.", "~10 per person"},
				{Evening, "19:30", "Evening stroll", "Walk the illuminated landmarks after dark.", "Free"},
			},
		},
	},
	{
		name:     templateFood,
		keywords: []string{"food", "foodie", "cuisine", "culinary", "dining", "restaurant", "eat", "wine", "street food"},
		days: [][]templateActivity{
			{
				{Morning, "09:00", "Local market breakfast", "Start at the central food market of {destination}.", "~10 per person"},
				{Afternoon, "13:00", "Street food tasting", "Sample regional street food specialities.", "~15 per person"},
				{Evening, "19:30", "Signature dinner", "Book a well-reviewed restaurant serving local dishes.", "~40 per person"},
			},
			{
				{Morning, "10:00", "Cooking class", "Learn to cook a classic dish of {destination}.", "~60 per person"},
				{Afternoon, "15:00", "Cafe and bakery crawl", "Visit a few of the favourite cafes and bakeries.", "~15 per person"},
				{Evening, "20:00", "Food hall evening", "Graze at a food hall or night market.", "~25 per person"},
			},
			{
				{Morning, "09:30", "Speciality producers", "Visit a producer of a regional speciality (cheese, coffee, tea or wine).", "~20 per person"},
				{Afternoon, "13:30", "Neighbourhood lunch", "Eat where locals eat in a residential neighbourhood.", "~15 per person"},
				{Evening, "19:00", "Tasting menu", "Finish with a tasting menu or a guided food tour.", "~50 per person"},
			},
		},
	},
	{
		name:     templateAdventure,
		keywords: []string{"adventure", "hiking", "hike", "outdoor", "trek", "trekking", "climb", "climbing", "kayak", "kayaking", "sport", "nature"},
		days: [][]templateActivity{
			{
				{Morning, "07:30", "Scenic hike", "Take a half-day hike on a popular trail near {destination}.", "Free to ~10"},
				{Afternoon, "14:00", "Outdoor activity", "Try kayaking, cycling or climbing with a licensed operator.", "~45 per person"},
				{Evening, "19:00", "Hearty dinner", "Refuel at a casual local restaurant.", "~25 per person"},
			},
			{
				{Morning, "08:00", "Guided nature excursion", "Join a guided excursion to a natural landmark.", "~50 per person"},
				{Afternoon, "14:30", "Viewpoint", "Climb to the best viewpoint over {destination}.", "Free"},
				{Evening, "19:30", "Rest and recover", "Relax with an early dinner and plan the next day.", "~20 per person"},
			},
			{
				{Morning, "08:30", "Bike tour", "Rent bikes and ride the main cycle routes.", "~20 per person"},
				{Afternoon, "13:30", "Water activity", "Swim, paddle or take a boat trip.", "~30 per person"},
				{Evening, "19:00", "Sunset spot", "Watch the sunset from an open-air spot.", "Free"},
			},
		},
	},
	{
		name:     templateRelaxation,
		keywords: []string{"relax", "relaxing", "relaxation", "spa", "beach", "wellness", "slow", "yoga", "leisure"},
		days: [][]templateActivity{
			{
				{Morning, "09:30", "Slow breakfast", "Enjoy a long breakfast at a quiet cafe in {destination}.", "~12 per person"},
				{Afternoon, "14:00", "Spa or beach time", "Unwind at a spa, thermal bath or beach.", "~40 per person"},
				{Evening, "19:30", "Sunset dinner", "Dinner with a view.", "~35 per person"},
			},
			{
				{Morning, "10:00", "Park or garden", "Stroll through the most peaceful park or garden.", "Free"},
				{Afternoon, "14:30", "Leisure time", "Free afternoon for reading, shopping or a nap.", "Free"},
				{Evening, "19:00", "Easy evening", "Casual dinner close to your accommodation.", "~25 per person"},
			},
			{
				{Morning, "08:30", "Morning yoga or swim", "Start gently with yoga or a swim.", "~15 per person"},
				{Afternoon, "13:00", "Scenic lunch", "Long lunch at a scenic spot near {destination}.", "~25 per person"},
				{Evening, "18:30", "Massage", "Book a massage before a quiet night in.", "~50 per person"},
			},
		},
	},
}

var defaultTemplate = interestTemplate{
	name: templateDefault,
	days: [][]templateActivity{
		{
			{Morning, "09:00", "City highlights", "See the main sights of {destination}.", "~15 per person"},
			{Afternoon, "14:00", "Local neighbourhood", "Explore a lively neighbourhood on foot.", "Free"},
			{Evening, "19:00", "Local dinner", "Dinner at a popular local restaurant.", "~30 per person"},
		},
		{
			{Morning, "09:30", "Markets and shops", "Browse the markets and independent shops.", "Free"},
			{Afternoon, "14:00", "Top-rated attraction", "Visit one of the top-rated attractions in {destination}.", "~20 per person"},
			{Evening, "19:30", "Evening walk", "Walk the waterfront or main square after dinner.", "Free"},
		},
		{
			{Morning, "10:00", "Day trip or hidden gem", "Take a short trip to a nearby spot or a lesser-known sight.", "~25 per person"},
			{Afternoon, "15:00", "Free time", "Revisit a favourite place or shop for souvenirs.", "Varies"},
			{Evening, "19:00", "Farewell-style dinner", "Try one more regional dish.", "~35 per person"},
		},
	},
}

// selectTemplate picks the first template with a keyword among the words of
// text. Keywords match whole words, plurals included.
func selectTemplate(text string) interestTemplate {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return defaultTemplate
	}
	for _, t := range interestTemplates {
		for _, kw := range t.keywords {
			if containsPhrase(words, strings.Fields(kw)) {
				return t
			}
		}
	}
	return defaultTemplate
}

func containsPhrase(words, phrase []string) bool {
	for i := 0; i+len(phrase) <= len(words); i++ {
		match := true
		for j, p := range phrase {
			if !sameWord(words[i+j], p) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func sameWord(word, keyword string) bool {
	return word == keyword || word == keyword+"s" || word == keyword+"es"
}
