// Package catalog holds the static content of the cat page: the hero
// images, the breed cards, the care tips and the overview copy.
//
// The content is fixed at build time. Accessors hand out copies so no
// caller can mutate the package data.
package catalog

import (
	"errors"
	"fmt"
)

// IconTag identifies a glyph drawn next to a breed name or badge.
type IconTag int

const (
	IconBlue IconTag = iota
	IconOrange
	IconGray
	IconYellow
	IconHeart
	IconPaw
	IconInfo
)

func (i IconTag) String() string {
	switch i {
	case IconBlue:
		return "blue"
	case IconOrange:
		return "orange"
	case IconGray:
		return "gray"
	case IconYellow:
		return "yellow"
	case IconHeart:
		return "heart"
	case IconPaw:
		return "paw"
	case IconInfo:
		return "info"
	default:
		return fmt.Sprintf("icon(%d)", int(i))
	}
}

// MinRating and MaxRating bound Breed.Rating.
const (
	MinRating = 1
	MaxRating = 5
)

// Breed is one card on the Breeds panel.
type Breed struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        IconTag `json:"icon"`
	// Rating is the exact number of stars shown for the breed.
	Rating int `json:"rating"`
}

// Badge is a trait chip on the Overview panel.
type Badge struct {
	Label string  `json:"label"`
	Icon  IconTag `json:"icon"`
}

// Overview is the copy of the Overview panel.
type Overview struct {
	Heading string  `json:"heading"`
	Body    string  `json:"body"`
	Badges  []Badge `json:"badges"`
}

// Hero is the caption laid over the rotating image.
type Hero struct {
	Headline string `json:"headline"`
	Subtitle string `json:"subtitle"`
}

// Content bundles everything the view layer reads.
type Content struct {
	Title    string   `json:"title"`
	Hero     Hero     `json:"hero"`
	Images   []string `json:"images"`
	Overview Overview `json:"overview"`
	Breeds   []Breed  `json:"breeds"`
	CareTips []string `json:"care_tips"`
}

var (
	ErrNoImages         = errors.New("catalog: image list is empty")
	ErrRatingOutOfRange = errors.New("catalog: breed rating out of range")
	ErrEmptyBreedName   = errors.New("catalog: breed name is empty")
)

var images = []string{
	"https://upload.wikimedia.org/wikipedia/commons/thumb/3/3a/Cat03.jpg/1200px-Cat03.jpg",
	"https://upload.wikimedia.org/wikipedia/commons/thumb/4/4d/Cat_November_2010-1a.jpg/1200px-Cat_November_2010-1a.jpg",
	"https://upload.wikimedia.org/wikipedia/commons/thumb/b/bb/Kittyply_edit1.jpg/1200px-Kittyply_edit1.jpg",
}

var breeds = []Breed{
	{
		Name:        "Siamese",
		Description: "Known for their distinctive color points and blue eyes.",
		Icon:        IconBlue,
		Rating:      5,
	},
	{
		Name:        "Maine Coon",
		Description: "One of the largest domestic cat breeds, known for their intelligence and playful personality.",
		Icon:        IconOrange,
		Rating:      4,
	},
	{
		Name:        "Persian",
		Description: "Recognized for their long fur and flat faces.",
		Icon:        IconGray,
		Rating:      4,
	},
	{
		Name:        "Bengal",
		Description: "Known for their wild appearance and energetic personality.",
		Icon:        IconYellow,
		Rating:      5,
	},
}

var careTips = []string{
	"Provide a balanced diet suitable for your cat's age and health",
	"Ensure fresh water is always available",
	"Regular grooming to keep their coat healthy",
	"Schedule regular vet check-ups",
	"Offer plenty of playtime and mental stimulation",
}

const overviewBody = "Cats are fascinating creatures that have been domesticated for thousands of years. " +
	"They are known for their independence, agility, and affectionate nature. " +
	"With their playful antics and soothing purrs, cats have become beloved companions " +
	"in millions of households worldwide."

var badges = []Badge{
	{Label: "Affectionate", Icon: IconHeart},
	{Label: "Agile", Icon: IconPaw},
	{Label: "Independent", Icon: IconInfo},
}

// Images returns the ordered hero image URLs.
func Images() []string {
	return append([]string(nil), images...)
}

// Breeds returns the breed cards in display order.
func Breeds() []Breed {
	return append([]Breed(nil), breeds...)
}

// CareTips returns the care tips in display order.
func CareTips() []string {
	return append([]string(nil), careTips...)
}

// Default returns the full page content.
func Default() Content {
	return Content{
		Title: "All About Cats",
		Hero: Hero{
			Headline: "Discover the World of Cats",
			Subtitle: "Explore different breeds, care tips, and more!",
		},
		Images: Images(),
		Overview: Overview{
			Heading: "Cat Overview",
			Body:    overviewBody,
			Badges:  append([]Badge(nil), badges...),
		},
		Breeds:   Breeds(),
		CareTips: CareTips(),
	}
}

// Validate checks the content invariants the rest of the program relies on.
func Validate(c Content) error {
	if len(c.Images) == 0 {
		return ErrNoImages
	}
	for i, b := range c.Breeds {
		if b.Name == "" {
			return fmt.Errorf("breed %d: %w", i, ErrEmptyBreedName)
		}
		if b.Rating < MinRating || b.Rating > MaxRating {
			return fmt.Errorf("breed %q rating %d: %w", b.Name, b.Rating, ErrRatingOutOfRange)
		}
	}
	return nil
}
