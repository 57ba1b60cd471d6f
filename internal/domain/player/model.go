package player

import (
	"fmt"
	"strings"
)

const (
	MinRating = 0
	MaxRating = 100
)

// Player is one rated individual from the player export.
type Player struct {
	ID          int64
	Name        string
	Nationality string
	// Club is the canonical team name, empty when the player has no club.
	Club     string
	Rating   *int
	Position string
	// Attributes holds every supplementary source column.
	Attributes Attributes
}

func (p Player) HasRating() bool {
	return p.Rating != nil
}

// RatingOr returns the overall rating or fallback when unknown.
func (p Player) RatingOr(fallback int) int {
	if p.Rating == nil {
		return fallback
	}
	return *p.Rating
}

func (p Player) String() string {
	club := p.Club
	if club == "" {
		club = "No Club"
	}
	rating := "N/A"
	if p.Rating != nil {
		rating = fmt.Sprintf("%d", *p.Rating)
	}
	return fmt.Sprintf("%s (%s) - %s", p.Name, club, rating)
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Rating != nil && (*p.Rating < MinRating || *p.Rating > MaxRating) {
		return fmt.Errorf("player rating out of range [%d,%d]: %d", MinRating, MaxRating, *p.Rating)
	}

	return nil
}
