package constants

import "math/rand"

// Quotes shown on the habit list and monthly summary.
var Quotes = []string{
	"Consistency is the key to greatness!",
	"Building habits like a boss!",
	"Your future self will thank you!",
	"Every streak starts with day one!",
	"You're on fire! Keep that streak alive!",
	"Making excellence a habit!",
	"Streak mode: ACTIVATED!",
	"You're basically a habit superhero!",
	"Crushing goals, one habit at a time!",
	"Your dedication is showing!",
}

// RandomQuote picks one of the motivational quotes.
func RandomQuote() string {
	return Quotes[rand.Intn(len(Quotes))]
}
