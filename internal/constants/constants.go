package constants

const (
	AppName = "zenith"

	// DateFormat is the standard calendar-day format used throughout the
	// application (YYYY-MM-DD). Keys built from it sort lexically in
	// chronological order.
	DateFormat = "2006-01-02"

	// DefaultDataPath is where the journal lives unless the config or the
	// --path flag says otherwise.
	DefaultDataPath = "~/.local/share/zenith"

	// Storage document keys. One JSON document per logical store.
	KeyHabits      = "habits"
	KeyCompletions = "completions"
	KeyCheckIns    = "checkInData"

	// Legacy document keys written by earlier releases. Read-only fallbacks;
	// nothing writes them anymore.
	LegacyKeyHabits      = "zenith_habits"
	LegacyKeyCompletions = "zenith_completions"
	LegacyKeyMoods       = "zenith_moods"

	// Rating bounds for check-in energy and focus.
	RatingMin = 1
	RatingMax = 10

	// DefaultRating fills a missing energy or focus value on legacy entries.
	DefaultRating = 5
)

// Storage backends selectable via config.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
)
