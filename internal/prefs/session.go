package prefs

// Default session values applied when configuration leaves them blank.
const (
	DefaultLanguage = "en"
	DefaultDateFrom = "2000-01-01"
	DefaultDateTo   = "2025-12-31"
)

// Session is the fully populated preference state carried across turns.
type Session struct {
	ActorID  string `json:"actor_id" yaml:"actor_id"`
	GenreID  string `json:"genre_id" yaml:"genre_id"`
	Language string `json:"language" yaml:"language"`
	DateFrom string `json:"date_from" yaml:"date_from"`
	DateTo   string `json:"date_to" yaml:"date_to"`
}

// Defaults builds the session a conversation starts from. Blank arguments
// fall back to the package defaults.
func Defaults(language, from, to string) Session {
	if language == "" {
		language = DefaultLanguage
	}
	if from == "" {
		from = DefaultDateFrom
	}
	if to == "" {
		to = DefaultDateTo
	}
	return Session{Language: language, DateFrom: from, DateTo: to}
}

// Get returns the session value for field.
func (s Session) Get(field Field) string {
	switch field {
	case ActorID:
		return s.ActorID
	case GenreID:
		return s.GenreID
	case Language:
		return s.Language
	case DateFrom:
		return s.DateFrom
	case DateTo:
		return s.DateTo
	default:
		return ""
	}
}

func (s *Session) set(field Field, value string) {
	switch field {
	case ActorID:
		s.ActorID = value
	case GenreID:
		s.GenreID = value
	case Language:
		s.Language = value
	case DateFrom:
		s.DateFrom = value
	case DateTo:
		s.DateTo = value
	}
}
