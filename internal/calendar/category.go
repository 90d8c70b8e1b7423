package calendar

// Category classifies an event by its life domain. The set is closed;
// every event maps to exactly one category, with CategoryPersonal as the
// default when no rule matches.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryFamily   Category = "family"
	CategoryPersonal Category = "personal"
	CategorySchool   Category = "school"
	CategoryHealth   Category = "health"
	CategoryTravel   Category = "travel"
)

// Categories lists all valid categories.
var Categories = []Category{
	CategoryWork,
	CategoryFamily,
	CategoryPersonal,
	CategorySchool,
	CategoryHealth,
	CategoryTravel,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
