package domain

// Category names one opaque JSON value in the session log store
type Category string

const (
	CategoryTimerSettings    Category = "timerSettings"
	CategoryFocusSessions    Category = "focusSessions"
	CategoryActivitySessions Category = "activitySessions"
	CategoryBreakHistory     Category = "breakHistory"
	CategoryUserProfile      Category = "userProfile"
)

// legacyProfileKey is the profile key used by older exports
const legacyProfileKey = "profile"

// AllCategories returns every known category in export order
func AllCategories() []Category {
	return []Category{
		CategoryUserProfile,
		CategoryFocusSessions,
		CategoryActivitySessions,
		CategoryBreakHistory,
		CategoryTimerSettings,
	}
}

// ParseCategory maps an export key to a category. Unknown keys return false.
func ParseCategory(key string) (Category, bool) {
	if key == legacyProfileKey {
		return CategoryUserProfile, true
	}
	for _, c := range AllCategories() {
		if string(c) == key {
			return c, true
		}
	}
	return "", false
}
