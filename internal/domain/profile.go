package domain

import (
	"encoding/json"
	"fmt"
)

// DefaultStudyGoal is the daily focus goal in minutes
const DefaultStudyGoal = 240

// UserProfile holds user preferences stored alongside the session log
type UserProfile struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	StudyGoal       int    `json:"studyGoal"` // minutes per day
	StudyType       string `json:"studyType,omitempty"`
	Notifications   bool   `json:"notifications"`
	AutoStartBreaks bool   `json:"autoStartBreaks"`
	Theme           string `json:"theme"`
	SoundEnabled    bool   `json:"soundEnabled"`
}

// DefaultUserProfile returns the profile used before the user saves one
func DefaultUserProfile() UserProfile {
	return UserProfile{
		StudyGoal:     DefaultStudyGoal,
		Notifications: true,
		Theme:         "light",
		SoundEnabled:  true,
	}
}

// UnmarshalJSON overlays stored fields on the defaults; a missing or invalid
// studyGoal falls back to DefaultStudyGoal.
func (p *UserProfile) UnmarshalJSON(data []byte) error {
	type plain UserProfile
	profile := plain(DefaultUserProfile())
	aux := struct {
		*plain
		StudyGoal json.RawMessage `json:"studyGoal"`
	}{plain: &profile}

	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("user profile: %w", err)
	}

	profile.StudyGoal = lenientPositiveInt(aux.StudyGoal, DefaultStudyGoal)
	*p = UserProfile(profile)
	return nil
}
