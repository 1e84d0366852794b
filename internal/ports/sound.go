package ports

// Sound events played by the timer and the activity monitor
const (
	SoundFocusComplete = "focus-complete"
	SoundBreakComplete = "break-complete"
	SoundDistraction   = "distraction"
)

// SoundPlayer plays notification sounds
type SoundPlayer interface {
	// PlaySoundForEvent plays a sound for a specific event type
	PlaySoundForEvent(eventType string) error
}
