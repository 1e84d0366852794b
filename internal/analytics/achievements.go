package analytics

import (
	"time"

	"flowstate/internal/domain"
)

const (
	earlyBirdHour    = 8  // sessions before this local hour
	nightOwlHour     = 22 // sessions at or after this local hour
	zenMasterMinimum = 90 // final focus score
)

// logMetrics are the aggregate inputs of every achievement
type logMetrics struct {
	completed      int
	minutes        int
	streak         int
	earlyBird      bool
	nightOwl       bool
	highFocusCount int
}

func collectMetrics(snap domain.LogSnapshot, now time.Time) logMetrics {
	loc := now.Location()
	m := logMetrics{streak: Streak(snap.FocusSessions, now)}

	for _, r := range snap.FocusSessions {
		if r.Completed {
			m.completed++
			m.minutes += r.Duration
		}
		hour := r.Date.In(loc).Hour()
		if hour < earlyBirdHour {
			m.earlyBird = true
		}
		if hour >= nightOwlHour {
			m.nightOwl = true
		}
	}

	for _, a := range snap.ActivitySessions {
		if a.FinalFocusScore >= zenMasterMinimum {
			m.highFocusCount++
		}
	}

	return m
}

func boolProgress(b bool) int {
	if b {
		return 1
	}
	return 0
}

type achievementDef struct {
	domain.Achievement
	progress func(m logMetrics) int
}

var achievementCatalog = []achievementDef{
	{
		Achievement: domain.Achievement{ID: 1, Title: "First Steps", Description: "Complete your first focus session", Icon: "🎯", Target: 1, Rarity: domain.RarityCommon},
		progress:    func(m logMetrics) int { return min(m.completed, 1) },
	},
	{
		Achievement: domain.Achievement{ID: 2, Title: "Focus Warrior", Description: "Complete 10 focus sessions", Icon: "⚔️", Target: 10, Rarity: domain.RarityCommon},
		progress:    func(m logMetrics) int { return m.completed },
	},
	{
		Achievement: domain.Achievement{ID: 3, Title: "Marathon Runner", Description: "Focus for 100 hours total", Icon: "🏃", Target: 6000, Rarity: domain.RarityRare},
		progress:    func(m logMetrics) int { return m.minutes },
	},
	{
		Achievement: domain.Achievement{ID: 4, Title: "Week Streak", Description: "Study for 7 days in a row", Icon: "🔥", Target: 7, Rarity: domain.RarityRare},
		progress:    func(m logMetrics) int { return m.streak },
	},
	{
		Achievement: domain.Achievement{ID: 5, Title: "Early Bird", Description: "Complete a session before 8 AM", Icon: "🌅", Target: 1, Rarity: domain.RarityCommon},
		progress:    func(m logMetrics) int { return boolProgress(m.earlyBird) },
	},
	{
		Achievement: domain.Achievement{ID: 6, Title: "Night Owl", Description: "Complete a session after 10 PM", Icon: "🦉", Target: 1, Rarity: domain.RarityCommon},
		progress:    func(m logMetrics) int { return boolProgress(m.nightOwl) },
	},
	{
		Achievement: domain.Achievement{ID: 7, Title: "Century Club", Description: "Complete 100 focus sessions", Icon: "💯", Target: 100, Rarity: domain.RarityEpic},
		progress:    func(m logMetrics) int { return m.completed },
	},
	{
		Achievement: domain.Achievement{ID: 8, Title: "Zen Master", Description: "Maintain 90%+ focus score for 10 sessions", Icon: "🧘", Target: 10, Rarity: domain.RarityEpic},
		progress:    func(m logMetrics) int { return m.highFocusCount },
	},
	{
		Achievement: domain.Achievement{ID: 9, Title: "Unstoppable", Description: "Achieve a 30-day streak", Icon: "⚡", Target: 30, Rarity: domain.RarityLegendary},
		progress:    func(m logMetrics) int { return m.streak },
	},
	{
		Achievement: domain.Achievement{ID: 10, Title: "Focus Legend", Description: "Complete 1000 focus sessions", Icon: "👑", Target: 1000, Rarity: domain.RarityLegendary},
		progress:    func(m logMetrics) int { return m.completed },
	},
}

// Achievements evaluates the fixed achievement catalog against the log
func Achievements(snap domain.LogSnapshot, now time.Time) []domain.Achievement {
	m := collectMetrics(snap, now)

	out := make([]domain.Achievement, len(achievementCatalog))
	for i, def := range achievementCatalog {
		a := def.Achievement
		a.Progress = def.progress(m)
		a.Unlocked = a.Progress >= a.Target
		out[i] = a
	}
	return out
}

// UnlockedCount counts unlocked achievements
func UnlockedCount(achievements []domain.Achievement) int {
	n := 0
	for _, a := range achievements {
		if a.Unlocked {
			n++
		}
	}
	return n
}
