package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowstate/internal/domain"
)

func achievementByTitle(t *testing.T, list []domain.Achievement, title string) domain.Achievement {
	t.Helper()
	for _, a := range list {
		if a.Title == title {
			return a
		}
	}
	require.Failf(t, "achievement not found", "title %q", title)
	return domain.Achievement{}
}

func completedSessions(n int) []domain.FocusSessionRecord {
	out := make([]domain.FocusSessionRecord, n)
	for i := range out {
		out[i] = focus(at(0, 12), 25, true)
	}
	return out
}

func TestAchievements_EmptyLog(t *testing.T) {
	list := Achievements(domain.LogSnapshot{}, now)

	require.Len(t, list, 10)
	for i, a := range list {
		assert.Equal(t, i+1, a.ID)
		assert.Equal(t, 0, a.Progress, a.Title)
		assert.False(t, a.Unlocked, a.Title)
	}
	assert.Equal(t, 0, UnlockedCount(list))
}

func TestAchievements_Catalog(t *testing.T) {
	list := Achievements(domain.LogSnapshot{}, now)

	want := []struct {
		title  string
		target int
		rarity domain.Rarity
	}{
		{"First Steps", 1, domain.RarityCommon},
		{"Focus Warrior", 10, domain.RarityCommon},
		{"Marathon Runner", 6000, domain.RarityRare},
		{"Week Streak", 7, domain.RarityRare},
		{"Early Bird", 1, domain.RarityCommon},
		{"Night Owl", 1, domain.RarityCommon},
		{"Century Club", 100, domain.RarityEpic},
		{"Zen Master", 10, domain.RarityEpic},
		{"Unstoppable", 30, domain.RarityLegendary},
		{"Focus Legend", 1000, domain.RarityLegendary},
	}

	for i, w := range want {
		assert.Equal(t, w.title, list[i].Title)
		assert.Equal(t, w.target, list[i].Target, w.title)
		assert.Equal(t, w.rarity, list[i].Rarity, w.title)
		assert.NotEmpty(t, list[i].Description, w.title)
		assert.NotEmpty(t, list[i].Icon, w.title)
	}
}

func TestAchievements_CenturyClubBoundary(t *testing.T) {
	tests := []struct {
		completed    int
		wantUnlocked bool
	}{
		{99, false},
		{100, true},
	}

	for _, tt := range tests {
		snap := domain.LogSnapshot{FocusSessions: completedSessions(tt.completed)}
		list := Achievements(snap, now)

		century := achievementByTitle(t, list, "Century Club")
		assert.Equal(t, tt.completed, century.Progress)
		assert.Equal(t, tt.wantUnlocked, century.Unlocked, "completed=%d", tt.completed)

		warrior := achievementByTitle(t, list, "Focus Warrior")
		assert.True(t, warrior.Unlocked)

		first := achievementByTitle(t, list, "First Steps")
		assert.Equal(t, 1, first.Progress)
		assert.True(t, first.Unlocked)
	}
}

func TestAchievements_UncompletedSessionsDoNotCount(t *testing.T) {
	snap := domain.LogSnapshot{FocusSessions: []domain.FocusSessionRecord{focus(at(0, 12), 25, false)}}

	list := Achievements(snap, now)

	assert.False(t, achievementByTitle(t, list, "First Steps").Unlocked)
	assert.Equal(t, 0, achievementByTitle(t, list, "Marathon Runner").Progress)
	// Streak counts any record
	assert.Equal(t, 1, achievementByTitle(t, list, "Week Streak").Progress)
}

func TestAchievements_EarlyBirdAndNightOwl(t *testing.T) {
	tests := []struct {
		name      string
		hour      int
		earlyBird bool
		nightOwl  bool
	}{
		{name: "07:00 is early", hour: 7, earlyBird: true},
		{name: "08:00 is not early", hour: 8},
		{name: "21:00 is neither", hour: 21},
		{name: "22:00 is late", hour: 22, nightOwl: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := domain.LogSnapshot{FocusSessions: []domain.FocusSessionRecord{focus(at(3, tt.hour), 25, false)}}

			list := Achievements(snap, now)

			assert.Equal(t, tt.earlyBird, achievementByTitle(t, list, "Early Bird").Unlocked)
			assert.Equal(t, tt.nightOwl, achievementByTitle(t, list, "Night Owl").Unlocked)
		})
	}
}

func TestAchievements_ZenMasterCountsHighScores(t *testing.T) {
	var activity []domain.ActivitySessionRecord
	for i := 0; i < 12; i++ {
		score := 95
		if i%4 == 0 {
			score = 89
		}
		activity = append(activity, domain.ActivitySessionRecord{FinalFocusScore: score})
	}

	zen := achievementByTitle(t, Achievements(domain.LogSnapshot{ActivitySessions: activity}, now), "Zen Master")

	assert.Equal(t, 9, zen.Progress)
	assert.False(t, zen.Unlocked)

	activity = append(activity, domain.ActivitySessionRecord{FinalFocusScore: 90})
	zen = achievementByTitle(t, Achievements(domain.LogSnapshot{ActivitySessions: activity}, now), "Zen Master")
	assert.True(t, zen.Unlocked)
}

func TestAchievements_MarathonUsesCompletedMinutes(t *testing.T) {
	snap := domain.LogSnapshot{FocusSessions: []domain.FocusSessionRecord{
		focus(at(0, 9), 3000, true),
		focus(at(1, 9), 3000, true),
		focus(at(2, 9), 3000, false),
	}}

	marathon := achievementByTitle(t, Achievements(snap, now), "Marathon Runner")

	assert.Equal(t, 6000, marathon.Progress)
	assert.True(t, marathon.Unlocked)
}

func TestAchievements_StreakBased(t *testing.T) {
	var records []domain.FocusSessionRecord
	for i := 0; i < 30; i++ {
		records = append(records, focus(at(i, 12), 25, true))
	}

	list := Achievements(domain.LogSnapshot{FocusSessions: records}, now)

	assert.True(t, achievementByTitle(t, list, "Week Streak").Unlocked)
	unstoppable := achievementByTitle(t, list, "Unstoppable")
	assert.Equal(t, 30, unstoppable.Progress)
	assert.True(t, unstoppable.Unlocked)

	// Same log evaluated a day later has no record today
	list = Achievements(domain.LogSnapshot{FocusSessions: records}, now.Add(24*time.Hour))
	assert.Equal(t, 0, achievementByTitle(t, list, "Unstoppable").Progress)
}
