package algorithm

import (
	"time"

	"github.com/LavenderBridge/verdure/internal/models"
)

// DaysBetween returns the number of calendar days between a and b,
// ignoring the time-of-day component. Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	a = truncateToDay(a)
	b = truncateToDay(b)
	return int(b.Sub(a).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextStreak computes the streak after a study session completed at now.
//
//	no prior date  -> 1
//	next day       -> previous + 1
//	gap of 2+ days -> 1
//	same day       -> unchanged
func NextStreak(previous int, last *time.Time, now time.Time) int {
	if last == nil {
		return 1
	}
	switch diff := DaysBetween(*last, now); {
	case diff == 1:
		return previous + 1
	case diff > 1:
		return 1
	default:
		return previous
	}
}

// AdvanceCycle folds a completed study cycle into the progress record.
func AdvanceCycle(p models.UserProgress, plantsStudied int, now time.Time) models.UserProgress {
	p.Streak = NextStreak(p.Streak, p.LastStudyDate, now)
	p.PlantsStudied += plantsStudied
	p.LastStudyDate = &now
	return p
}

// AdvanceQuiz folds a completed quiz into the progress record. Streak is
// only advanced by cycles.
func AdvanceQuiz(p models.UserProgress, correct, total int) models.UserProgress {
	p.QuizCorrectAnswers += correct
	p.QuizTotalQuestions += total
	return p
}
