// FILE: pkg/scoring/scoring.go
package scoring

import (
	"fmt"
	"time"
)

// Calculator turns a run's elapsed time and help usage into the final score.
type Calculator struct {
	penaltyPerHelp time.Duration
}

func NewCalculator(penaltyMinutes int) *Calculator {
	return &Calculator{
		penaltyPerHelp: time.Duration(penaltyMinutes) * time.Minute,
	}
}

// Elapsed returns the raw play time between start and finish.
func (c *Calculator) Elapsed(start, finish time.Time) time.Duration {
	return finish.Sub(start)
}

// TotalTime returns the elapsed time plus the accumulated help penalty.
func (c *Calculator) TotalTime(elapsed time.Duration, helpsUsed int) time.Duration {
	return elapsed + time.Duration(helpsUsed)*c.penaltyPerHelp
}

// FormatDuration renders a duration as whole hours and minutes, truncated.
func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}
