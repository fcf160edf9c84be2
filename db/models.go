package db

import "time"

// Clip represents a row in the clips table. video_url points at the produced
// clip media; start_time/end_time are the stored interval offsets within it.
type Clip struct {
	ID        int64
	Title     string
	ShowTitle string
	Thumbnail string
	Emotion   string
	Category  string
	VideoURL  string
	StartTime float64
	EndTime   float64
	CreatedAt time.Time
}

// Duration returns the stored interval width in seconds.
func (c *Clip) Duration() float64 {
	return c.EndTime - c.StartTime
}
