package notes

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/HiDeoo/hideoo.dev/internal/utils/timeutils"
)

const wordsPerMinute = 200

// Meta holds the display strings shared by notes and notebooks.
type Meta struct {
	PublishDate     string `json:"publishDate"`
	PublishDatetime string `json:"publishDatetime"`
	ReadingTime     string `json:"readingTime"`
	ReadingDatetime string `json:"readingDatetime"`
	UpdateDate      string `json:"updateDate,omitempty"`
	UpdateDatetime  string `json:"updateDatetime,omitempty"`
}

func newMeta(published time.Time, updated *time.Time, minutes int) Meta {
	m := Meta{
		PublishDate:     timeutils.FormatMedium(published),
		PublishDatetime: timeutils.FormatShort(published),
		ReadingTime:     fmt.Sprintf("%dmin", minutes),
		ReadingDatetime: fmt.Sprintf("PT%dM", minutes),
	}
	if updated != nil {
		m.UpdateDate = timeutils.FormatMedium(*updated)
		m.UpdateDatetime = timeutils.FormatShort(*updated)
	}
	return m
}

// ReadingMinutes estimates the reading time of a markdown body, rounded up
// to the next minute. Never less than a minute.
func ReadingMinutes(body string) int {
	words := len(strings.Fields(body))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	return max(minutes, 1)
}
