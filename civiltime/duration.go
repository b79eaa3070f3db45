package civiltime

import "fmt"

// FormatStandardDuration renders a millisecond count as
// minutes:seconds:milliseconds with truncating integer division and no
// zero-padding. Example: 1200 milliseconds -> "0:1:200". A nil input yields
// "".
func FormatStandardDuration(timeInMilliseconds *int64) string {
	if timeInMilliseconds == nil {
		return ""
	}
	ms := *timeInMilliseconds
	return fmt.Sprintf("%d:%d:%d", ms/60000, (ms%60000)/1000, ms%1000)
}
