// Package strftime formats message timestamps from strftime-style patterns
// such as "%H:%M".
package strftime

import (
	"time"

	"github.com/fwojciec/chatlayout"
	"github.com/ncruces/go-strftime"
)

var _ chatlayout.TimeFormatter = Formatter{}

// DefaultFormat is the timestamp format used when none is configured.
const DefaultFormat = "%H:%M"

// Formatter implements chatlayout.TimeFormatter. Times are shown in
// Location, or local time when Location is nil.
type Formatter struct {
	Location *time.Location
}

// FormatTime formats t under the strftime pattern format. An empty format
// uses DefaultFormat.
func (f Formatter) FormatTime(t time.Time, format string) string {
	if format == "" {
		format = DefaultFormat
	}
	if f.Location != nil {
		t = t.In(f.Location)
	} else {
		t = t.Local()
	}
	return strftime.Format(format, t)
}
