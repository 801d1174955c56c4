package imaging

import (
	"bytes"
	"strings"
	"time"

	"plant-hub-be/pkg/timeutil"

	"github.com/rwcarlsen/goexif/exif"
)

// exifTimeLayout is the EXIF timestamp form "YYYY:MM:DD HH:MM:SS".
const exifTimeLayout = "2006:01:02 15:04:05"

// Tag precedence: capture time, file modify time, digitized time.
var exifDateFields = []exif.FieldName{
	exif.DateTimeOriginal,
	exif.DateTime,
	exif.DateTimeDigitized,
}

// ResolveCaptureTime picks the capture timestamp for a photo. A parseable
// client-supplied ISO-8601 date wins; otherwise the first usable EXIF
// date tag in the original bytes; otherwise the current wall-clock time.
// Always UTC, never an error.
func ResolveCaptureTime(original []byte, clientDate string, now func() time.Time) time.Time {
	if t, ok := timeutil.ParseISO(clientDate); ok {
		return t
	}
	if t, ok := ExifDate(original); ok {
		return t
	}
	return now().UTC()
}

// ExifDate extracts the first usable EXIF date tag, interpreted as UTC.
func ExifDate(data []byte) (time.Time, bool) {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return time.Time{}, false
	}
	for _, field := range exifDateFields {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		raw, err := tag.StringVal()
		if err != nil {
			continue
		}
		if t, err := time.Parse(exifTimeLayout, strings.TrimSpace(raw)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
