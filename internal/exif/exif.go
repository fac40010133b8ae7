// Package exif extracts the coach-relevant subset of camera metadata from
// an uploaded photo. Full EXIF carries 100+ fields; only the ones that
// matter for exposure and composition feedback are kept.
package exif

import (
	"fmt"
	"os"
	"strconv"

	goexif "github.com/rwcarlsen/goexif/exif"
)

// Metadata is the flat camera-settings record handed to the vision
// analyzer. Zero values mean the field was absent from the file.
type Metadata struct {
	Model        string
	FNumber      float64
	ISO          int
	FocalLength  float64
	ExposureTime string
}

// Map flattens the metadata into the key-value form stored on the
// VisionResult. Absent fields are omitted.
func (m Metadata) Map() map[string]string {
	out := make(map[string]string)
	if m.Model != "" {
		out["Model"] = m.Model
	}
	if m.FNumber > 0 {
		out["FNumber"] = strconv.FormatFloat(m.FNumber, 'f', -1, 64)
	}
	if m.ISO > 0 {
		out["ISOSpeedRatings"] = strconv.Itoa(m.ISO)
	}
	if m.FocalLength > 0 {
		out["FocalLength"] = strconv.FormatFloat(m.FocalLength, 'f', -1, 64)
	}
	if m.ExposureTime != "" {
		out["ExposureTime"] = m.ExposureTime
	}
	return out
}

// Extract reads EXIF from the image at path. Missing individual fields are
// not errors; only an unreadable file or absent EXIF block fails.
func Extract(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	x, err := goexif.Decode(f)
	if err != nil {
		return Metadata{}, fmt.Errorf("decode exif: %w", err)
	}

	var m Metadata

	if tag, err := x.Get(goexif.Model); err == nil {
		if v, err := tag.StringVal(); err == nil {
			m.Model = v
		}
	}

	if tag, err := x.Get(goexif.FNumber); err == nil {
		if num, den, err := tag.Rat2(0); err == nil && den != 0 {
			m.FNumber = round2(float64(num) / float64(den))
		}
	}

	if tag, err := x.Get(goexif.ISOSpeedRatings); err == nil {
		if v, err := tag.Int(0); err == nil {
			m.ISO = v
		}
	}

	if tag, err := x.Get(goexif.FocalLength); err == nil {
		if num, den, err := tag.Rat2(0); err == nil && den != 0 {
			m.FocalLength = round2(float64(num) / float64(den))
		}
	}

	if tag, err := x.Get(goexif.ExposureTime); err == nil {
		if num, den, err := tag.Rat2(0); err == nil && den != 0 {
			m.ExposureTime = formatExposure(num, den)
		}
	}

	return m, nil
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

// formatExposure renders shutter speed the way photographers read it:
// fractions under a second stay fractional, longer exposures in seconds.
func formatExposure(num, den int64) string {
	if num == 0 || den == 0 {
		return ""
	}
	if num < den {
		// Normalize to a 1/x fraction when possible.
		if den%num == 0 {
			return fmt.Sprintf("1/%d", den/num)
		}
		return fmt.Sprintf("%d/%d", num, den)
	}
	return strconv.FormatFloat(float64(num)/float64(den), 'f', -1, 64) + "s"
}
