package exif

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "nope.jpg"))
	assert.Error(t, err)
}

func TestExtractNonImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	writeFile(t, path, "not a jpeg")

	_, err := Extract(path)
	assert.Error(t, err)
}

func TestMetadataMapOmitsAbsentFields(t *testing.T) {
	m := Metadata{Model: "NIKON D750", FNumber: 2.8}

	got := m.Map()

	assert.Equal(t, map[string]string{
		"Model":   "NIKON D750",
		"FNumber": "2.8",
	}, got)
}

func TestMetadataMapFull(t *testing.T) {
	m := Metadata{
		Model:        "Canon EOS R5",
		FNumber:      1.8,
		ISO:          400,
		FocalLength:  50,
		ExposureTime: "1/250",
	}

	got := m.Map()

	assert.Equal(t, "1.8", got["FNumber"])
	assert.Equal(t, "400", got["ISOSpeedRatings"])
	assert.Equal(t, "50", got["FocalLength"])
	assert.Equal(t, "1/250", got["ExposureTime"])
}

func TestFormatExposure(t *testing.T) {
	tests := []struct {
		name     string
		num, den int64
		want     string
	}{
		{"fast shutter", 1, 250, "1/250"},
		{"reducible fraction", 2, 500, "1/250"},
		{"odd fraction", 3, 10, "3/10"},
		{"long exposure", 30, 1, "30s"},
		{"zero denominator", 1, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatExposure(tt.num, tt.den))
		})
	}
}
