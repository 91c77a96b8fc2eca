package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIcon(t *testing.T) {
	tests := []struct {
		name      string
		condition any
		expected  string
	}{
		{"english text", "clear sky", "☀️"},
		{"mixed case", "Clear Sky", "☀️"},
		{"chinese text", "晴", "☀️"},
		{"chinese compound", "多云", "⛅"},
		{"skycon code", "FOG", "🌫️"},
		{"skycon embedded in text", "blowing DUST expected", "🏜️"},
		{"thunderstorm", "雷暴", "🌩️"},
		{"haze", "haze", "😷"},
		{"dust", "DUST", "🏜️"},
		{"wind", "WIND", "💨"},
		{"empty input", "", DefaultIcon},
		{"no match", "zzz-unknown-condition", DefaultIcon},
		{"numeric input", 123, DefaultIcon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Icon(tt.condition))
		})
	}
}

// Earlier table entries win over later, more specific ones when both occur
// in the input. The table order encodes this, so pin it down.
func TestIconOrderShadowing(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		expected  string
	}{
		// "clear" is listed before "CLEAR_NIGHT"
		{"clear shadows clear_night", "CLEAR_NIGHT", "☀️"},
		// "rain" is listed before "light rain"
		{"rain shadows light rain", "light rain", "🌧️"},
		// "cloudy" is listed before "PARTLY_CLOUDY_DAY"
		{"cloudy shadows partly_cloudy_day", "PARTLY_CLOUDY_DAY", "☁️"},
		// "snow" is listed before "STORM_SNOW"
		{"snow shadows storm_snow", "STORM_SNOW", "❄️"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Icon(tt.condition))
		})
	}
}

func TestIconIdempotent(t *testing.T) {
	for _, condition := range []string{"小雨", "fog", "LIGHT_HAZE", "nonsense"} {
		assert.Equal(t, Icon(condition), Icon(condition))
	}
}
