package weather

import (
	"fmt"
	"strings"

	"github.com/Misakamoe/Misaka0-sub001/logger"
)

var log = logger.New("weather")

// DefaultIcon is returned for conditions no table entry matches.
const DefaultIcon = "🌈"

type conditionIcon struct {
	key  string
	icon string
}

// conditionIcons maps condition descriptions and codes from OpenWeatherMap,
// QWeather and Caiyun to a unified icon set. It is a slice, not a map:
// Icon scans it front to back and returns the first key contained in the
// input, so an earlier generic key shadows later, more specific ones.
// Reordering entries changes lookup results.
var conditionIcons = []conditionIcon{
	// clear
	{"clear", "☀️"},
	{"sunny", "☀️"},
	{"clear sky", "☀️"},
	{"晴", "☀️"},
	{"晴天", "☀️"},
	{"CLEAR_DAY", "☀️"},
	{"CLEAR_NIGHT", "🌙"},
	{"晴夜", "🌙"},

	// cloudy
	{"clouds", "☁️"},
	{"cloudy", "☁️"},
	{"few clouds", "🌤️"},
	{"scattered clouds", "⛅"},
	{"broken clouds", "☁️"},
	{"overcast clouds", "☁️"},
	{"多云", "⛅"},
	{"局部多云", "🌤️"},
	{"晴间多云", "🌤️"},
	{"阴", "☁️"},
	{"阴天", "☁️"},
	{"少云", "🌤️"},
	{"PARTLY_CLOUDY_DAY", "🌤️"},
	{"PARTLY_CLOUDY_NIGHT", "☁️"},
	{"CLOUDY", "☁️"},

	// rain
	{"rain", "🌧️"},
	{"light rain", "🌦️"},
	{"moderate rain", "🌧️"},
	{"heavy rain", "⛈️"},
	{"shower rain", "🌧️"},
	{"drizzle", "🌦️"},
	{"小雨", "🌦️"},
	{"中雨", "🌧️"},
	{"大雨", "⛈️"},
	{"暴雨", "🌊"},
	{"大暴雨", "🌊"},
	{"特大暴雨", "🌊"},
	{"阵雨", "🌦️"},
	{"强阵雨", "🌧️"},
	{"毛毛雨", "🌦️"},
	{"细雨", "🌦️"},
	{"小到中雨", "🌦️"},
	{"中到大雨", "🌧️"},
	{"大到暴雨", "⛈️"},
	{"暴雨到大暴雨", "🌊"},
	{"大暴雨到特大暴雨", "🌊"},
	{"LIGHT_RAIN", "🌦️"},
	{"MODERATE_RAIN", "🌧️"},
	{"HEAVY_RAIN", "⛈️"},
	{"STORM_RAIN", "🌊"},

	// thunderstorm
	{"thunderstorm", "⚡"},
	{"thunderstorm with light rain", "⚡"},
	{"thunderstorm with rain", "⚡"},
	{"thunderstorm with heavy rain", "⚡"},
	{"雷阵雨", "⚡"},
	{"强雷阵雨", "⚡"},
	{"雷阵雨伴有冰雹", "⚡"},
	{"雷暴", "🌩️"},

	// snow
	{"snow", "❄️"},
	{"light snow", "🌨️"},
	{"moderate snow", "❄️"},
	{"heavy snow", "⛄"},
	{"小雪", "🌨️"},
	{"中雪", "❄️"},
	{"大雪", "⛄"},
	{"暴雪", "☃️"},
	{"小到中雪", "🌨️"},
	{"中到大雪", "❄️"},
	{"大到暴雪", "⛄"},
	{"阵雪", "🌨️"},
	{"雨夹雪", "🌨️"},
	{"雨雪天气", "🌨️"},
	{"阵雨夹雪", "🌨️"},
	{"LIGHT_SNOW", "🌨️"},
	{"MODERATE_SNOW", "❄️"},
	{"HEAVY_SNOW", "⛄"},
	{"STORM_SNOW", "☃️"},

	// fog and haze
	{"mist", "🌫️"},
	{"fog", "🌫️"},
	{"haze", "😷"},
	{"雾", "🌫️"},
	{"霾", "😷"},
	{"浓雾", "🌫️"},
	{"强浓雾", "🌫️"},
	{"大雾", "🌫️"},
	{"特强浓雾", "🌫️"},
	{"薄雾", "🌫️"},
	{"中度霾", "😷"},
	{"重度霾", "😷"},
	{"严重霾", "😷"},
	{"FOG", "🌫️"},
	{"HAZE", "😷"},
	{"LIGHT_HAZE", "😷"},
	{"MODERATE_HAZE", "😷"},
	{"HEAVY_HAZE", "😷"},

	// dust and sand
	{"扬沙", "🏜️"},
	{"浮尘", "🏜️"},
	{"沙尘暴", "🏜️"},
	{"强沙尘暴", "🏜️"},
	{"DUST", "🏜️"},
	{"SAND", "🏜️"},

	// other
	{"冻雨", "❄️"},
	{"热", "🥵"},
	{"冷", "🥶"},
	{"WIND", "💨"},

	{"default", DefaultIcon},
}

// Keys are matched lowercased; fold them once instead of on every lookup.
func init() {
	for i := range conditionIcons {
		conditionIcons[i].key = strings.ToLower(conditionIcons[i].key)
	}
}

// Icon resolves a weather condition description or code to its icon.
// Matching is case-insensitive: the input is lowercased and the first table
// key contained in it as a substring wins. Non-string input is coerced via
// fmt.Sprint. Unmatched input yields DefaultIcon.
func Icon(condition any) string {
	text, ok := condition.(string)
	if !ok {
		text = fmt.Sprint(condition)
	}
	text = strings.ToLower(text)

	for _, entry := range conditionIcons {
		if strings.Contains(text, entry.key) {
			return entry.icon
		}
	}

	log.Debug().Str("condition", text).Msg("no icon for condition")
	return DefaultIcon
}
