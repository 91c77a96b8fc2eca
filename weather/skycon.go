package weather

// Skycon is a Caiyun weather condition code, e.g. "CLEAR_DAY".
type Skycon string

var skyconDescriptions = map[Skycon]string{
	"CLEAR_DAY":           "晴天",
	"CLEAR_NIGHT":         "晴夜",
	"PARTLY_CLOUDY_DAY":   "多云",
	"PARTLY_CLOUDY_NIGHT": "多云",
	"CLOUDY":              "阴天",
	"LIGHT_HAZE":          "轻度雾霾",
	"MODERATE_HAZE":       "中度雾霾",
	"HEAVY_HAZE":          "重度雾霾",
	"LIGHT_RAIN":          "小雨",
	"MODERATE_RAIN":       "中雨",
	"HEAVY_RAIN":          "大雨",
	"STORM_RAIN":          "暴雨",
	"FOG":                 "雾",
	"LIGHT_SNOW":          "小雪",
	"MODERATE_SNOW":       "中雪",
	"HEAVY_SNOW":          "大雪",
	"STORM_SNOW":          "暴雪",
	"DUST":                "浮尘",
	"SAND":                "沙尘",
	"WIND":                "大风",
}

// Description returns the Chinese description for the skycon. Unknown codes
// pass through unchanged. Codes are matched case-sensitively.
func (skycon Skycon) Description() string {
	if description, ok := skyconDescriptions[skycon]; ok {
		return description
	}
	return string(skycon)
}

// Icon returns the display icon for the skycon.
func (skycon Skycon) Icon() string {
	return Icon(string(skycon))
}
