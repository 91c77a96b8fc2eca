package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DirectionUnknown is returned for bearings that cannot be parsed.
const DirectionUnknown = "未知"

// directions holds the eight compass names, north first, clockwise.
var directions = [8]string{"北", "东北", "东", "东南", "南", "西南", "西", "西北"}

// windIcons maps each compass direction name to the arrow pointing where
// the wind blows to, i.e. the opposite of where it comes from.
var windIcons = map[string]string{
	"北":  "⬇️",
	"东北": "↙️",
	"东":  "⬅️",
	"东南": "↖️",
	"南":  "⬆️",
	"西南": "↗️",
	"西":  "➡️",
	"西北": "↘️",
}

// WindDirection maps a bearing in degrees to the nearest of the eight
// compass direction names. Accepts numbers or numeric strings; fractional,
// negative and >360° bearings wrap correctly. Unparsable input yields
// DirectionUnknown.
func WindDirection(degrees any) string {
	text, ok := degrees.(string)
	if !ok {
		text = fmt.Sprint(degrees)
	}

	// ParseFloat accepts "NaN" and "Inf", which have no direction either.
	deg, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(deg) || math.IsInf(deg, 0) {
		log.Debug().Str("degrees", text).Msg("unparsable wind bearing")
		return DirectionUnknown
	}

	// math.Mod keeps huge bearings in range that would overflow int.
	index := int(math.Mod(math.Round(deg/45), 8))
	if index < 0 {
		index += 8
	}
	return directions[index]
}

// WindIcon returns the arrow icon for a compass direction name. Names
// outside the eight known directions (including DirectionUnknown) get a
// compass icon.
func WindIcon(direction string) string {
	if icon, ok := windIcons[direction]; ok {
		return icon
	}
	return "🧭"
}
