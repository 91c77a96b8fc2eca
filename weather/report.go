package weather

import (
	"fmt"
	"strings"
)

type Temperature float64

func (temperature Temperature) String() string {
	return fmt.Sprintf("%.1f°C", float64(temperature))
}

func (temperature Temperature) Icon() string {
	if temperature < 5 {
		return "🥶"
	} else if temperature < 10 {
		return "❄️"
	} else if temperature > 30 {
		return "😎"
	}
	return "🌡️"
}

// Current is a snapshot of current conditions at one location, already
// parsed out of a provider response by the caller.
type Current struct {
	Location    string
	Source      string
	Condition   string
	Temperature Temperature
	FeelsLike   Temperature
	Humidity    int
	WindSpeed   float64
	WindDegrees float64
}

// FormatCurrent renders a Markdown report of the current conditions,
// resolving the condition icon, wind direction and wind arrow along the way.
func FormatCurrent(current Current) string {
	icon := Icon(current.Condition)
	direction := WindDirection(current.WindDegrees)

	var sb strings.Builder

	sb.WriteString(
		fmt.Sprintf(
			"*%s %s 当前天气*\n\n",
			icon,
			current.Location,
		),
	)

	sb.WriteString(
		fmt.Sprintf(
			"🌡️ *温度*: %s %s\n",
			current.Temperature.String(),
			current.Temperature.Icon(),
		),
	)

	sb.WriteString(
		fmt.Sprintf(
			"🤒 *体感温度*: %s\n",
			current.FeelsLike.String(),
		),
	)

	sb.WriteString(
		fmt.Sprintf(
			"☁️ *天气状况*: %s %s\n",
			current.Condition,
			icon,
		),
	)

	sb.WriteString(
		fmt.Sprintf(
			"💧 *湿度*: %d%%\n",
			current.Humidity,
		),
	)

	sb.WriteString(
		fmt.Sprintf(
			"🌬️ *风速/风向*: %v m/s %s %s\n",
			current.WindSpeed,
			WindIcon(direction),
			direction,
		),
	)

	if current.Source != "" {
		sb.WriteString(
			fmt.Sprintf(
				"\n_数据来源: %s_\n",
				current.Source,
			),
		)
	}

	return sb.String()
}
