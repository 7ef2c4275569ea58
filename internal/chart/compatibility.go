package chart

import "math"

const compatibilityBandWidth = 10.0

// Compatibility scores every sign against the Sun sign, 0-100.
//
// The band floor comes from the raw index distance: 0, 4 or 8 scores from
// 90; 2, 6 or 10 from 70; anything else from 50. Within the band, signs
// closer around the wheel score higher, up to the full band width for the
// Sun sign itself.
func Compatibility(sun Sign) map[Sign]int {
	out := make(map[Sign]int, len(Signs))
	for _, s := range Signs {
		diff := int(s) - int(sun)
		if diff < 0 {
			diff = -diff
		}

		var floor float64
		switch diff {
		case 0, 4, 8:
			floor = 90
		case 2, 6, 10:
			floor = 70
		default:
			floor = 50
		}

		arc := diff
		if arc > 6 {
			arc = 12 - arc
		}
		score := floor + compatibilityBandWidth*float64(6-arc)/6
		out[s] = int(math.Round(score))
	}
	return out
}
