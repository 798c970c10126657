package angle

import "math"

// --- Normalization ---

// Normalize360 maps any angle into [0,360)
// Total over all real inputs, including negatives and non-finite-safe callers
func Normalize360(x float64) float64 {
	m := math.Mod(x, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// --- Time-of-day angles ---

// HourAngle24 maps a time of day onto a 24-hour face
// Noon is 0 degrees, midnight 180, one clockwise revolution per day
func HourAngle24(hours, minutes, seconds, millis int) float64 {
	totalMinutes := float64(hours)*60 + float64(minutes) + (float64(seconds)+float64(millis)/1000)/60
	return Normalize360((totalMinutes - 720) / 1440 * 360)
}

// HourAngle12 maps a time of day onto a classic 12-hour face
// Two revolutions per day, 12 o'clock at 0 degrees
func HourAngle12(hours, minutes, seconds, millis int) float64 {
	h := float64(hours%12) + (float64(minutes)+(float64(seconds)+float64(millis)/1000)/60)/60
	return Normalize360(h / 12 * 360)
}

// MinuteAngle maps minutes-of-hour onto the face with sub-minute smoothing
func MinuteAngle(minutes, seconds, millis int) float64 {
	return Normalize360((float64(minutes) + (float64(seconds)+float64(millis)/1000)/60) / 60 * 360)
}

// SecondAngle maps seconds-of-minute onto the face with sub-second smoothing
func SecondAngle(seconds, millis int) float64 {
	return Normalize360((float64(seconds) + float64(millis)/1000) / 60 * 360)
}
