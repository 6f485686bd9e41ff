package eval

// Gain maps a relevance level to the gain a user receives from the document.
type Gain func(level int64) float64

// BinaryGain gives a gain of one to any document judged above zero.
func BinaryGain(level int64) float64 {
	if level > 0 {
		return 1
	}
	return 0
}

// GradedGain scales levels into [0, 1] by the largest level in the judgements.
func GradedGain(max int64) Gain {
	return func(level int64) float64 {
		if level <= 0 || max <= 0 {
			return 0
		}
		if level >= max {
			return 1
		}
		return float64(level) / float64(max)
	}
}
