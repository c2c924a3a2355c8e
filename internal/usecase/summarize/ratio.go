package summarize

import "ai-toolkit/internal/domain/entity"

// defaultRatio is used for unknown compression levels.
const defaultRatio = 0.4

var levelRatios = map[entity.CompressionLevel]float64{
	entity.LevelShort:  0.2,
	entity.LevelMedium: 0.4,
	entity.LevelLong:   0.6,
}

// ResolveRatio maps a compression level to the fraction of sentences to keep.
// Unknown levels resolve to the medium ratio.
func ResolveRatio(level entity.CompressionLevel) float64 {
	if ratio, ok := levelRatios[level]; ok {
		return ratio
	}
	return defaultRatio
}
