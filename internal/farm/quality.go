package farm

// Quality is the discrete quality level of an item.
type Quality int

// Quality levels. The numeric values match the produce quality tiers an animal carries.
const (
	QualityLow    Quality = 0
	QualityMedium Quality = 1
	QualityHigh   Quality = 2
	QualityBest   Quality = 4
)

// QualityFromTier maps an animal's produce quality tier onto a Quality.
//
// Postcondition: tiers 1, 2 and 4 map to medium, high and best; every other value maps to QualityLow.
func QualityFromTier(tier int) Quality {
	switch tier {
	case 1:
		return QualityMedium
	case 2:
		return QualityHigh
	case 4:
		return QualityBest
	default:
		return QualityLow
	}
}

// String returns the lowercase name of the quality level.
func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	case QualityBest:
		return "best"
	default:
		return "unknown"
	}
}
