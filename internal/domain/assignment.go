package domain

// AssignmentTier - уровень приоритета, на котором найден кандидат.
// Порядок значений совпадает с порядком перебора уровней и является
// частью контракта движка назначения.
type AssignmentTier int

const (
	TierNone AssignmentTier = iota
	TierMatchedSameDistrict
	TierMatchedSameArea
	TierMatchedAnyLocation
	TierFallbackSameDistrict
	TierFallbackSameArea
	TierFallbackAnyLocation
)

var tierNames = map[AssignmentTier]string{
	TierNone:                 "none",
	TierMatchedSameDistrict:  "matched_same_district",
	TierMatchedSameArea:      "matched_same_area",
	TierMatchedAnyLocation:   "matched_any_location",
	TierFallbackSameDistrict: "fallback_same_district",
	TierFallbackSameArea:     "fallback_same_area",
	TierFallbackAnyLocation:  "fallback_any_location",
}

func (t AssignmentTier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsFallback сообщает, взят ли кандидат из несовпадающего пула
func (t AssignmentTier) IsFallback() bool {
	switch t {
	case TierFallbackSameDistrict, TierFallbackSameArea, TierFallbackAnyLocation:
		return true
	}
	return false
}

// AssignmentOutcome - результат назначения одного слота. Пустой результат
// (ни Spot, ни Restaurant) не является ошибкой: исчерпание пула
// фиксируется валидатором как проблема покрытия.
type AssignmentOutcome struct {
	Spot       *TouristSpot   `json:"tourist_spot,omitempty"`
	Restaurant *Restaurant    `json:"restaurant,omitempty"`
	Tier       AssignmentTier `json:"tier"`

	MBTIMatched     bool   `json:"mbti_matched"`
	DistrictMatched bool   `json:"district_matched"`
	AreaMatched     bool   `json:"area_matched"`
	FallbackUsed    bool   `json:"fallback_used"`
	Rationale       string `json:"rationale,omitempty"`
}

// Assigned проверяет, выбран ли кандидат
func (o AssignmentOutcome) Assigned() bool {
	return o.Spot != nil || o.Restaurant != nil
}
