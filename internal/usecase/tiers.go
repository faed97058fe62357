package usecase

import (
	"github.com/mbti-travel-planner/internal/domain"
	"github.com/mbti-travel-planner/internal/pkg/geo"
)

// localityKind - вид географического предиката уровня приоритета
type localityKind int

const (
	localityDistrict localityKind = iota
	localityArea
	localityAny
)

// tierRule - один уровень каскада: пул (совпадающий/запасной) и
// географический предикат
type tierRule struct {
	tier     domain.AssignmentTier
	matched  bool
	locality localityKind
}

// assignmentTiers - шесть уровней в строгом порядке перебора для дневных и
// вечерних сессий и приёмов пищи. Порядок является поведенческим контрактом:
// его изменение меняет выбор кандидатов.
var assignmentTiers = []tierRule{
	{tier: domain.TierMatchedSameDistrict, matched: true, locality: localityDistrict},
	{tier: domain.TierMatchedSameArea, matched: true, locality: localityArea},
	{tier: domain.TierMatchedAnyLocation, matched: true, locality: localityAny},
	{tier: domain.TierFallbackSameDistrict, matched: false, locality: localityDistrict},
	{tier: domain.TierFallbackSameArea, matched: false, locality: localityArea},
	{tier: domain.TierFallbackAnyLocation, matched: false, locality: localityAny},
}

// morningTiers - утро не имеет географических целей, остаются два уровня
var morningTiers = []tierRule{
	{tier: domain.TierMatchedAnyLocation, matched: true, locality: localityAny},
	{tier: domain.TierFallbackAnyLocation, matched: false, locality: localityAny},
}

// geoTargets - упорядоченные целевые районы и зоны, выведенные из уже
// назначенных сущностей того же дня
type geoTargets struct {
	districts []string
	areas     []string
}

// collectTargets строит цели из референсных достопримечательностей,
// сохраняя порядок и убирая дубликаты
func collectTargets(refs ...*domain.TouristSpot) geoTargets {
	var t geoTargets
	seenDistrict := make(map[string]struct{})
	seenArea := make(map[string]struct{})

	for _, ref := range refs {
		if ref == nil {
			continue
		}
		if ref.District != "" {
			if _, ok := seenDistrict[ref.District]; !ok {
				seenDistrict[ref.District] = struct{}{}
				t.districts = append(t.districts, ref.District)
			}
		}
		if ref.Area != "" {
			if _, ok := seenArea[ref.Area]; !ok {
				seenArea[ref.Area] = struct{}{}
				t.areas = append(t.areas, ref.Area)
			}
		}
	}
	return t
}

// satisfies проверяет географический предикат уровня для пары район/зона
func (r tierRule) satisfies(district, area string, targets geoTargets) bool {
	switch r.locality {
	case localityDistrict:
		return geo.MatchesAnyDistrict(district, targets.districts)
	case localityArea:
		return geo.MatchesAnyArea(district, area, targets.areas)
	case localityAny:
		return true
	}
	return false
}
