// Package geo - чистые функции географического сопоставления районов и зон
// Гонконга. Пакет не хранит состояния: таблицы соседних районов и состава зон
// фиксированы на этапе компиляции.
package geo

import "strings"

// relatedDistricts - соседние (коммерчески связанные) районы.
// Таблица симметрична: связь объявляется с обеих сторон.
var relatedDistricts = map[string][]string{
	"central":       {"admiralty", "sheung wan", "mid-levels"},
	"admiralty":     {"central", "wan chai"},
	"sheung wan":    {"central"},
	"mid-levels":    {"central"},
	"wan chai":      {"admiralty", "causeway bay"},
	"causeway bay":  {"wan chai", "happy valley"},
	"happy valley":  {"causeway bay"},
	"tsim sha tsui": {"jordan", "hung hom"},
	"jordan":        {"tsim sha tsui", "yau ma tei"},
	"yau ma tei":    {"jordan", "mong kok"},
	"mong kok":      {"yau ma tei", "sham shui po"},
	"sham shui po":  {"mong kok"},
	"hung hom":      {"tsim sha tsui"},
	"sha tin":       {"tai po"},
	"tai po":        {"sha tin"},
	"tsuen wan":     {"kwai chung"},
	"kwai chung":    {"tsuen wan"},
}

// areaDistricts - состав зон: зона -> входящие в неё районы
var areaDistricts = map[string][]string{
	"hong kong island": {
		"central", "admiralty", "sheung wan", "mid-levels", "wan chai",
		"causeway bay", "happy valley", "stanley", "aberdeen", "the peak",
	},
	"kowloon": {
		"tsim sha tsui", "jordan", "yau ma tei", "mong kok", "sham shui po",
		"hung hom", "kowloon city", "wong tai sin",
	},
	"new territories": {
		"sha tin", "tai po", "tsuen wan", "kwai chung", "tuen mun",
		"yuen long", "sai kung",
	},
	"islands": {
		"lantau", "tung chung", "cheung chau", "lamma island",
	},
}

// Значения приоритета для ранжирования кандидатов
const (
	PriorityFirstTargetDistrict = 6
	PriorityLaterTargetDistrict = 5
	PriorityRelatedDistrict     = 4
	PrioritySameArea            = 3
	PriorityAreaRelated         = 2
	PriorityNone                = 0
)

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, " district")
	return s
}

// SameDistrict - точное совпадение районов
func SameDistrict(a, b string) bool {
	na, nb := normalize(a), normalize(b)
	return na != "" && na == nb
}

// SameArea - точное совпадение зон
func SameArea(a, b string) bool {
	na, nb := normalize(a), normalize(b)
	return na != "" && na == nb
}

// RelatedDistricts проверяет соседство районов по фиксированной таблице
func RelatedDistricts(a, b string) bool {
	na, nb := normalize(a), normalize(b)
	if na == "" || nb == "" || na == nb {
		return false
	}
	for _, rel := range relatedDistricts[na] {
		if rel == nb {
			return true
		}
	}
	return false
}

// DistrictInArea проверяет принадлежность района зоне
func DistrictInArea(district, area string) bool {
	nd, na := normalize(district), normalize(area)
	for _, d := range areaDistricts[na] {
		if d == nd {
			return true
		}
	}
	return false
}

// MatchesAnyDistrict - совпадение района кандидата с одним из целевых
func MatchesAnyDistrict(district string, targets []string) bool {
	for _, t := range targets {
		if SameDistrict(district, t) {
			return true
		}
	}
	return false
}

// MatchesAnyArea - попадание кандидата в одну из целевых зон: либо точное
// совпадение зоны, либо членство района кандидата в целевой зоне
// (расширение для уровней same-area, когда точных совпадений мало)
func MatchesAnyArea(district, area string, targetAreas []string) bool {
	for _, t := range targetAreas {
		if SameArea(area, t) || DistrictInArea(district, t) {
			return true
		}
	}
	return false
}

// Priority ранжирует кандидата относительно упорядоченных целевых районов и
// зон: район первой цели > район последующих целей > соседний район >
// та же зона > район, входящий в целевую зону > без совпадения.
// Используется для ранжирования, а не для бинарной фильтрации.
func Priority(district, area string, targetDistricts, targetAreas []string) int {
	for i, t := range targetDistricts {
		if SameDistrict(district, t) {
			if i == 0 {
				return PriorityFirstTargetDistrict
			}
			return PriorityLaterTargetDistrict
		}
	}
	for _, t := range targetDistricts {
		if RelatedDistricts(district, t) {
			return PriorityRelatedDistrict
		}
	}
	for _, t := range targetAreas {
		if SameArea(area, t) {
			return PrioritySameArea
		}
	}
	for _, t := range targetAreas {
		if DistrictInArea(district, t) {
			return PriorityAreaRelated
		}
	}
	return PriorityNone
}

// Place - пара район/зона уже назначенной сущности
type Place struct {
	District string
	Area     string
}

// Coherence оценивает географическую связность набора назначений одного дня
// (0..1). Доля сущностей в доминирующем районе; совпадение только зоны
// учитывается с половинным весом. Диагностическая метрика, на назначение
// не влияет.
func Coherence(places []Place) float64 {
	if len(places) <= 1 {
		return 1.0
	}

	// Доминирующий район: самый частый, при равенстве - первый встреченный
	counts := make(map[string]int)
	order := make([]string, 0, len(places))
	for _, p := range places {
		d := normalize(p.District)
		if d == "" {
			continue
		}
		if _, seen := counts[d]; !seen {
			order = append(order, d)
		}
		counts[d]++
	}
	if len(order) == 0 {
		return 0
	}

	dominant := order[0]
	for _, d := range order {
		if counts[d] > counts[dominant] {
			dominant = d
		}
	}

	dominantArea := ""
	for _, p := range places {
		if normalize(p.District) == dominant {
			dominantArea = normalize(p.Area)
			break
		}
	}

	var score float64
	for _, p := range places {
		switch {
		case normalize(p.District) == dominant:
			score += 1.0
		case dominantArea != "" && normalize(p.Area) == dominantArea:
			score += 0.5
		case RelatedDistricts(p.District, dominant):
			score += 0.5
		}
	}
	return score / float64(len(places))
}
