package usecase

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mbti-travel-planner/internal/domain"
	"github.com/mbti-travel-planner/internal/pkg/errors"
	"github.com/mbti-travel-planner/internal/pkg/geo"
)

// ValidationEngine - независимый аудит готового или частичного маршрута.
// Кодирует те же бизнес-правила, что движок назначения, но перепроверяет их
// заново за один проход и не изменяет маршрут. Нарушения правил - данные
// отчёта, а не ошибки: быстрый отказ только на отсутствующем маршруте.
type ValidationEngine struct {
	logger *zap.Logger
}

// NewValidationEngine - создание нового ValidationEngine
func NewValidationEngine(logger *zap.Logger) *ValidationEngine {
	return &ValidationEngine{logger: logger}
}

// Validate выполняет полный аудит маршрута и строит отчёт
func (v *ValidationEngine) Validate(it *domain.Itinerary) (*domain.ValidationReport, error) {
	if it == nil {
		return nil, errors.ErrEmptyItinerary
	}

	var issues []domain.ValidationIssue
	issues = append(issues, v.checkStructure(it)...)

	for i := range it.Days {
		day := &it.Days[i]
		dayNumber := i + 1
		issues = append(issues, v.checkDaySessions(it, day, dayNumber)...)
		issues = append(issues, v.checkDayMeals(day, dayNumber)...)
	}

	issues = append(issues, v.checkUniqueness(it)...)

	report := buildReport(issues)
	v.logger.Debug("Itinerary validated",
		zap.String("personality", it.MBTIPersonality),
		zap.Bool("is_valid", report.IsValid),
		zap.Int("errors", report.ErrorCount),
		zap.Int("warnings", report.WarningCount))
	return report, nil
}

// checkStructure - базовая структурная целостность
func (v *ValidationEngine) checkStructure(it *domain.Itinerary) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	code := it.MBTIPersonality
	if len(domain.NormalizePersonality(code)) != 4 || !domain.IsValidPersonality(code) {
		issues = append(issues, domain.ValidationIssue{
			Severity:   domain.SeverityError,
			Category:   domain.CategoryDataIntegrity,
			Message:    fmt.Sprintf("Personality code %q is not a valid 4-letter MBTI type", code),
			Location:   "mbti_personality",
			Suggestion: "Use one of the 16 MBTI personality types",
			Rule:       domain.RuleStructure,
		})
	}

	for i := range it.Days {
		if got := it.Days[i].DayNumber; got != i+1 {
			issues = append(issues, domain.ValidationIssue{
				Severity: domain.SeverityWarning,
				Category: domain.CategoryDataIntegrity,
				Message:  fmt.Sprintf("Day %d carries day_number %d", i+1, got),
				Location: fmt.Sprintf("day_%d", i+1),
				Rule:     domain.RuleStructure,
			})
		}
	}
	return issues
}

// checkDaySessions проверяет покрытие, часы работы, флаг соответствия MBTI
// и географическую когерентность слотов сессий одного дня
func (v *ValidationEngine) checkDaySessions(it *domain.Itinerary, day *domain.DayPlan, dayNumber int) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	for _, sessionType := range domain.SessionOrder {
		slot := day.Session(sessionType)
		path := domain.SessionPath(dayNumber, sessionType)

		if !slot.Assigned() {
			issues = append(issues, domain.ValidationIssue{
				Severity:   domain.SeverityError,
				Category:   domain.CategoryDataIntegrity,
				Message:    fmt.Sprintf("No tourist spot assigned to %s", path),
				Location:   path,
				Suggestion: "Supply more candidates or relax the operating-hours constraint",
				Rule:       domain.RuleMissingAssignment,
			})
			continue
		}

		spot := slot.Spot
		window := domain.SessionWindow(sessionType)

		if !spot.OpenDuring(window) {
			issues = append(issues, domain.ValidationIssue{
				Severity: domain.SeverityError,
				Category: domain.CategoryOperatingHours,
				Message: fmt.Sprintf("%s is not open during the %s window (%s)",
					spot.Name, sessionType, window),
				Location:   path,
				Suggestion: fmt.Sprintf("Replace with a spot open during %s", window),
				EntityID:   spot.ID,
				EntityName: spot.Name,
				Rule:       domain.RuleOperatingHours,
			})
		}

		// Хранимый флаг должен совпадать со свежим пересчётом
		recomputed := spot.MatchesPersonality(it.MBTIPersonality)
		if spot.MBTIMatch != recomputed {
			issues = append(issues, domain.ValidationIssue{
				Severity: domain.SeverityWarning,
				Category: domain.CategoryPersonalityAlignment,
				Message: fmt.Sprintf("%s: stored mbti_match=%t disagrees with recomputed membership=%t for %s",
					spot.Name, spot.MBTIMatch, recomputed, it.MBTIPersonality),
				Location:   path,
				Suggestion: "Recompute the mbti_match flag from matched_mbti",
				EntityID:   spot.ID,
				EntityName: spot.Name,
				Rule:       domain.RulePersonalityFlag,
			})
		} else if !recomputed {
			issues = append(issues, domain.ValidationIssue{
				Severity: domain.SeverityInfo,
				Category: domain.CategoryPersonalityAlignment,
				Message: fmt.Sprintf("%s was assigned from the fallback pool for %s",
					spot.Name, it.MBTIPersonality),
				Location:   path,
				EntityID:   spot.ID,
				EntityName: spot.Name,
				Rule:       domain.RulePersonalityMiss,
			})
		}

		// География относительно референсных слотов того же дня:
		// рекомендательная проверка, never error
		issues = append(issues, v.checkSessionGeography(day, sessionType, slot, path)...)
	}
	return issues
}

// checkSessionGeography сверяет район/зону слота с референсными слотами дня
func (v *ValidationEngine) checkSessionGeography(day *domain.DayPlan, sessionType domain.SessionType, slot *domain.SessionSlot, path string) []domain.ValidationIssue {
	refs := sessionReferenceSpots(day, sessionType)
	targets := collectTargets(refs...)
	if len(targets.districts) == 0 {
		return nil
	}

	spot := slot.Spot
	if geo.MatchesAnyDistrict(spot.District, targets.districts) {
		return nil
	}

	if geo.MatchesAnyArea(spot.District, spot.Area, targets.areas) {
		return []domain.ValidationIssue{{
			Severity: domain.SeverityInfo,
			Category: domain.CategoryAreaMatching,
			Message: fmt.Sprintf("%s is outside the day's districts (%v) but within the same area",
				spot.Name, targets.districts),
			Location:   path,
			EntityID:   spot.ID,
			EntityName: spot.Name,
			Rule:       domain.RuleAreaCoherence,
		}}
	}

	return []domain.ValidationIssue{{
		Severity: domain.SeverityWarning,
		Category: domain.CategoryDistrictMatching,
		Message: fmt.Sprintf("%s (%s) does not match the day's districts %v",
			spot.Name, spot.District, targets.districts),
		Location:   path,
		Suggestion: fmt.Sprintf("Prefer a spot in %v to reduce travel", targets.districts),
		EntityID:   spot.ID,
		EntityName: spot.Name,
		Rule:       domain.RuleDistrictCoherence,
	}}
}

// checkDayMeals проверяет слоты приёмов пищи одного дня
func (v *ValidationEngine) checkDayMeals(day *domain.DayPlan, dayNumber int) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	for _, mealType := range domain.MealOrder {
		slot := day.Meal(mealType)
		path := domain.MealPath(dayNumber, mealType)

		if !slot.Assigned() {
			issues = append(issues, domain.ValidationIssue{
				Severity:   domain.SeverityError,
				Category:   domain.CategoryDataIntegrity,
				Message:    fmt.Sprintf("No restaurant assigned to %s", path),
				Location:   path,
				Suggestion: "Supply more restaurant candidates for this meal window",
				Rule:       domain.RuleMissingAssignment,
			})
			continue
		}

		r := slot.Restaurant
		window := domain.MealWindow(mealType)

		if !r.OpenDuring(window) {
			issues = append(issues, domain.ValidationIssue{
				Severity: domain.SeverityError,
				Category: domain.CategoryRestaurantHours,
				Message: fmt.Sprintf("%s is not open during the %s window (%s)",
					r.Name, mealType, window),
				Location:   path,
				Suggestion: fmt.Sprintf("Replace with a restaurant open during %s", window),
				EntityID:   r.ID,
				EntityName: r.Name,
				Rule:       domain.RuleOperatingHours,
			})
		}

		if !r.ServesMeal(mealType) {
			issues = append(issues, domain.ValidationIssue{
				Severity: domain.SeverityWarning,
				Category: domain.CategoryDataIntegrity,
				Message: fmt.Sprintf("%s does not list %s among its meal types",
					r.Name, mealType),
				Location:   path,
				EntityID:   r.ID,
				EntityName: r.Name,
				Rule:       domain.RuleMealTypeMismatch,
			})
		}

		refs := mealReferenceSpots(day, mealType)
		targets := collectTargets(refs...)
		if len(targets.districts) > 0 && !geo.MatchesAnyDistrict(r.District, targets.districts) {
			severity := domain.SeverityWarning
			message := fmt.Sprintf("%s (%s) is outside the relevant session districts %v",
				r.Name, r.District, targets.districts)
			if geo.MatchesAnyArea(r.District, "", targets.areas) {
				severity = domain.SeverityInfo
				message = fmt.Sprintf("%s is outside the session districts %v but within the same area",
					r.Name, targets.districts)
			}
			issues = append(issues, domain.ValidationIssue{
				Severity:   severity,
				Category:   domain.CategoryRestaurantDistricts,
				Message:    message,
				Location:   path,
				Suggestion: fmt.Sprintf("Prefer a restaurant in %v", targets.districts),
				EntityID:   r.ID,
				EntityName: r.Name,
				Rule:       domain.RuleDistrictCoherence,
			})
		}
	}
	return issues
}

// checkUniqueness - один проход по 9 идентификаторам достопримечательностей
// и один по 9 идентификаторам ресторанов; по одной ошибке на повторную пару
// с указанием обоих мест
func (v *ValidationEngine) checkUniqueness(it *domain.Itinerary) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	for _, d := range AuditSpotUniqueness(it) {
		issues = append(issues, domain.ValidationIssue{
			Severity: domain.SeverityError,
			Category: domain.CategoryUniqueness,
			Message: fmt.Sprintf("Tourist spot %s (%s) at %s is already assigned at %s",
				d.Name, d.ID, d.Location, d.FirstLocation),
			Location:   d.Location,
			Suggestion: fmt.Sprintf("Replace the assignment at %s with an unused spot", d.Location),
			EntityID:   d.ID,
			EntityName: d.Name,
			Rule:       domain.RuleDuplicateAssignment,
		})
	}

	for _, d := range AuditRestaurantUniqueness(it) {
		issues = append(issues, domain.ValidationIssue{
			Severity: domain.SeverityError,
			Category: domain.CategoryUniqueness,
			Message: fmt.Sprintf("Restaurant %s (%s) at %s is already assigned at %s",
				d.Name, d.ID, d.Location, d.FirstLocation),
			Location:   d.Location,
			Suggestion: fmt.Sprintf("Replace the assignment at %s with an unused restaurant", d.Location),
			EntityID:   d.ID,
			EntityName: d.Name,
			Rule:       domain.RuleDuplicateAssignment,
		})
	}
	return issues
}

// sessionReferenceSpots - референсные сессии для проверки географии:
// день - утро; вечер - утро и день
func sessionReferenceSpots(day *domain.DayPlan, t domain.SessionType) []*domain.TouristSpot {
	switch t {
	case domain.SessionAfternoon:
		return []*domain.TouristSpot{day.Morning.Spot}
	case domain.SessionNight:
		return []*domain.TouristSpot{day.Morning.Spot, day.Afternoon.Spot}
	}
	return nil
}

// mealReferenceSpots - референсные сессии для приёмов пищи:
// завтрак - утро; обед - утро и день; ужин - день и вечер
func mealReferenceSpots(day *domain.DayPlan, t domain.MealType) []*domain.TouristSpot {
	switch t {
	case domain.MealBreakfast:
		return []*domain.TouristSpot{day.Morning.Spot}
	case domain.MealLunch:
		return []*domain.TouristSpot{day.Morning.Spot, day.Afternoon.Spot}
	case domain.MealDinner:
		return []*domain.TouristSpot{day.Afternoon.Spot, day.Night.Spot}
	}
	return nil
}

// buildReport агрегирует проблемы в отчёт: счётчики, сводка по категориям и
// серьёзности, дедуплицированный список предложений
func buildReport(issues []domain.ValidationIssue) *domain.ValidationReport {
	report := &domain.ValidationReport{
		Issues:      issues,
		GeneratedAt: time.Now().UTC(),
		Summary: domain.ReportSummary{
			ByCategory: make(map[domain.IssueCategory]int),
			BySeverity: make(map[domain.Severity]int),
		},
	}

	seenSuggestion := make(map[string]struct{})
	for _, issue := range issues {
		report.Summary.ByCategory[issue.Category]++
		report.Summary.BySeverity[issue.Severity]++

		switch issue.Severity {
		case domain.SeverityError:
			report.ErrorCount++
		case domain.SeverityWarning:
			report.WarningCount++
		case domain.SeverityInfo:
			report.InfoCount++
		}

		if issue.Suggestion == "" {
			continue
		}
		if _, seen := seenSuggestion[issue.Suggestion]; seen {
			continue
		}
		seenSuggestion[issue.Suggestion] = struct{}{}
		report.Suggestions = append(report.Suggestions, issue.Suggestion)
	}

	report.IsValid = report.ErrorCount == 0
	return report
}
