package domain

import "time"

// Severity - серьёзность проблемы валидации
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IssueCategory - категория проблемы валидации
type IssueCategory string

const (
	CategoryOperatingHours       IssueCategory = "operating_hours"
	CategoryDistrictMatching     IssueCategory = "district_matching"
	CategoryAreaMatching         IssueCategory = "area_matching"
	CategoryUniqueness           IssueCategory = "uniqueness"
	CategoryPersonalityAlignment IssueCategory = "personality_alignment"
	CategoryRestaurantHours      IssueCategory = "restaurant_hours"
	CategoryRestaurantDistricts  IssueCategory = "restaurant_districts"
	CategoryDataIntegrity        IssueCategory = "data_integrity"
)

// IssueCategories - закрытый список категорий в фиксированном порядке
var IssueCategories = []IssueCategory{
	CategoryOperatingHours,
	CategoryDistrictMatching,
	CategoryAreaMatching,
	CategoryUniqueness,
	CategoryPersonalityAlignment,
	CategoryRestaurantHours,
	CategoryRestaurantDistricts,
	CategoryDataIntegrity,
}

// Теги нарушенных правил
const (
	RuleMissingAssignment   = "missing_assignment"
	RuleOperatingHours      = "operating_hours_breach"
	RuleDuplicateAssignment = "duplicate_assignment"
	RulePersonalityFlag     = "personality_flag_mismatch"
	RulePersonalityMiss     = "personality_not_matched"
	RuleDistrictCoherence   = "district_coherence"
	RuleAreaCoherence       = "area_coherence"
	RuleMealTypeMismatch    = "meal_type_mismatch"
	RuleStructure           = "structural_integrity"
)

// ValidationIssue - одна найденная проблема
type ValidationIssue struct {
	Severity   Severity      `json:"severity"`
	Category   IssueCategory `json:"category"`
	Message    string        `json:"message"`
	Location   string        `json:"location"`
	Suggestion string        `json:"suggestion,omitempty"`
	EntityID   string        `json:"entity_id,omitempty"`
	EntityName string        `json:"entity_name,omitempty"`
	Rule       string        `json:"rule,omitempty"`
}

// ReportSummary - производная сводка отчёта
type ReportSummary struct {
	ByCategory map[IssueCategory]int `json:"by_category"`
	BySeverity map[Severity]int      `json:"by_severity"`
}

// ValidationReport - результат аудита маршрута
type ValidationReport struct {
	IsValid      bool              `json:"is_valid"`
	ErrorCount   int               `json:"error_count"`
	WarningCount int               `json:"warning_count"`
	InfoCount    int               `json:"info_count"`
	Issues       []ValidationIssue `json:"issues"`
	GeneratedAt  time.Time         `json:"generated_at"`
	Summary      ReportSummary     `json:"summary"`
	Suggestions  []string          `json:"suggestions,omitempty"`
}

// DetailedValidationReport - отчёт с метриками покрытия и когерентности
type DetailedValidationReport struct {
	ValidationReport

	// Доли заполненных слотов (0..1)
	SessionCoverage float64 `json:"session_coverage"`
	MealCoverage    float64 `json:"meal_coverage"`

	// Доля сессий, назначенных из совпадающего пула MBTI (0..1)
	MBTIAlignment float64 `json:"mbti_alignment"`

	// Географическая когерентность по дням (0..1)
	DayCoherence [3]float64 `json:"day_coherence"`
}

// Correction - предложение исправления для группы проблем
type Correction struct {
	Location     string   `json:"location"`
	Rule         string   `json:"rule,omitempty"`
	Description  string   `json:"description"`
	Alternatives []string `json:"alternatives,omitempty"`
}
