package domain

import "strings"

// mbtiTypes - все 16 типов личности MBTI
var mbtiTypes = map[string]struct{}{
	"INTJ": {}, "INTP": {}, "ENTJ": {}, "ENTP": {},
	"INFJ": {}, "INFP": {}, "ENFJ": {}, "ENFP": {},
	"ISTJ": {}, "ISFJ": {}, "ESTJ": {}, "ESFJ": {},
	"ISTP": {}, "ISFP": {}, "ESTP": {}, "ESFP": {},
}

// NormalizePersonality приводит код MBTI к каноническому виду
func NormalizePersonality(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidPersonality проверяет, что код является одним из 16 типов MBTI
func IsValidPersonality(code string) bool {
	_, ok := mbtiTypes[NormalizePersonality(code)]
	return ok
}

// PersonalityTypes возвращает список всех типов MBTI в фиксированном порядке
func PersonalityTypes() []string {
	return []string{
		"ENFJ", "ENFP", "ENTJ", "ENTP",
		"ESFJ", "ESFP", "ESTJ", "ESTP",
		"INFJ", "INFP", "INTJ", "INTP",
		"ISFJ", "ISFP", "ISTJ", "ISTP",
	}
}
