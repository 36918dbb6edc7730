package models

// ServiceCategories - фиксированный список категорий каталога.
// Идентификаторы совпадают с теми, что использует фронтенд.
var ServiceCategories = []string{
	"it",
	"electricity",
	"plumbing",
	"cleaning",
	"gardening",
	"delivery",
	"beauty",
	"painting",
	"renovation",
	"automotive",
	"photo",
	"catering",
}

// IsValidCategory проверяет категорию против фиксированного списка
func IsValidCategory(category string) bool {
	for _, c := range ServiceCategories {
		if c == category {
			return true
		}
	}
	return false
}
