package core

// Category is the intent a free-text query is classified into.
// The set is fixed at process start; the Russian labels double as the
// label set handed to the zero-shot fallback classifier.
type Category int

const (
	// CategoryUnclassified is the admit-defeat bucket.
	CategoryUnclassified Category = iota
	// CategoryEmployeeSearch covers questions about people.
	CategoryEmployeeSearch
	// CategoryEventInfo covers questions about scheduled events.
	CategoryEventInfo
	// CategoryTaskInfo covers questions about work tasks.
	CategoryTaskInfo
	// CategorySocialActivity covers questions about social activities.
	CategorySocialActivity
	// CategoryGreeting covers salutations and help requests.
	CategoryGreeting
	// CategoryGeneralInfo covers company knowledge base questions.
	CategoryGeneralInfo
)

// Categories enumerates the scoreable categories in tie-break order.
// CategoryUnclassified is deliberately absent: it is never scored, only
// assigned when confidence stays below the final floor.
var Categories = []Category{
	CategoryEmployeeSearch,
	CategoryEventInfo,
	CategoryTaskInfo,
	CategorySocialActivity,
	CategoryGreeting,
	CategoryGeneralInfo,
}

// Label returns the Russian label of the category.
func (c Category) Label() string {
	switch c {
	case CategoryEmployeeSearch:
		return "поиск сотрудника"
	case CategoryEventInfo:
		return "информация о мероприятии"
	case CategoryTaskInfo:
		return "информация о задаче"
	case CategorySocialActivity:
		return "социальные активности"
	case CategoryGreeting:
		return "приветствие"
	case CategoryGeneralInfo:
		return "общая информация"
	}
	return "неопределенный запрос"
}

// CategoryFromLabel maps a label back to its Category.
// Unknown labels map to CategoryUnclassified.
func CategoryFromLabel(label string) Category {
	for _, c := range Categories {
		if c.Label() == label {
			return c
		}
	}
	return CategoryUnclassified
}

// CategoryLabels returns the labels of all categories, including the
// unclassified one, in enumeration order. This is the full label set
// offered to the fallback classifier.
func CategoryLabels() []string {
	labels := make([]string, 0, len(Categories)+1)
	for _, c := range Categories {
		labels = append(labels, c.Label())
	}
	labels = append(labels, CategoryUnclassified.Label())
	return labels
}
