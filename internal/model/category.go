package model

// Categories is the fixed category set, in declaration order. The order is
// load-bearing: it fixes the column-block layout of monthly sheets and the
// dashboard columns.
var Categories = []string{
	"Food",
	"Transportation",
	"Entertainment",
	"Bills & Utilities & Accomodation",
	"Personal Items",
	"Income",
	"Gifts",
	"Projects",
	"Holidays",
	"Other",
}

// CategoryKeys maps single-character keys to category labels. '0' always
// resolves to "Other".
var CategoryKeys = map[rune]string{
	'1': "Food",
	'2': "Transportation",
	'3': "Entertainment",
	'4': "Bills & Utilities & Accomodation",
	'5': "Personal Items",
	'6': "Income",
	'7': "Gifts",
	'8': "Projects",
	'9': "Holidays",
	'0': "Other",
}

// CategoryIndex returns the position of name in Categories, or -1.
func CategoryIndex(name string) int {
	for i, c := range Categories {
		if c == name {
			return i
		}
	}
	return -1
}

// ValidCategory reports whether name is one of the fixed categories.
func ValidCategory(name string) bool {
	return CategoryIndex(name) >= 0
}

// CategoryForKey resolves a key press to a category label. Unknown keys
// resolve to "Other".
func CategoryForKey(key rune) string {
	if c, ok := CategoryKeys[key]; ok {
		return c
	}
	return "Other"
}
