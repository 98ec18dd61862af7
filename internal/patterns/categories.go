package patterns

import "regexp"

// CategoryRule associates one category with the matchers that claim a
// description for it.
type CategoryRule struct {
	Category string
	Matchers []*regexp.Regexp
}

// CategoryRules is evaluated in order against a description; the first rule
// with a matching pattern wins, so earlier rules deliberately shadow later
// ones ("UBER EATS" is Food, bare "UBER" is Transportation).
var CategoryRules = []CategoryRule{
	{
		Category: "Food",
		Matchers: compile(
			`TESCO`, `SAINSBURY`, `ASDA`, `ALDI`, `LIDL`, `MORRISONS`,
			`WAITROSE`, `CO-OP`, `FOOD`, `GROCERY`,
			`RESTAURANT`, `CAFE`, `COFFEE`, `STARBUCKS`, `COSTA`,
			`MCDONALDS`, `KFC`, `TAKEAWAY`, `DELIVEROO`, `JUST EAT`, `UBER EATS`,
		),
	},
	{
		Category: "Transportation",
		Matchers: compile(
			`TRANSPORT`, `TFL`, `TRAIN`, `BUS`, `UBER`, `TAXI`,
			`PARKING`, `FUEL`, `PETROL`, `SHELL`, `BP`, `ESSO`,
		),
	},
	{
		Category: "Entertainment",
		Matchers: compile(
			`CINEMA`, `NETFLIX`, `SPOTIFY`, `AMAZON PRIME`,
			`THEATRE`, `TICKET`, `GAME`, `STEAM`,
		),
	},
	{
		Category: "Bills & Utilities & Accomodation",
		Matchers: compile(
			`WATER`, `ELECTRIC`, `GAS`, `ENERGY`, `COUNCIL TAX`,
			`PHONE`, `MOBILE`, `INTERNET`, `BROADBAND`, `TV LICENSE`,
			`RENT`, `MORTGAGE`,
		),
	},
	{
		Category: "Income",
		Matchers: compile(`SALARY`, `DEPOSIT`, `FASTER PAYMENT FROM`),
	},
	{
		Category: "Personal Items",
		Matchers: compile(
			`AMAZON`, `EBAY`, `ARGOS`, `BOOTS`, `SUPERDRUG`,
			`NEXT`, `PRIMARK`, `H&M`, `ASOS`,
		),
	},
}

// SuggestCategory returns the first category whose rule matches description
// (case-insensitive), or "Other". Pure function; declaration order of
// CategoryRules resolves overlaps.
func SuggestCategory(description string) string {
	for _, rule := range CategoryRules {
		for _, re := range rule.Matchers {
			if re.MatchString(description) {
				return rule.Category
			}
		}
	}
	return "Other"
}

func compile(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		res[i] = regexp.MustCompile(`(?i)` + e)
	}
	return res
}
