package editor

import "sort"

// OtherSentinel is the taxonomy placeholder meaning the effective value is
// supplied by free text. It is an editor contract that this sentinel is
// resolved before persistence and never stored.
const OtherSentinel = "Other"

// categorySubcategories is the fixed two-level taxonomy. Labels must stay
// verbatim for UI parity with the dashboard.
var categorySubcategories = map[string][]string{
	"Technology": {
		"Frontend Development",
		"Backend Development",
		"Full Stack Development",
		"Mobile Development",
		"DevOps",
		"Data Science",
		"Machine Learning",
		"QA Testing",
		"UI/UX Design",
		"Cybersecurity",
	},
	"Finance": {
		"Accounting",
		"Investment Banking",
		"Financial Analysis",
		"Wealth Management",
		"Risk Management",
		"Tax Planning",
		"Corporate Finance",
		"Financial Planning",
	},
	"Healthcare": {
		"Nursing",
		"Medical Doctor",
		"Healthcare Administration",
		"Physical Therapy",
		"Mental Health",
		"Dentistry",
		"Pharmacy",
		"Medical Research",
	},
	"Education": {
		"Teaching",
		"Administration",
		"Curriculum Development",
		"Educational Technology",
		"Special Education",
		"Higher Education",
		"Early Childhood Education",
		"Corporate Training",
	},
	"Marketing": {
		"Digital Marketing",
		"Content Marketing",
		"SEO/SEM",
		"Social Media Marketing",
		"Market Research",
		"Brand Management",
		"Public Relations",
		"Email Marketing",
	},
	"Sales": {
		"Business Development",
		"Account Management",
		"Inside Sales",
		"Outside Sales",
		"Sales Operations",
		"Sales Management",
		"Retail Sales",
		"Technical Sales",
	},
	"Design": {
		"Graphic Design",
		"UX/UI Design",
		"Product Design",
		"Web Design",
		"Industrial Design",
		"Fashion Design",
		"Interior Design",
		"Brand Design",
	},
	"Operations": {
		"Project Management",
		"Supply Chain",
		"Logistics",
		"Facilities Management",
		"Quality Assurance",
		"Process Improvement",
		"Business Operations",
		"Office Management",
	},
}

// Categories returns the category options in display order: the fixed
// taxonomy sorted alphabetically, with the Other sentinel trailing.
func Categories() []string {
	cats := make([]string, 0, len(categorySubcategories)+1)
	for c := range categorySubcategories {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return append(cats, OtherSentinel)
}

// SubcategoriesFor returns the subcategory options for a selected category,
// sorted, with the Other sentinel trailing. An empty or Other category
// offers only the sentinel.
func SubcategoriesFor(category string) []string {
	subs, ok := categorySubcategories[category]
	if !ok {
		return []string{OtherSentinel}
	}
	out := make([]string, len(subs))
	copy(out, subs)
	sort.Strings(out)
	return append(out, OtherSentinel)
}

// IsKnownCategory reports whether the value is part of the fixed taxonomy
// (the Other sentinel is not).
func IsKnownCategory(category string) bool {
	_, ok := categorySubcategories[category]
	return ok
}

// IsKnownSubcategory reports whether the value belongs to the given
// category's fixed list.
func IsKnownSubcategory(category, sub string) bool {
	for _, s := range categorySubcategories[category] {
		if s == sub {
			return true
		}
	}
	return false
}
