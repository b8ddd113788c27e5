package domain

import (
	"cmp"
	"slices"
)

// Compare orders vacancies by the upper salary bound alone.
func Compare(a, b Vacancy) int {
	return cmp.Compare(a.salary.To, b.salary.To)
}

func (v Vacancy) Compare(other Vacancy) int { return Compare(v, other) }

// Less reports whether a pays less than b at the top of its range.
func (v Vacancy) Less(other Vacancy) bool { return Compare(v, other) < 0 }

// Equal reports whether both vacancies share the same upper salary bound.
// Name, URL and snippet are ignored.
func (v Vacancy) Equal(other Vacancy) bool { return Compare(v, other) == 0 }

// SortBySalary sorts vs in place. Ties keep their input order.
func SortBySalary(vs []Vacancy, desc bool) {
	slices.SortStableFunc(vs, func(a, b Vacancy) int {
		if desc {
			return Compare(b, a)
		}
		return Compare(a, b)
	})
}
