// Package format renders vacancies as aligned plain-text columns.
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"vacancy-finder/internal/domain"

	"github.com/mattn/go-runewidth"
)

// MaxNameWidth caps the name column; longer titles are cut with "…".
const MaxNameWidth = 48

// Salary renders a range as "100 000 - 150 000 RUR", "from 90 000 USD",
// "up to 5 000" or "not specified".
func Salary(s domain.SalaryRange) string {
	cur := s.CurrencyOr("")
	var out string
	switch {
	case s.From == 0 && s.To == 0:
		return "not specified"
	case s.From > 0 && s.To > 0 && s.From != s.To:
		out = Number(s.From) + " - " + Number(s.To)
	case s.From > 0:
		out = "from " + Number(s.From)
	default:
		out = "up to " + Number(s.To)
	}
	if cur != "" {
		out += " " + cur
	}
	return out
}

// Number groups thousands with spaces: 1234567 -> "1 234 567".
func Number(n int) string {
	if n < 0 {
		return "-" + Number(-n)
	}
	s := strconv.Itoa(n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Table writes one row per vacancy: index, name, salary, url.
// Columns are padded by display width so Cyrillic and CJK titles line up.
func Table(w io.Writer, vs []domain.Vacancy) error {
	rows := make([][]string, 0, len(vs))
	for i, v := range vs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			runewidth.Truncate(v.Name(), MaxNameWidth, "…"),
			Salary(v.Salary()),
			v.URL(),
		})
	}

	widths := make([]int, 4)
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for _, row := range rows {
		var sb strings.Builder
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(cell)
			if i < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
			}
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// List writes "- name (url)" lines.
func List(w io.Writer, vs []domain.Vacancy) error {
	for _, v := range vs {
		if _, err := fmt.Fprintf(w, "- %s (%s)\n", v.Name(), v.URL()); err != nil {
			return err
		}
	}
	return nil
}
