package mensa

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// allergenRe matches the comma-separated numeric code list embedded in the
// free-text allergen line, e.g. "Allergene: 1, 7, 9"
var allergenRe = regexp.MustCompile(`Allergene:?\s*([0-9][0-9, ]*)`)

// ParseMenu extracts the menu items for one day from the weekly menu page.
// The page is organized into day-tabs whose labels carry a "D.M." date
// without a year, so only day and month are compared; the caller resolves
// the year before invoking. A date matching no tab yields an empty list.
func ParseMenu(r io.Reader, date time.Time) ([]MenuItem, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	tabID := findDayTab(doc, date)
	if tabID == "" {
		return nil, nil
	}

	var items []MenuItem

	doc.Find(fmt.Sprintf("#menu-plan-%s .menu-item", tabID)).Each(func(i int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Find(".menu-title").Text())
		if title == "" {
			// Malformed rows without a title are dropped on purpose
			return
		}

		item := MenuItem{
			Title:       title,
			Description: strings.TrimSpace(sel.Find(".menu-description").Text()),
			Provenance:  strings.TrimSpace(sel.Find(".menu-provenance").Text()),
			Vegan:       sel.Find(".menu-labels .vegan").Length() > 0,
			Vegetarian:  sel.Find(".menu-labels .vegetarian").Length() > 0,
		}

		// The two price tiers are tagged INT (students/staff) and EXT
		sel.Find(".menu-prices .price").Each(func(j int, price *goquery.Selection) {
			tier := strings.TrimSpace(price.Find(".desc").Text())
			val := strings.TrimSpace(price.Find(".val").Text())
			val = strings.TrimSpace(strings.TrimPrefix(val, "CHF"))

			switch tier {
			case "INT":
				item.Price.Student = val
			case "EXT":
				item.Price.Regular = val
			}
		})

		item.Allergens = parseAllergens(sel.Find(".allergen-info").Text())
		item.Nutrition = parseNutrition(sel)

		items = append(items, item)
	})

	return items, nil
}

// findDayTab locates the tab whose date label matches the target date and
// returns the tab identifier from the label's "for" attribute (e.g.
// "mp-tab2" -> "tab2"). Returns "" when no tab matches.
func findDayTab(doc *goquery.Document, date time.Time) string {
	var tabID string

	doc.Find("label[for]").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		label := strings.TrimSpace(sel.Find(".date").Text())
		if !matchesDate(label, date) {
			return true
		}

		forAttr, _ := sel.Attr("for")
		if strings.HasPrefix(forAttr, "mp-") {
			tabID = strings.TrimPrefix(forAttr, "mp-")
			return false
		}
		return true
	})

	return tabID
}

// matchesDate compares a "D.M." label against the target day and month
func matchesDate(label string, date time.Time) bool {
	parts := strings.Split(strings.TrimSuffix(label, "."), ".")
	if len(parts) != 2 {
		return false
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return false
	}

	return day == date.Day() && time.Month(month) == date.Month()
}

// parseAllergens pulls the numeric allergen codes out of the free-text line
func parseAllergens(text string) []int {
	match := allergenRe.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	var codes []int
	for _, field := range strings.Split(match[1], ",") {
		code, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			continue
		}
		codes = append(codes, code)
	}

	return codes
}

// parseNutrition reads the optional nutrition table. The first row holds
// the four absolute values, the second row the four percentages, both
// positionally indexed as energy, fat, carbohydrates, protein.
func parseNutrition(sel *goquery.Selection) *Nutrition {
	rows := sel.Find(".nutrition-table tr")
	if rows.Length() < 2 {
		return nil
	}

	absolute := cellTexts(rows.Eq(0))
	percent := cellTexts(rows.Eq(1))
	if len(absolute) < 4 || len(percent) < 4 {
		return nil
	}

	return &Nutrition{
		Energy:     absolute[0],
		Fat:        absolute[1],
		Carbs:      absolute[2],
		Protein:    absolute[3],
		EnergyPct:  percent[0],
		FatPct:     percent[1],
		CarbsPct:   percent[2],
		ProteinPct: percent[3],
	}
}

func cellTexts(row *goquery.Selection) []string {
	var texts []string
	row.Find("td").Each(func(i int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	return texts
}
