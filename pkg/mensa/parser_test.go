package mensa

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

// menuPageFixture mimics the weekly menu plan structure: day-tab labels
// with "D.M." dates pointing at per-day item grids.
const menuPageFixture = `
<html><body>
<div class="menu-plan-tabs">
  <div class="tab-navigation">
    <label for="mp-tab1"><span class="day">Montag</span><span class="date">24.8.</span></label>
    <label for="mp-tab2"><span class="day">Dienstag</span><span class="date">25.8.</span></label>
  </div>

  <div class="menu-plan-grid" id="menu-plan-tab1">
    <div class="menu-item">
      <h2 class="menu-title">Älplermagronen</h2>
      <p class="menu-description">mit Apfelmus und Bergkäse</p>
      <span class="menu-provenance">Schweiz</span>
      <div class="menu-prices">
        <span class="price"><span class="desc">INT</span><span class="val">CHF 8.50</span></span>
        <span class="price"><span class="desc">EXT</span><span class="val">CHF 12.50</span></span>
      </div>
      <div class="menu-labels"><span class="label-icon vegetarian"></span></div>
      <p class="allergen-info">Enthält Allergene: 1, 7, 9</p>
      <table class="nutrition-table">
        <tr><td>653 kcal</td><td>23 g</td><td>80 g</td><td>28 g</td></tr>
        <tr><td>33%</td><td>35%</td><td>31%</td><td>56%</td></tr>
      </table>
    </div>
    <div class="menu-item">
      <h2 class="menu-title">Gemüsecurry</h2>
      <p class="menu-description">mit Basmatireis</p>
      <div class="menu-prices">
        <span class="price"><span class="desc">INT</span><span class="val">CHF 7.90</span></span>
        <span class="price"><span class="desc">EXT</span><span class="val">CHF 11.90</span></span>
      </div>
      <div class="menu-labels"><span class="label-icon vegan"></span></div>
    </div>
    <div class="menu-item">
      <h2 class="menu-title"></h2>
      <p class="menu-description">Platzhalter ohne Titel</p>
    </div>
  </div>

  <div class="menu-plan-grid" id="menu-plan-tab2">
    <div class="menu-item">
      <h2 class="menu-title">Spaghetti Bolognese</h2>
      <div class="menu-prices">
        <span class="price"><span class="desc">INT</span><span class="val">CHF 9.20</span></span>
        <span class="price"><span class="desc">EXT</span><span class="val">CHF 13.20</span></span>
      </div>
    </div>
  </div>
</div>
</body></html>`

func TestParseMenu_MatchingDay(t *testing.T) {
	date := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	items, err := ParseMenu(strings.NewReader(menuPageFixture), date)
	if err != nil {
		t.Fatalf("ParseMenu failed: %v", err)
	}

	// The untitled third row must be dropped silently
	if len(items) != 2 {
		t.Fatalf("expected 2 items for Monday, got %d", len(items))
	}

	first := items[0]
	if first.Title != "Älplermagronen" {
		t.Errorf("expected title Älplermagronen, got %s", first.Title)
	}
	if first.Description != "mit Apfelmus und Bergkäse" {
		t.Errorf("unexpected description: %s", first.Description)
	}
	if first.Price.Student != "8.50" || first.Price.Regular != "12.50" {
		t.Errorf("unexpected price pair: %+v", first.Price)
	}
	if !reflect.DeepEqual(first.Allergens, []int{1, 7, 9}) {
		t.Errorf("expected allergens [1 7 9], got %v", first.Allergens)
	}
	if !first.Vegetarian || first.Vegan {
		t.Errorf("expected vegetarian but not vegan, got vegan=%v vegetarian=%v", first.Vegan, first.Vegetarian)
	}
	if first.Provenance != "Schweiz" {
		t.Errorf("expected provenance Schweiz, got %s", first.Provenance)
	}

	if first.Nutrition == nil {
		t.Fatalf("expected nutrition table on the first item")
	}
	if first.Nutrition.Energy != "653 kcal" || first.Nutrition.Protein != "28 g" {
		t.Errorf("unexpected absolute nutrition values: %+v", first.Nutrition)
	}
	if first.Nutrition.EnergyPct != "33%" || first.Nutrition.ProteinPct != "56%" {
		t.Errorf("unexpected nutrition percentages: %+v", first.Nutrition)
	}

	second := items[1]
	if !second.Vegan {
		t.Errorf("expected the curry to be flagged vegan")
	}
	if second.Allergens != nil {
		t.Errorf("expected no allergens without an allergen line, got %v", second.Allergens)
	}
	if second.Nutrition != nil {
		t.Errorf("expected nil nutrition without a table, got %+v", second.Nutrition)
	}
}

func TestParseMenu_SecondTab(t *testing.T) {
	date := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	items, err := ParseMenu(strings.NewReader(menuPageFixture), date)
	if err != nil {
		t.Fatalf("ParseMenu failed: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("expected exactly the Tuesday item, got %d items", len(items))
	}
	if items[0].Title != "Spaghetti Bolognese" {
		t.Errorf("expected Spaghetti Bolognese, got %s", items[0].Title)
	}
}

func TestParseMenu_NoMatchingTab(t *testing.T) {
	date := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	items, err := ParseMenu(strings.NewReader(menuPageFixture), date)
	if err != nil {
		t.Fatalf("ParseMenu failed: %v", err)
	}

	if len(items) != 0 {
		t.Errorf("expected empty list for a date outside the week, got %d items", len(items))
	}
}

func TestMatchesDate(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		label string
		want  bool
	}{
		{"4.3.", true},
		{"04.03.", true}, // Leading zeros still match
		{"4.3", true},    // Trailing dot may be missing
		{"5.3.", false},
		{"4.4.", false},
		{"garbage", false},
		{"", false},
	}

	for _, c := range cases {
		if got := matchesDate(c.label, date); got != c.want {
			t.Errorf("matchesDate(%q) = %v, want %v", c.label, got, c.want)
		}
	}
}
