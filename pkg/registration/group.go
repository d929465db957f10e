package registration

// Group clusters a student's registrations into logical modules by their
// normalized base name. Insertion order is preserved so the display order
// follows the upstream response. Registrations without an attached
// ModuleType are classified here; already-attached types (and in
// particular their ECTS values) are left untouched.
func Group(regs []Registration) []ModuleGroup {
	groupMap := make(map[string]*ModuleGroup)
	var order []string

	for _, r := range regs {
		if r.Type == nil {
			t := Classify(r.Modulanlass.Nummer)
			r.Type = &t
		}

		base := BaseName(r.Modulanlass.Nummer)
		g, exists := groupMap[base]
		if !exists {
			g = &ModuleGroup{
				Name:     CleanName(r.Modulanlass.Bezeichnung),
				BaseName: base,
			}
			groupMap[base] = g
			order = append(order, base)
		}
		g.Registrations = append(g.Registrations, r)
	}

	var groups []ModuleGroup
	for _, base := range order {
		g := groupMap[base]
		g.ECTS = resolveECTS(g.Registrations)
		g.FinalGrade = resolveFinalGrade(g.Registrations)
		groups = append(groups, *g)
	}

	return groups
}

// Flatten returns every registration of the given groups in display order.
// Grouping never drops or duplicates a record, so the result always has
// the same length as the original input.
func Flatten(groups []ModuleGroup) []Registration {
	var regs []Registration
	for _, g := range groups {
		regs = append(regs, g.Registrations...)
	}
	return regs
}

// resolveECTS picks the module's credit count. Credit is attached to the
// group via the first component that carries a non-zero ECTS value
// (normally the MAIN component, or a caller override); otherwise the
// module defaults to 3 credits.
func resolveECTS(regs []Registration) int {
	for _, r := range regs {
		if r.Type != nil && r.Type.ECTS > 0 {
			return r.Type.ECTS
		}
	}
	return defaultECTS
}

// resolveFinalGrade computes the module grade. A graded MAIN component is
// authoritative and returned verbatim, ignoring sibling weights. Otherwise
// the grade is the weight-normalized average over the graded non-MAIN
// components, with the Swiss half-grade rounding applied. A module with no
// graded components yields nil (still in progress, not a failure).
func resolveFinalGrade(regs []Registration) *float64 {
	for _, r := range regs {
		if r.Type.Kind == KindMain && r.FreieNote != nil {
			grade := *r.FreieNote
			return &grade
		}
	}

	var weightedSum, weightTotal float64
	for _, r := range regs {
		if r.Type.Kind == KindMain || r.FreieNote == nil {
			continue
		}
		weightedSum += *r.FreieNote * r.Type.Weight
		weightTotal += r.Type.Weight
	}

	if weightTotal == 0 {
		return nil
	}

	grade := RoundSwiss(weightedSum / weightTotal)
	return &grade
}

// RoundSwiss applies the Swiss half-grade convention: any value in
// [5.25, 5.5) rounds up to exactly 5.5. No other rounding is applied.
func RoundSwiss(grade float64) float64 {
	if grade >= 5.25 && grade < 5.5 {
		return 5.5
	}
	return grade
}
