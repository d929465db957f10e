package registration

import (
	"regexp"
	"strings"
)

// Substring markers in the anlass number that identify the component type.
// "X.HN" carries the official module grade, "X.SP/1" is the oral exam part,
// "X.SE/1" is the continuous-assessment part.
const (
	markerMain   = ".HN"
	markerOral   = ".SP"
	markerCourse = ".SE"
)

// defaultECTS is assumed for a module whose components never state credits
const defaultECTS = 3

// Classify derives the component type of a registration from its anlass
// number. Numbers without any marker are treated as continuous-assessment
// components. MAIN takes the full weight; MSP and EN follow the 50/50
// split convention unless the caller overrides the weight before grouping.
func Classify(number string) ModuleType {
	switch {
	case strings.Contains(number, markerMain):
		return ModuleType{Kind: KindMain, Weight: 100, ECTS: defaultECTS}
	case strings.Contains(number, markerOral):
		return ModuleType{Kind: KindMSP, Weight: 50, ECTS: 0}
	case strings.Contains(number, markerCourse):
		return ModuleType{Kind: KindEN, Weight: 50, ECTS: 0}
	default:
		return ModuleType{Kind: KindEN, Weight: 50, ECTS: 0}
	}
}

// BaseName strips the component marker and everything after it from an
// anlass number, e.g. "mgli.SP/1" -> "mgli". Numbers without a marker are
// returned unchanged so standalone courses form their own group.
func BaseName(number string) string {
	for _, marker := range []string{markerMain, markerOral, markerCourse} {
		if i := strings.Index(number, marker); i >= 0 {
			return number[:i]
		}
	}
	return number
}

// Patterns stripped from display names: semester tags like "(HS2025)" or
// "(FS25/26)" and parenthesised component markers like "(MSP)".
var (
	semesterTagRe  = regexp.MustCompile(`\s*\((?:HS|FS)\s?\d{2,4}(?:/\d{2})?\)`)
	componentTagRe = regexp.MustCompile(`\s*\((?:MSP|EN|SP|SE|HN)\)`)
)

// CleanName normalizes a module display name for grouping headers by
// removing semester and component suffixes.
func CleanName(bezeichnung string) string {
	name := semesterTagRe.ReplaceAllString(bezeichnung, "")
	name = componentTagRe.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
