package salary

// Band is a per-grade {min, mid, max} compensation range in RM.
type Band struct {
	Min float64
	Mid float64
	Max float64
}

// bands mirrors the HR compensation grid. Grades E2..E11 are executive,
// NE* non-executive.
var bands = map[string]Band{
	"E2":  {Min: 34900, Mid: 50515, Max: 66130},
	"E3":  {Min: 28500, Mid: 41870, Max: 55240},
	"E4":  {Min: 18600, Mid: 31690, Max: 44780},
	"E5":  {Min: 14500, Mid: 24695, Max: 34890},
	"E6":  {Min: 11000, Mid: 18690, Max: 26380},
	"E7":  {Min: 7500, Mid: 11902, Max: 16304},
	"E8":  {Min: 6600, Mid: 10325, Max: 14050},
	"E9":  {Min: 3650, Mid: 6739, Max: 9827},
	"E10": {Min: 2780, Mid: 5273, Max: 7765},
	"E11": {Min: 1890, Mid: 4032, Max: 6174},
	"NE2": {Min: 1700, Mid: 2711, Max: 4100},
	"NE1": {Min: 1700, Mid: 2094, Max: 3030},
	"NEG": {Min: 1700, Mid: 1879, Max: 2760},
}

// BandForGrade looks up the salary band for a grade code.
func BandForGrade(grade string) (Band, bool) {
	band, ok := bands[grade]
	return band, ok
}

// Grades returns the known grade codes for the dashboard dropdown.
func Grades() []string {
	return []string{"E2", "E3", "E4", "E5", "E6", "E7", "E8", "E9", "E10", "E11", "NE2", "NE1", "NEG"}
}
