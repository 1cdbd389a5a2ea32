package normalize

import "github.com/tidwall/gjson"

// ActSection is one act/section pair.
type ActSection struct {
	UnderAct     *string
	UnderSection *string
}

// ActsAndSections reads act/section rows from a single object or an array of
// objects, accepting under_act/act and under_section/section spellings. Rows
// carrying neither are dropped.
func ActsAndSections(r gjson.Result) []ActSection {
	acts := []ActSection{}
	for _, row := range Rows(r) {
		if !row.IsObject() {
			continue
		}
		fields := Fields(row)
		act := ActSection{
			UnderAct:     Pick(fields, "underact", "underacts", "act", "actname", "acts"),
			UnderSection: Pick(fields, "undersection", "section", "sections", "undersections"),
		}
		if act.UnderAct == nil && act.UnderSection == nil {
			continue
		}
		acts = append(acts, act)
	}
	return acts
}
