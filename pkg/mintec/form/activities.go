package form

import "github.com/bennofs/mintec/pkg/mintec/parser"

// readActivities reads section III. The declared level is taken as is.
func (x *extraction) readActivities() bool {
	x.record.ActivityLevel = x.intAt(activityLevelAddr)
	x.record.ActivitiesLowerSecondary = x.collect(activitiesLowerArea)
	x.record.ActivitiesUpperSecondary = x.collect(activitiesUpperArea)
	return true
}

// collect returns the non-empty texts of an area in row order.
func (x *extraction) collect(area parser.Area) []string {
	var out []string
	for _, a := range area.Addrs() {
		if s := x.text(a); s != "" {
			out = append(out, s)
		}
	}
	return out
}
