package domain

// CaseStats summarizes a case collection for the dashboard.
//
// Malformed records are excluded from every count and reported in Skipped,
// so Total+Skipped equals the input length and Active+Resolved equals Total.
type CaseStats struct {
	Total    int
	Active   int
	Resolved int
	Urgent   int
	Skipped  int
}

// GetCaseStats computes CaseStats in a single pass over cases.
func GetCaseStats(cases []Case) CaseStats {
	var st CaseStats
	for i := range cases {
		c := &cases[i]
		if err := c.Validate(); err != nil {
			st.Skipped++
			continue
		}

		st.Total++
		if c.Status.IsResolved() {
			st.Resolved++
		} else {
			st.Active++
		}
		if c.IsUrgent {
			st.Urgent++
		}
	}
	return st
}
