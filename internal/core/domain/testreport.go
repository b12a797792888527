package domain

// TestRecord is one already-parsed test result supplied by a record source.
// Age tracks the failing streak: 0 means the test failed for the first time
// in this run, N > 0 means it has been failing for N consecutive runs.
// Age is meaningless for passed records.
type TestRecord struct {
	Name   string `json:"name"`
	Failed bool   `json:"failed"`
	Age    int    `json:"age"`
}

// TestSummary holds the derived counts of a TestReport.
type TestSummary struct {
	Total  int
	Passed int
	Failed int
	// Stable is true when no record failed.
	Stable bool
}

// TestReport accumulates pass/fail test records for one activity.
// Records keep their insertion order, which matches the discovery order of
// the upstream record source.
//
// A TestReport is owned exclusively by its activity node and is not safe for
// concurrent use.
type TestReport struct {
	records []TestRecord
}

// NewTestReport creates an empty report.
func NewTestReport() *TestReport {
	return &TestReport{}
}

// AddPassed appends a passed test record.
func (r *TestReport) AddPassed(name string) {
	r.records = append(r.records, TestRecord{Name: name})
}

// AddFailed appends a failed test record with the given failing-streak age.
func (r *TestReport) AddFailed(name string, age int) {
	r.records = append(r.records, TestRecord{Name: name, Failed: true, Age: age})
}

// Records returns the accumulated records in insertion order.
func (r *TestReport) Records() []TestRecord {
	return r.records
}

// Summary computes the derived counts. It is a linear scan, recomputed on
// every call.
func (r *TestReport) Summary() TestSummary {
	s := TestSummary{Total: len(r.records)}
	for _, rec := range r.records {
		if rec.Failed {
			s.Failed++
		} else {
			s.Passed++
		}
	}
	s.Stable = s.Failed == 0
	return s
}

// NewlyFailing returns the failed records with age zero, in insertion order.
// These are the regressions of this run.
func (r *TestReport) NewlyFailing() []TestRecord {
	var out []TestRecord
	for _, rec := range r.records {
		if rec.Failed && rec.Age == 0 {
			out = append(out, rec)
		}
	}
	return out
}

// StillFailing returns the failed records with age greater than zero, in
// insertion order. These were already failing in earlier runs.
func (r *TestReport) StillFailing() []TestRecord {
	var out []TestRecord
	for _, rec := range r.records {
		if rec.Failed && rec.Age > 0 {
			out = append(out, rec)
		}
	}
	return out
}
