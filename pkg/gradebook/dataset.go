package gradebook

// Dataset wraps a loaded record set and derives its overview data.
// Distinct students and subjects are kept in first-seen input order so that
// downstream grouping and ranking stay reproducible across runs.
type Dataset struct {
	records  []Record
	students []string
	subjects []string
	minDate  string
	maxDate  string
}

// NewDataset builds a Dataset from records. The slice is not copied;
// callers must not mutate it afterwards.
func NewDataset(records []Record) *Dataset {
	ds := &Dataset{records: records}

	seenStudents := make(map[string]struct{}, len(records))
	seenSubjects := make(map[string]struct{}, len(records))

	for i, record := range records {
		if _, ok := seenStudents[record.Name]; !ok {
			seenStudents[record.Name] = struct{}{}
			ds.students = append(ds.students, record.Name)
		}

		if _, ok := seenSubjects[record.Subject]; !ok {
			seenSubjects[record.Subject] = struct{}{}
			ds.subjects = append(ds.subjects, record.Subject)
		}

		if i == 0 || record.Date < ds.minDate {
			ds.minDate = record.Date
		}

		if i == 0 || record.Date > ds.maxDate {
			ds.maxDate = record.Date
		}
	}

	return ds
}

// Records returns the underlying record slice in input order.
func (d *Dataset) Records() []Record {
	return d.records
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Students returns the distinct student names in first-seen order.
func (d *Dataset) Students() []string {
	return d.students
}

// Subjects returns the distinct subject names in first-seen order.
func (d *Dataset) Subjects() []string {
	return d.subjects
}

// DateRange returns the lexical minimum and maximum of the date strings.
// Both are empty when the dataset has no records.
func (d *Dataset) DateRange() (minDate, maxDate string) {
	return d.minDate, d.maxDate
}
