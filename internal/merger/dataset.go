package merger

// Record is one question/answer pair taken from a spreadsheet row.
// Two records are duplicates iff both fields are byte-identical; no
// normalization is applied.
type Record struct {
	Question string
	Answer   string
}

// Dataset accumulates records across input files. It is kept free of
// duplicates between merges, so membership in seen is equivalent to
// membership in the records slice.
type Dataset struct {
	records []Record
	seen    map[Record]struct{}
}

func NewDataset() *Dataset {
	return &Dataset{seen: make(map[Record]struct{})}
}

func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns the accumulated records in insertion order. The
// returned slice is shared; callers must not modify it.
func (d *Dataset) Records() []Record {
	return d.records
}

// Merge folds one file's projected rows into the dataset and returns
// how many of them duplicate a row that was already present before
// this merge. The count is taken against the pre-merge state only:
// a row repeated within rows counts once per occurrence if it matches
// pre-existing data, and not at all if it is new to this file. After
// counting, rows are inserted first-occurrence-wins, preserving order.
func (d *Dataset) Merge(rows []Record) int {
	duplicates := 0
	for _, r := range rows {
		if _, ok := d.seen[r]; ok {
			duplicates++
		}
	}
	for _, r := range rows {
		if _, ok := d.seen[r]; !ok {
			d.seen[r] = struct{}{}
			d.records = append(d.records, r)
		}
	}
	return duplicates
}

// Dedup removes records that are exact duplicates of an earlier record,
// keeping the first occurrence and the relative order of survivors.
// Applying it twice yields the same result as once.
func Dedup(records []Record) []Record {
	seen := make(map[Record]struct{}, len(records))
	out := records[:0:0]
	for _, r := range records {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
