package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeCountsDuplicatesAgainstPriorDataOnly(t *testing.T) {
	d := NewDataset()

	// First file: no prior data, internal duplicate counts as zero.
	dups := d.Merge([]Record{
		{"Q1", "A1"},
		{"Q1", "A1"},
	})
	assert.Equal(t, 0, dups)
	assert.Equal(t, 1, d.Len())

	// Second file: one row repeats merged data, one is new.
	dups = d.Merge([]Record{
		{"Q1", "A1"},
		{"Q3", "A3"},
	})
	assert.Equal(t, 1, dups)
	assert.Equal(t, 2, d.Len())

	// A row repeated within a file counts once per occurrence when it
	// matches prior data.
	dups = d.Merge([]Record{
		{"Q3", "A3"},
		{"Q3", "A3"},
	})
	assert.Equal(t, 2, dups)
	assert.Equal(t, 2, d.Len())
}

func TestMergeIntraFileDuplicateOfNewRowNotCounted(t *testing.T) {
	d := NewDataset()
	require.Equal(t, 0, d.Merge([]Record{{"Q1", "A1"}}))

	// Q2 repeats within the file but matches nothing merged earlier.
	dups := d.Merge([]Record{
		{"Q2", "A2"},
		{"Q2", "A2"},
	})
	assert.Equal(t, 0, dups)
	assert.Equal(t, 2, d.Len())
}

func TestMergePreservesInsertionOrder(t *testing.T) {
	d := NewDataset()
	d.Merge([]Record{{"Q2", "A2"}, {"Q1", "A1"}})
	d.Merge([]Record{{"Q1", "A1"}, {"Q3", "A3"}})

	assert.Equal(t, []Record{
		{"Q2", "A2"},
		{"Q1", "A1"},
		{"Q3", "A3"},
	}, d.Records())
}

func TestRecordEqualityIsExact(t *testing.T) {
	d := NewDataset()
	d.Merge([]Record{{"Q1", "A1"}})

	// No normalization: case and whitespace differences are distinct rows.
	dups := d.Merge([]Record{
		{"q1", "A1"},
		{"Q1 ", "A1"},
		{"Q1", "a1"},
	})
	assert.Equal(t, 0, dups)
	assert.Equal(t, 4, d.Len())
}

func TestDedupKeepsFirstOccurrenceInOrder(t *testing.T) {
	in := []Record{
		{"Q1", "A1"},
		{"Q2", "A2"},
		{"Q1", "A1"},
		{"Q3", "A3"},
		{"Q2", "A2"},
	}
	out := Dedup(in)
	assert.Equal(t, []Record{
		{"Q1", "A1"},
		{"Q2", "A2"},
		{"Q3", "A3"},
	}, out)
}

func TestDedupIdempotent(t *testing.T) {
	in := []Record{
		{"Q1", "A1"},
		{"Q1", "A1"},
		{"Q2", "A2"},
	}
	once := Dedup(in)
	twice := Dedup(once)
	assert.Equal(t, once, twice)
}

func TestDedupEmpty(t *testing.T) {
	assert.Empty(t, Dedup(nil))
}
