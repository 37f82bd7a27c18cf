package pathtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paths(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = JoinedKey(e.Path)
	}

	return out
}

func TestCanonicalOrder_Joined(t *testing.T) {
	entries := []Entry{
		NewEntry(NumberValue(2), "a", "b"),
		NewEntry(NumberValue(1), "a"),
		NewEntry(NumberValue(3), "B"),
		NewEntry(NumberValue(4), "a!"),
	}

	got := CanonicalOrder(entries, OrderingJoined)
	assert.Equal(t, []string{"B", "a", "a!", "a,b"}, paths(got))

	// Input untouched.
	assert.Equal(t, []string{"a,b", "a", "B", "a!"}, paths(entries))
}

func TestCanonicalOrder_SegmentedDiffersOnSeparatorNeighbours(t *testing.T) {
	entries := []Entry{
		NewEntry(StringValue("bang"), "a!"),
		NewEntry(StringValue("nested"), "a", "b"),
	}

	// '!' sorts below ',', so the joined key "a!" precedes "a,b".
	assert.Equal(t, []string{"a!", "a,b"}, paths(CanonicalOrder(entries, OrderingJoined)))
	// Segment-wise, "a" is a prefix of "a!".
	assert.Equal(t, []string{"a,b", "a!"}, paths(CanonicalOrder(entries, OrderingSegmented)))
}

func TestCanonicalOrder_UTF16CodeUnits(t *testing.T) {
	// U+1F600 encodes as the surrogate 0xD83D, which is below U+FF61 in
	// UTF-16 even though its UTF-8 bytes sort higher.
	entries := []Entry{
		NewEntry(StringValue("halfwidth"), "｡"),
		NewEntry(StringValue("emoji"), "\U0001F600"),
	}

	for _, o := range []Ordering{OrderingJoined, OrderingSegmented} {
		got := CanonicalOrder(entries, o)
		require.Len(t, got, 2)
		assert.Equal(t, "emoji", got[0].Value.String(), o.String())
	}
}

func TestCanonicalOrder_StableTies(t *testing.T) {
	entries := []Entry{
		NewEntry(StringValue("first"), "k"),
		NewEntry(StringValue("split"), "k", "v"),
		NewEntry(StringValue("joined"), "k,v"),
		NewEntry(StringValue("second"), "k"),
	}

	got := CanonicalOrder(entries, OrderingJoined)
	values := make([]string, len(got))
	for i, e := range got {
		values[i] = e.Value.String()
	}

	assert.Equal(t, []string{"first", "second", "split", "joined"}, values)
}

func TestComparePaths(t *testing.T) {
	tests := []struct {
		a, b     Path
		ordering Ordering
		want     int
	}{
		{Path{"a"}, Path{"a", "b"}, OrderingJoined, -1},
		{Path{"a"}, Path{"a", "b"}, OrderingSegmented, -1},
		{Path{"a", "b"}, Path{"a,b"}, OrderingJoined, 0},
		{Path{"a", "b"}, Path{"a,b"}, OrderingSegmented, -1},
		{Path{"b"}, Path{"a", "z"}, OrderingJoined, 1},
		{Path{}, Path{"a"}, OrderingSegmented, -1},
	}

	for _, tt := range tests {
		t.Run(tt.ordering.String()+"/"+tt.a.String()+"/"+tt.b.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ComparePaths(tt.a, tt.b, tt.ordering))
		})
	}
}

func TestParseOrdering(t *testing.T) {
	o, err := ParseOrdering("segmented")
	require.NoError(t, err)
	assert.Equal(t, OrderingSegmented, o)

	o, err = ParseOrdering("")
	require.NoError(t, err)
	assert.Equal(t, OrderingJoined, o)

	_, err = ParseOrdering("random")
	assert.Error(t, err)
}
