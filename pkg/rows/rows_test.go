package rows

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/vertab/pkg/dataset"
	"github.com/leapstack-labs/vertab/pkg/resolve"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"12", 12},
		{"12.0", 12},
		{"12.9", 12.9},
		{"", 0},
		{"n/a", 0},
		{"NaN", 0},
		{"inf", 0},
		{"-3", 0},
		{"1,234", 0},
		{"1,234.5", 0},
		{"12,34", 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.raw), func(t *testing.T) {
			assert.InDelta(t, tt.want, Coerce(dataset.ParseCell(tt.raw)), 1e-9)
		})
	}
}

func TestNormalize_SeparatedDigitsRankAsZero(t *testing.T) {
	ds := dataset.New(
		[]string{"Client", "Current Version", "Latest Version", "Number of Callsites", "Reachable"},
		[][]string{
			{"a", "1", "2", "1,234", "1"},
			{"b", "1", "2", "5", "1"},
		},
	)
	rs := Normalize(ds, resolve.Resolve(ds.Headers(), resolve.DefaultCandidates()))
	Sort(rs)

	require.Len(t, rs, 2)
	assert.Equal(t, "b", rs[0].ClientName)
	assert.Zero(t, rs[1].NumCallsites)
}

func TestNormalize(t *testing.T) {
	ds := dataset.New(
		[]string{"Client", "Current Version", "Latest Version", "Number of Callsites", "Reachable"},
		[][]string{
			{"acme", "1.0", "2.0", "10", "3"},
			{"globex", "1.1", "2.1", "x", ""},
		},
	)
	res := resolve.Resolve(ds.Headers(), resolve.DefaultCandidates())

	got := Normalize(ds, res)
	want := []Row{
		{ClientName: "acme", LibraryOld: "1.0", LibraryNew: "2.0", NumCallsites: 10, Reachable: 3},
		{ClientName: "globex", LibraryOld: "1.1", LibraryNew: "2.1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_UnresolvedFieldsAreEmpty(t *testing.T) {
	ds := dataset.New([]string{"Client"}, [][]string{{"acme"}, {"globex"}})
	res := resolve.Resolve(ds.Headers(), resolve.DefaultCandidates())
	require.Len(t, res.Missing(), 4)

	got := Normalize(ds, res)
	want := []Row{{ClientName: "acme"}, {ClientName: "globex"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSort_CompositeKey(t *testing.T) {
	input := []Row{
		{ClientName: "c", LibraryOld: "1", LibraryNew: "2", NumCallsites: 5, Reachable: 1},
		{ClientName: "b", LibraryOld: "1", LibraryNew: "2", NumCallsites: 5, Reachable: 1},
		{ClientName: "a", LibraryOld: "1", LibraryNew: "3", NumCallsites: 5, Reachable: 1},
		{ClientName: "z", LibraryOld: "0", LibraryNew: "9", NumCallsites: 5, Reachable: 1},
		{ClientName: "y", LibraryOld: "9", LibraryNew: "9", NumCallsites: 50, Reachable: 1},
		{ClientName: "x", LibraryOld: "9", LibraryNew: "9", NumCallsites: 0, Reachable: 7},
	}

	Sort(input)

	got := make([]string, len(input))
	for i, r := range input {
		got[i] = r.ClientName
	}
	assert.Equal(t, []string{"x", "y", "z", "b", "c", "a"}, got)
}

func TestSort_Deterministic(t *testing.T) {
	var base []Row
	for i := 0; i < 40; i++ {
		base = append(base, Row{
			ClientName:   fmt.Sprintf("client-%d", i%7),
			LibraryOld:   fmt.Sprintf("%d.0", i%3),
			LibraryNew:   fmt.Sprintf("%d.0", i%4),
			NumCallsites: float64(i % 5),
			Reachable:    float64(i % 2),
		})
	}

	want := slices.Clone(base)
	Sort(want)

	rng := rand.New(rand.NewSource(1))
	for run := 0; run < 10; run++ {
		shuffled := slices.Clone(base)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		Sort(shuffled)
		if diff := cmp.Diff(want, shuffled); diff != "" {
			t.Fatalf("run %d: order depends on input order (-want +got):\n%s", run, diff)
		}
	}
}

func TestTop(t *testing.T) {
	all := make([]Row, 20)
	for i := range all {
		all[i] = Row{Reachable: float64(i)}
	}
	Sort(all)

	tests := []struct {
		n    int
		want int
	}{
		{n: 15, want: 15},
		{n: 20, want: 20},
		{n: 50, want: 20},
		{n: 0, want: 20},
		{n: -1, want: 20},
		{n: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			got := Top(all, tt.n)
			require.Len(t, got, tt.want)
			assert.Equal(t, all[:tt.want], got, "result must be a prefix of the sorted rows")
		})
	}
}

func TestRow_SameGroup(t *testing.T) {
	a := Row{LibraryOld: "1", LibraryNew: "2", ClientName: "a"}
	b := Row{LibraryOld: "1", LibraryNew: "2", ClientName: "b"}
	c := Row{LibraryOld: "1", LibraryNew: "3"}

	assert.True(t, a.SameGroup(b))
	assert.False(t, a.SameGroup(c))
}
