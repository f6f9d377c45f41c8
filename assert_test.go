package diet

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kelindar/bitmap"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// ---------------------------------------- Test Helpers ----------------------------------------

// runsOf is a shorthand for building a run list from lo, hi pairs
func runsOf(bounds ...int) []Run[int] {
	out := make([]Run[int], 0, len(bounds)/2)
	for i := 0; i+1 < len(bounds); i += 2 {
		out = append(out, Span(bounds[i], bounds[i+1]))
	}
	return out
}

// testPair creates both our set and a reference bitmap with the same values
func testPair(data []uint32) (*Set[uint32], *bitmap.Bitmap) {
	our := New[uint32]()
	var ref bitmap.Bitmap
	for _, v := range data {
		our.Add(v)
		ref.Set(v)
	}
	return our, &ref
}

// assertEqualBitmap compares our set with the reference bitmap
func assertEqualBitmap(t *testing.T, our *Set[uint32], ref *bitmap.Bitmap) {
	t.Helper()
	assert.Equal(t, uint64(ref.Count()), our.Count(), "Count mismatch")

	// Compare all values
	var ourValues, refValues []uint32
	our.Range(func(x uint32) { ourValues = append(ourValues, x) })
	ref.Range(func(x uint32) { refValues = append(refValues, x) })
	assert.Equal(t, refValues, ourValues, "Range mismatch")

	// Check individual contains calls
	ref.Range(func(x uint32) {
		assert.True(t, our.Contains(x), "Contains mismatch for %d", x)
	})
}

// assertNormalized checks that the runs are non-empty, ascending, disjoint and
// non-adjacent, and that they match what a rebuild from scratch would produce
func assertNormalized[T constraints.Integer](t *testing.T, s *Set[T]) {
	t.Helper()
	assert.NoError(t, s.Validate())

	var b builder[T]
	s.Range(b.push)
	if diff := cmp.Diff(b.runs, s.Runs()); diff != "" {
		t.Errorf("runs are not coalesced (-want +got):\n%s", diff)
	}
}

// ---------------------------------------- Data Generators ----------------------------------------

type dataGen = func() ([]uint32, string)

// genSeq creates consecutive integers starting from offset
func genSeq(size int, offset uint32) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = offset + uint32(i)
		}
		return data, "seq"
	}
}

// genRand creates random integers within a range
func genRand(size int, maxVal uint32) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = uint32(rand.IntN(int(maxVal)))
		}
		return data, "rnd"
	}
}

// genSparse creates sparse integers (large gaps)
func genSparse(size int) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = uint32(i * 1000)
		}
		return data, "sps"
	}
}

// genDense creates dense integers in small range
func genDense(size int) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = uint32(rand.IntN(size / 10))
		}
		return data, "dns"
	}
}

// genBoundary creates boundary/edge case values
func genBoundary() dataGen {
	return func() ([]uint32, string) {
		data := []uint32{0, 1, 65535, 65536, 4294967294, 4294967295}
		return data, "bnd"
	}
}

// genRun creates a random run within [0, domain)
func genRun(domain int) Run[uint32] {
	a, b := uint32(rand.IntN(domain)), uint32(rand.IntN(domain))
	return Span(min(a, b), max(a, b))
}
