package namebuf

import (
	"fmt"
	"testing"

	"github.com/opd-ai/friendgraph/limits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var b Buffer

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cap())
	assert.Empty(t, b.Values())
}

func TestAppendGrowthPolicy(t *testing.T) {
	b := New()

	// capacity after each append, starting empty
	expected := []int{1, 3, 3, 7, 7, 7, 7, 15}
	for i, wantCap := range expected {
		b.Append(fmt.Sprintf("n%d", i))
		assert.Equal(t, i+1, b.Len(), "length after append %d", i)
		assert.Equal(t, wantCap, b.Cap(), "capacity after append %d", i)
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 100, 1000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			b := New()
			for i := 0; i < n; i++ {
				b.Append(fmt.Sprintf("friend-%d", i))
			}

			require.Equal(t, n, b.Len())
			assert.LessOrEqual(t, b.Len(), b.Cap())
			for i := 0; i < n; i++ {
				got, err := b.Get(i)
				require.NoError(t, err)
				assert.Equal(t, fmt.Sprintf("friend-%d", i), got)
			}
		})
	}
}

func TestAppendKeepsDuplicates(t *testing.T) {
	b := New()
	b.Append("Ann")
	b.Append("Ann")

	assert.Equal(t, []string{"Ann", "Ann"}, b.Values())
}

func TestNewWithCapacity(t *testing.T) {
	b, err := NewWithCapacity(4)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 4, b.Cap())

	for i := 0; i < 4; i++ {
		b.Append("x")
	}
	assert.Equal(t, 4, b.Cap(), "no growth while within preallocated capacity")

	b.Append("y")
	assert.Equal(t, limits.GrowCapacity(4), b.Cap())

	_, err = NewWithCapacity(-1)
	assert.ErrorIs(t, err, limits.ErrNegativeCapacity)
}

func TestGetSetBounds(t *testing.T) {
	b := New()
	for _, n := range []string{"Ann", "Bob", "Cara", "Dan"} {
		b.Append(n)
	}
	require.Equal(t, 4, b.Len())
	require.Equal(t, 7, b.Cap())

	testCases := []struct {
		name    string
		index   int
		wantErr bool
	}{
		{"first", 0, false},
		{"last", 3, false},
		{"equal to length", 4, true},
		{"within capacity but past length", 5, true},
		{"last capacity slot", 6, true},
		{"equal to capacity", 7, true},
		{"negative", -1, true},
		{"far past end", 100, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, getErr := b.Get(tc.index)
			setErr := b.Set(tc.index, "Zed")

			if tc.wantErr {
				assert.ErrorIs(t, getErr, limits.ErrOutOfRange)
				assert.ErrorIs(t, setErr, limits.ErrOutOfRange)
			} else {
				assert.NoError(t, getErr)
				assert.NoError(t, setErr)
			}
		})
	}

	assert.Equal(t, 4, b.Len(), "failed Set must not change length")
	assert.Equal(t, 7, b.Cap())
}

func TestSetOverwrites(t *testing.T) {
	b := New()
	b.Append("Ann")
	b.Append("Bob")
	b.Append("Cara")

	require.NoError(t, b.Set(1, "Zed"))
	assert.Equal(t, []string{"Ann", "Zed", "Cara"}, b.Values())
}

func TestCloneIsIndependent(t *testing.T) {
	b := New()
	b.Append("Ann")
	b.Append("Bob")

	c := b.Clone()
	assert.Equal(t, b.Values(), c.Values())
	assert.Equal(t, b.Cap(), c.Cap(), "clone is sized to source capacity")

	c.Append("Eve")
	require.NoError(t, c.Set(0, "Zed"))

	assert.Equal(t, []string{"Ann", "Bob"}, b.Values())
	assert.Equal(t, []string{"Zed", "Bob", "Eve"}, c.Values())

	require.NoError(t, b.Set(1, "Max"))
	v, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Bob", v)
}

func TestCloneOfEmpty(t *testing.T) {
	c := New().Clone()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Cap())
	c.Append("Ann")
	assert.Equal(t, []string{"Ann"}, c.Values())
}

func TestValuesIsDetached(t *testing.T) {
	b := New()
	b.Append("Ann")

	v := b.Values()
	v[0] = "Zed"

	got, err := b.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got)
}

func TestAll(t *testing.T) {
	b := New()
	for _, n := range []string{"Ann", "Bob", "Cara"} {
		b.Append(n)
	}

	var seen []string
	for i, name := range b.All() {
		assert.Equal(t, len(seen), i)
		seen = append(seen, name)
	}
	assert.Equal(t, []string{"Ann", "Bob", "Cara"}, seen)

	// early break stops iteration
	count := 0
	for range b.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestRelease(t *testing.T) {
	b := New()
	b.Append("Ann")
	b.Append("Bob")

	b.Release()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cap())

	// second release is a no-op
	assert.NotPanics(t, b.Release)

	// released buffer is reusable
	b.Append("Cara")
	assert.Equal(t, []string{"Cara"}, b.Values())
	assert.Equal(t, 1, b.Cap())
}

func TestReleaseNeverAllocated(t *testing.T) {
	var b Buffer
	assert.NotPanics(t, b.Release)

	var nilBuf *Buffer
	assert.NotPanics(t, nilBuf.Release)
}

func BenchmarkAppend(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := New()
		for j := 0; j < 1024; j++ {
			buf.Append("friend")
		}
	}
}

func BenchmarkClone(b *testing.B) {
	buf := New()
	for j := 0; j < 1024; j++ {
		buf.Append("friend")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Clone()
	}
}
