package bitset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(s *Set) []int {
	var got []int
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		got = append(got, i)
	}
	return got
}

func TestNew_AllClear(t *testing.T) {
	s := New(130)
	assert.Equal(t, 130, s.Len())
	assert.Equal(t, 0, s.Count())
	for i := 0; i < s.Len(); i++ {
		assert.False(t, s.Test(i), "bit %d", i)
	}
}

func TestNew_Zero(t *testing.T) {
	s := New(0)
	assert.Equal(t, 0, s.Len())
	s.Fill()
	assert.Equal(t, 0, s.Count())
	_, ok := s.NextSet(0)
	assert.False(t, ok)
}

func TestNew_NegativePanics(t *testing.T) {
	assert.Panics(t, func() { New(-1) })
}

func TestFill_TrimsTail(t *testing.T) {
	// 70 bits span two words; only 6 bits of the second are in range.
	s := New(70)
	s.Fill()
	assert.Equal(t, 70, s.Count())
	assert.True(t, s.Test(69))
	assert.False(t, s.Test(70))
}

func TestFill_AfterPartialSet(t *testing.T) {
	s := New(100)
	s.Set(3)
	s.Set(97)
	s.Fill()
	assert.Equal(t, 100, s.Count())
	assert.True(t, s.Test(3))
	assert.True(t, s.Test(97))
}

func TestFill_ExactWord(t *testing.T) {
	s := New(128)
	s.Fill()
	assert.Equal(t, 128, s.Count())
}

func TestSetClearTest(t *testing.T) {
	s := New(200)
	for _, i := range []int{0, 1, 63, 64, 65, 127, 199} {
		s.Set(i)
	}
	assert.Equal(t, 7, s.Count())
	assert.True(t, s.Test(63))
	assert.True(t, s.Test(64))

	s.Clear(64)
	assert.False(t, s.Test(64))
	assert.Equal(t, 6, s.Count())

	// Clearing an already clear bit is a no-op.
	s.Clear(64)
	assert.Equal(t, 6, s.Count())
}

func TestTest_OutOfRange(t *testing.T) {
	s := New(10)
	s.Fill()
	assert.False(t, s.Test(-1))
	assert.False(t, s.Test(10))
	assert.False(t, s.Test(1000))
}

func TestNextSet(t *testing.T) {
	s := New(300)
	want := []int{3, 64, 65, 128, 250, 299}
	for _, i := range want {
		s.Set(i)
	}

	if diff := cmp.Diff(want, collect(s)); diff != "" {
		t.Errorf("NextSet walk mismatch (-want +got):\n%s", diff)
	}

	i, ok := s.NextSet(66)
	require.True(t, ok)
	assert.Equal(t, 128, i)

	i, ok = s.NextSet(-5)
	require.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = s.NextSet(300)
	assert.False(t, ok)
}

func TestNextSet_Empty(t *testing.T) {
	s := New(500)
	_, ok := s.NextSet(0)
	assert.False(t, ok)
	assert.Nil(t, collect(s))
}
