package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/fkopp/chesscore/internal/types"
)

func TestPushBackAndAt(t *testing.T) {
	ms := NewMoveSlice()
	assert.Equal(t, 0, ms.Len())

	m1 := CreateMove(SqE2, SqE4, Normal, PtNone)
	m2 := CreateMove(SqG1, SqF3, Normal, PtNone)
	ms.PushBack(m1)
	ms.PushBack(m2)

	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, m1, ms.At(0))
	assert.Equal(t, m2, ms.At(1))
}

func TestAtOutOfBoundsPanics(t *testing.T) {
	ms := NewMoveSlice()
	assert.Panics(t, func() { ms.At(0) })
}

func TestClear(t *testing.T) {
	ms := NewMoveSlice()
	ms.PushBack(CreateMove(SqA2, SqA4, Normal, PtNone))
	ms.Clear()
	assert.Equal(t, 0, ms.Len())
}

func TestFilter(t *testing.T) {
	ms := NewMoveSlice()
	ms.PushBack(CreateMove(SqE2, SqE4, Normal, PtNone))
	ms.PushBack(CreateMove(SqD2, SqD4, Normal, PtNone))
	ms.PushBack(CreateMove(SqG1, SqF3, Normal, PtNone))

	ms.Filter(func(i int) bool { return ms.At(i).From() != SqD2 })

	assert.Equal(t, 2, ms.Len())
	for i := 0; i < ms.Len(); i++ {
		assert.NotEqual(t, SqD2, ms.At(i).From())
	}
}

func TestForEach(t *testing.T) {
	ms := NewMoveSlice()
	ms.PushBack(CreateMove(SqE2, SqE4, Normal, PtNone))
	ms.PushBack(CreateMove(SqD2, SqD4, Normal, PtNone))

	visited := 0
	ms.ForEach(func(index int) { visited++ })
	assert.Equal(t, 2, visited)
}

func TestStringUci(t *testing.T) {
	ms := NewMoveSlice()
	ms.PushBack(CreateMove(SqE2, SqE4, Normal, PtNone))
	ms.PushBack(CreateMove(SqE7, SqE8, Promotion, Queen))

	assert.Equal(t, "e2e4 e7e8q", ms.StringUci())
}
