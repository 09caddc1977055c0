package couleur

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueSet_InsertSortsAndDedups(t *testing.T) {
	var set UniqueSet[int]
	for _, v := range []int{5, 1, 3, 1, 5, 2} {
		set.Insert(v)
	}

	assert.Equal(t, []int{1, 2, 3, 5}, set.Values())
	assert.Equal(t, 4, set.Len())
	assert.True(t, set.Contains(3))
	assert.False(t, set.Contains(4))
}

func TestUniqueSet_OrderIndependentOfInsertion(t *testing.T) {
	a := NewUniqueSet[Style]()
	b := NewUniqueSet[Style]()
	for _, s := range []Style{StyleStrikethrough, StyleBold, StyleUnderline} {
		a.Insert(s)
	}
	for _, s := range []Style{StyleUnderline, StyleStrikethrough, StyleBold, StyleBold} {
		b.Insert(s)
	}

	assert.Equal(t, a.Values(), b.Values())
}

func TestUniqueSet_EmptyValues(t *testing.T) {
	var set UniqueSet[string]
	assert.Empty(t, set.Values())
	assert.Empty(t, slices.Collect(set.All()))
}

func TestUniqueSet_CloneIsIndependent(t *testing.T) {
	var set UniqueSet[int]
	set.Insert(1)
	set.Insert(2)

	clone := set.Clone()
	clone.Insert(0)

	assert.Equal(t, []int{1, 2}, set.Values())
	assert.Equal(t, []int{0, 1, 2}, clone.Values())
}

func TestUniqueSet_ValuesReturnsCopy(t *testing.T) {
	var set UniqueSet[int]
	set.Insert(7)

	vals := set.Values()
	vals[0] = 42

	assert.Equal(t, []int{7}, set.Values())
}
