package scene

import (
	"testing"

	"github.com/Carmen-Shannon/prism-go/engine/drawable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitQueueAddThenTake(t *testing.T) {
	q := newCommitQueue()
	q.enqueueAdd(drawable.NewDescriptor(1))
	q.enqueueAdd(drawable.NewDescriptor(2))

	assert.False(t, q.empty())
	adds, removes := q.pending()
	assert.Equal(t, 2, adds)
	assert.Zero(t, removes)

	first, ok := q.takeAddition()
	require.True(t, ok)
	assert.Equal(t, uint64(1), first.ID())
	second, ok := q.takeAddition()
	require.True(t, ok)
	assert.Equal(t, uint64(2), second.ID())

	_, ok = q.takeAddition()
	assert.False(t, ok)
	assert.True(t, q.empty())
}

func TestCommitQueueRemoveCancelsPendingAdd(t *testing.T) {
	q := newCommitQueue()
	desc := drawable.NewDescriptor(7)

	q.enqueueAdd(desc)
	q.enqueueRemove(desc)

	assert.True(t, q.empty(), "add followed by remove must net out to nothing")
	_, ok := q.takeAddition()
	assert.False(t, ok)
	_, ok = q.takeRemoval()
	assert.False(t, ok)
}

func TestCommitQueueAddCancelsPendingRemove(t *testing.T) {
	q := newCommitQueue()
	desc := drawable.NewDescriptor(7)

	q.enqueueRemove(desc)
	q.enqueueAdd(desc)

	assert.True(t, q.empty(), "remove followed by add must net out to nothing")
}

func TestCommitQueueCancelPreservesOtherEntries(t *testing.T) {
	q := newCommitQueue()
	a := drawable.NewDescriptor(1)
	b := drawable.NewDescriptor(2)
	c := drawable.NewDescriptor(3)

	q.enqueueAdd(a)
	q.enqueueAdd(b)
	q.enqueueAdd(c)
	q.enqueueRemove(b)

	got := []uint64{}
	for {
		desc, ok := q.takeAddition()
		if !ok {
			break
		}
		got = append(got, desc.ID())
	}
	assert.Equal(t, []uint64{1, 3}, got)
	assert.True(t, q.empty())
}

func TestCommitQueueReAddAfterCancel(t *testing.T) {
	q := newCommitQueue()
	desc := drawable.NewDescriptor(5)

	q.enqueueAdd(desc)
	q.enqueueRemove(desc) // cancels the add
	q.enqueueAdd(desc)    // queues again

	adds, removes := q.pending()
	assert.Equal(t, 1, adds)
	assert.Zero(t, removes)

	got, ok := q.takeAddition()
	require.True(t, ok)
	assert.Equal(t, uint64(5), got.ID())
	assert.True(t, q.empty())
}

func TestCommitQueueDuplicateAddKeepsSingleEntry(t *testing.T) {
	q := newCommitQueue()
	desc := drawable.NewDescriptor(9)

	q.enqueueAdd(desc)
	q.enqueueAdd(desc)

	adds, _ := q.pending()
	assert.Equal(t, 1, adds)

	_, ok := q.takeAddition()
	require.True(t, ok)
	_, ok = q.takeAddition()
	assert.False(t, ok)
}
