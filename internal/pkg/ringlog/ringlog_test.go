package ringlog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBufferKeepsNewest(t *testing.T) {
	buf := New(3)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		buf.Append(Entry{At: base.Add(time.Duration(i) * time.Second), Text: fmt.Sprintf("line %d", i)})
	}
	entries := buf.Entries()
	assert.Len(t, entries, 3)
	assert.Equal(t, []string{"line 2", "line 3", "line 4"}, []string{entries[0].Text, entries[1].Text, entries[2].Text})
	assert.Equal(t, 3, buf.Len())
	assert.Equal(t, 3, buf.Cap())
}

func TestBufferPartial(t *testing.T) {
	buf := New(0)
	assert.Equal(t, DefaultCapacity, buf.Cap())
	assert.Empty(t, buf.Entries())

	buf.Append(Entry{At: time.Date(2024, 1, 1, 9, 5, 7, 0, time.Local), Text: "Fetching positions..."})
	assert.Equal(t, []string{"[09:05:07] Fetching positions..."}, buf.Lines())
}
