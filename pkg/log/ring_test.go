package log

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingKeepsLastEntries(t *testing.T) {
	r := NewRing(3)

	for i := 0; i < 5; i++ {
		_, err := r.Write([]byte(fmt.Sprintf(`{"n":%d}`+"\n", i)))
		assert.NoError(t, err)
	}

	got := r.Entries()
	assert.Equal(t, []string{`{"n":2}`, `{"n":3}`, `{"n":4}`}, got)
}

func TestRingPartiallyFilled(t *testing.T) {
	r := NewRing(10)

	r.Write([]byte("{\"a\":1}\n"))
	r.Write([]byte("{\"b\":2}\n"))

	assert.Equal(t, []string{`{"a":1}`, `{"b":2}`}, r.Entries())
}

func TestRingIgnoresEmptyWrites(t *testing.T) {
	r := NewRing(4)
	r.Write([]byte("\n"))
	assert.Empty(t, r.Entries())
}
