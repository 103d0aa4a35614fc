package trace

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderNesting(t *testing.T) {
	recorder := NewRecorder()
	err := recorder.Item("packet", Fields{"tag": 1}, func(packet *Item) error {
		return packet.Item("mpi group", nil, func(group *Item) error {
			group.Record("mpi", Fields{"bits": 1024})
			group.Record("mpi", Fields{"bits": 17})
			return nil
		})
	})
	require.NoError(t, err)

	items := recorder.Consumed()
	require.Len(t, items, 1)
	assert.Equal(t, "packet", items[0].Name)
	assert.Equal(t, 1, items[0].Fields["tag"])

	require.Len(t, items[0].Items, 1)
	group := items[0].Items[0]
	assert.Equal(t, "mpi group", group.Name)
	require.Len(t, group.Items, 2)
	assert.Equal(t, 1024, group.Items[0].Fields["bits"])
	assert.Equal(t, 17, group.Items[1].Fields["bits"])
}

func TestRecorderSiblings(t *testing.T) {
	recorder := NewRecorder()
	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, recorder.Item(name, nil, nil))
	}
	items := recorder.Consumed()
	require.Len(t, items, 3)
	assert.Equal(t, "second", items[1].Name)
}

func TestRecorderKeepsPartialParses(t *testing.T) {
	recorder := NewRecorder()
	parseErr := errors.New("truncated")
	err := recorder.Item("packet", nil, func(packet *Item) error {
		packet.Record("mpi", Fields{"bits": 8})
		return parseErr
	})
	assert.Equal(t, parseErr, err)

	// The partially parsed item stays visible.
	items := recorder.Consumed()
	require.Len(t, items, 1)
	assert.Len(t, items[0].Items, 1)
}

func TestRecorderSet(t *testing.T) {
	recorder := NewRecorder()
	err := recorder.Item("packet", nil, func(packet *Item) error {
		packet.Set("version", 3)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, recorder.Consumed()[0].Fields["version"])
}

func TestNilRecorderIsNoOp(t *testing.T) {
	var recorder *Recorder
	ran := false
	err := recorder.Item("packet", nil, func(item *Item) error {
		ran = true
		item.Record("mpi", nil)
		item.Set("version", 3)
		return item.Item("nested", nil, nil)
	})
	require.NoError(t, err)
	assert.True(t, ran, "the parse body still runs without a recorder")
	assert.Nil(t, recorder.Consumed())
	assert.Nil(t, recorder.Values("version"))
}

func TestValues(t *testing.T) {
	recorder := NewRecorder()
	err := recorder.Item("packet", Fields{"bits": 8}, func(packet *Item) error {
		packet.Record("mpi", Fields{"bits": 1024})
		packet.Record("header", nil)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{8, 1024}, recorder.Values("bits"))
}

func TestWalkDepth(t *testing.T) {
	recorder := NewRecorder()
	err := recorder.Item("a", nil, func(a *Item) error {
		return a.Item("b", nil, func(b *Item) error {
			b.Record("c", nil)
			return nil
		})
	})
	require.NoError(t, err)

	var depths []int
	Walk(recorder.Consumed(), func(depth int, _ *Item) {
		depths = append(depths, depth)
	})
	assert.Equal(t, []int{0, 1, 2}, depths)
}

func TestLoggerSink(t *testing.T) {
	var buf bytes.Buffer
	recorder := NewRecorder().Logger(zerolog.New(&buf))

	err := recorder.Item("packet", Fields{"tag": 1}, func(packet *Item) error {
		packet.Record("mpi", Fields{"bits": 64})
		return nil
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"packet"`)
	assert.Contains(t, out, `"message":"mpi"`)
	assert.Contains(t, out, `"bits":64`)
}
