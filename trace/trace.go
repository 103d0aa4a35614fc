// Package trace records a hierarchy of parsed items for diagnostics.
// The recorder is a pure side channel: decryption never consults it
// for control flow, and a nil *Recorder (or nil *Item) is a safe
// no-op, so callers thread it through unconditionally.
package trace

import "github.com/rs/zerolog"

// Fields carries per-item diagnostic values.
type Fields map[string]interface{}

// Item is one node of the recorded parse tree.
type Item struct {
	Name   string
	Fields Fields
	Items  []*Item
}

// Recorder accumulates a tree of parse items. Nesting is expressed by
// running the nested parse inside the closure passed to Item, with the
// child accumulator as argument; there is no implicit current-node
// state. A Recorder must be owned by a single decrypt operation at a
// time.
type Recorder struct {
	items  []*Item
	logger *zerolog.Logger
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Logger sets a debug sink: every completed item is emitted as one
// debug event. Returns the recorder for chaining.
func (r *Recorder) Logger(logger zerolog.Logger) *Recorder {
	r.logger = &logger
	return r
}

// Item records one top-level item and runs fn, if any, with the item
// as accumulator for nested records. The error of fn is returned
// unchanged; the item stays recorded either way, which keeps partial
// parses visible.
func (r *Recorder) Item(name string, fields Fields, fn func(*Item) error) error {
	if r == nil {
		if fn != nil {
			return fn(nil)
		}
		return nil
	}
	item := &Item{Name: name, Fields: fields}
	r.items = append(r.items, item)
	var err error
	if fn != nil {
		err = fn(item)
	}
	r.emit(item)
	return err
}

// Consumed returns the recorded items, children nested under their
// parents.
func (r *Recorder) Consumed() []*Item {
	if r == nil {
		return nil
	}
	return r.items
}

// Values walks the recorded tree depth-first and collects the given
// field from every item that has it. Useful for debugging.
func (r *Recorder) Values(key string) []interface{} {
	if r == nil {
		return nil
	}
	var out []interface{}
	Walk(r.items, func(_ int, item *Item) {
		if v, ok := item.Fields[key]; ok {
			out = append(out, v)
		}
	})
	return out
}

// Item records a child item and runs fn, if any, with the child as
// accumulator.
func (it *Item) Item(name string, fields Fields, fn func(*Item) error) error {
	if it == nil {
		if fn != nil {
			return fn(nil)
		}
		return nil
	}
	child := &Item{Name: name, Fields: fields}
	it.Items = append(it.Items, child)
	if fn != nil {
		return fn(child)
	}
	return nil
}

// Record adds a leaf child item.
func (it *Item) Record(name string, fields Fields) {
	if it == nil {
		return
	}
	it.Items = append(it.Items, &Item{Name: name, Fields: fields})
}

// Set adds or replaces a field on the item after creation, for values
// only known once the item has been parsed.
func (it *Item) Set(key string, value interface{}) {
	if it == nil {
		return
	}
	if it.Fields == nil {
		it.Fields = Fields{}
	}
	it.Fields[key] = value
}

// Walk visits items depth-first, reporting the nesting depth.
func Walk(items []*Item, fn func(depth int, item *Item)) {
	walk(items, 0, fn)
}

func walk(items []*Item, depth int, fn func(depth int, item *Item)) {
	for _, item := range items {
		fn(depth, item)
		walk(item.Items, depth+1, fn)
	}
}

func (r *Recorder) emit(item *Item) {
	if r.logger == nil {
		return
	}
	Walk([]*Item{item}, func(depth int, it *Item) {
		r.logger.Debug().
			Int("depth", depth).
			Int("children", len(it.Items)).
			Fields(map[string]interface{}(it.Fields)).
			Msg(it.Name)
	})
}
