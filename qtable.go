package qtable

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	// MinKey and MaxKey bound the keys a Table accepts.
	MinKey = 100
	MaxKey = 999

	// loadFactor is checked before every insert; reaching it triggers a resize.
	loadFactor = 0.5
)

// slot is either empty or holds one key-value pair.
type slot struct {
	occupied bool
	key      int
	value    int
}

// Table is an open-addressing hash table for integer keys in [MinKey, MaxKey]
// that resolves collisions with quadratic probing and grows to a prime
// capacity once half full.
//
// A Table is not safe for concurrent use. Slot positions change on every
// resize, so callers must not rely on them across calls.
type Table struct {
	slots  []slot
	count  int
	logger *log.Logger
}

// New creates an empty table with the given number of slots. The capacity is
// used as given; it becomes prime after the first resize.
func New(capacity int) (*Table, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Table{slots: make([]slot, capacity)}, nil
}

// SetLogger enables resize diagnostics. A nil logger silences them.
func (t *Table) SetLogger(l *log.Logger) {
	t.logger = l
}

func (t *Table) logf(format string, args ...any) {
	if t.logger != nil {
		t.logger.Printf(format, args...)
	}
}

// Len returns the number of stored keys.
func (t *Table) Len() int {
	return t.count
}

// Capacity returns the current number of slots.
func (t *Table) Capacity() int {
	return len(t.slots)
}

// LoadFactor returns Len()/Capacity().
func (t *Table) LoadFactor() float64 {
	return float64(t.count) / float64(len(t.slots))
}

// Insert stores value under key. Inserting a key that is already present is a
// no-op and keeps the existing value. Keys outside [MinKey, MaxKey] are
// rejected with an *InvalidKeyError and the table is left unchanged.
func (t *Table) Insert(key, value int) error {
	if key < MinKey || key > MaxKey {
		return &InvalidKeyError{Key: key}
	}
	t.put(key, value)
	return nil
}

// put runs the growth check and places the pair. Resize re-enters here for
// every rehomed pair.
func (t *Table) put(key, value int) {
	if float64(t.count) >= float64(len(t.slots))*loadFactor {
		t.resize()
	}

	for {
		idx, found := t.locate(key)
		switch {
		case found:
			return
		case idx < 0:
			// Only reachable with a non-prime capacity, whose probe sequence
			// may skip every free slot. Growing restores a prime capacity.
			t.logf("probe sequence for key %d exhausted at capacity %d", key, len(t.slots))
			t.resize()
		default:
			t.slots[idx] = slot{occupied: true, key: key, value: value}
			t.count++
			return
		}
	}
}

// locate walks the probe sequence of key and returns the first slot that is
// empty or holds key. It returns -1 if no such slot is visited within
// Capacity() attempts.
func (t *Table) locate(key int) (idx int, found bool) {
	n := len(t.slots)
	home := Hash(key, n)
	for i := 0; i < n; i++ {
		idx = Probe(home, i, n)
		s := &t.slots[idx]
		if !s.occupied {
			return idx, false
		}
		if s.key == key {
			return idx, true
		}
	}
	return -1, false
}

// Search returns the value stored under key and whether it was found.
func (t *Table) Search(key int) (int, bool) {
	if key < MinKey || key > MaxKey {
		return 0, false
	}
	idx, found := t.locate(key)
	if !found {
		return 0, false
	}
	return t.slots[idx].value, true
}

// resize rebuilds the table at the smallest prime above twice the current
// capacity. Pairs are re-inserted in old slot order.
func (t *Table) resize() {
	old := t.slots
	newCap := NextPrime(2 * len(old))
	t.logf("resize: capacity %d -> %d (%d entries)", len(old), newCap, t.count)

	t.slots = make([]slot, newCap)
	t.count = 0
	for _, s := range old {
		if s.occupied {
			t.put(s.key, s.value)
		}
	}
}

// ForEach calls fn for every stored pair in slot order until fn returns false.
func (t *Table) ForEach(fn func(key, value int) bool) {
	for _, s := range t.slots {
		if s.occupied && !fn(s.key, s.value) {
			return
		}
	}
}

// Print writes every slot in index order, "key value" for occupied slots and
// "_" for empty ones, separated by spaces and terminated by a newline.
func (t *Table) Print(w io.Writer) error {
	_, err := io.WriteString(w, t.String()+"\n")
	return err
}

func (t *Table) String() string {
	var sb strings.Builder
	for i, s := range t.slots {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if !s.occupied {
			sb.WriteByte('_')
			continue
		}
		sb.WriteString(strconv.Itoa(s.key))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(s.value))
	}
	return sb.String()
}

// Digest returns an xxhash-64 fingerprint of the slot layout. Tables with the
// same capacity and the same pairs in the same slots have equal digests.
func (t *Table) Digest() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 17)
	for _, s := range t.slots {
		buf = buf[:0]
		if s.occupied {
			buf = append(buf, 1)
			buf = binary.LittleEndian.AppendUint64(buf, uint64(s.key))
			buf = binary.LittleEndian.AppendUint64(buf, uint64(s.value))
		} else {
			buf = append(buf, 0)
		}
		d.Write(buf)
	}
	return d.Sum64()
}
