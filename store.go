package selection

import (
	"errors"
	"fmt"
	"image/color"
	"iter"
)

// ErrUnknownChannel is returned for ids that were never issued by the
// store or whose channel has been deleted.
var ErrUnknownChannel = errors.New("selection: unknown channel")

// ChannelID identifies a channel within a Store. The zero value is never
// issued.
//
// The low 32 bits hold the slot index and the high 32 bits the slot
// generation, so an id goes stale once its channel is deleted even when
// the slot is reused.
type ChannelID uint64

func makeID(index, gen uint32) ChannelID {
	return ChannelID(uint64(gen)<<32 | uint64(index))
}

func (id ChannelID) index() uint32 { return uint32(id) }
func (id ChannelID) gen() uint32   { return uint32(id >> 32) }

// String formats the id as index:generation.
func (id ChannelID) String() string {
	return fmt.Sprintf("%d:%d", id.index(), id.gen())
}

type slot struct {
	ch  *Channel
	gen uint32
}

// Store is an arena of channels addressed by ChannelID.
//
// Store is not safe for concurrent use.
type Store struct {
	slots []slot
	free  []uint32
	live  int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// New creates an empty channel and returns its id. Options are applied
// after the explicit attributes.
func (s *Store) New(imageID, width, height int, name string, opacity float64, col color.NRGBA, opts ...ChannelOption) ChannelID {
	base := []ChannelOption{
		WithImageID(imageID),
		WithName(name),
		WithOpacity(opacity),
		WithColor(col),
	}
	return s.Add(New(width, height, append(base, opts...)...))
}

// Add takes ownership of c and returns its new id.
func (s *Store) Add(c *Channel) ChannelID {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}

	sl := &s.slots[idx]
	sl.gen++
	sl.ch = c
	c.id = makeID(idx, sl.gen)
	s.live++
	return c.id
}

// Get returns the channel for id, or false when id is stale.
func (s *Store) Get(id ChannelID) (*Channel, bool) {
	idx := id.index()
	if int(idx) >= len(s.slots) {
		return nil, false
	}
	sl := s.slots[idx]
	if sl.ch == nil || sl.gen != id.gen() {
		return nil, false
	}
	return sl.ch, true
}

// lookup is Get with a wrapped error for stale ids.
func (s *Store) lookup(id ChannelID) (*Channel, error) {
	c, ok := s.Get(id)
	if !ok {
		Logger().Warn("selection: stale channel id", "id", id)
		return nil, fmt.Errorf("selection: channel %v: %w", id, ErrUnknownChannel)
	}
	return c, nil
}

// Copy duplicates the channel id and returns the copy's id.
func (s *Store) Copy(id ChannelID) (ChannelID, error) {
	c, err := s.lookup(id)
	if err != nil {
		return 0, err
	}
	return s.Add(c.Copy()), nil
}

// Delete closes the channel and frees its id.
func (s *Store) Delete(id ChannelID) error {
	c, err := s.lookup(id)
	if err != nil {
		return err
	}
	c.Close()
	c.id = 0

	idx := id.index()
	s.slots[idx].ch = nil
	s.free = append(s.free, idx)
	s.live--
	return nil
}

// Len returns the number of live channels.
func (s *Store) Len() int { return s.live }

// All yields every live channel in slot order.
func (s *Store) All() iter.Seq2[ChannelID, *Channel] {
	return func(yield func(ChannelID, *Channel) bool) {
		for _, sl := range s.slots {
			if sl.ch == nil {
				continue
			}
			if !yield(sl.ch.id, sl.ch) {
				return
			}
		}
	}
}

// CombineMask merges channel src into channel dst; see Channel.CombineMask.
func (s *Store) CombineMask(dst, src ChannelID, op Op, offX, offY int) error {
	d, err := s.lookup(dst)
	if err != nil {
		return err
	}
	sc, err := s.lookup(src)
	if err != nil {
		return err
	}
	d.CombineMask(sc, op, offX, offY)
	return nil
}

// Feather blurs channel in and merges it into out; see Channel.Feather.
func (s *Store) Feather(in, out ChannelID, radius float64, op Op, offX, offY int) error {
	ic, err := s.lookup(in)
	if err != nil {
		return err
	}
	oc, err := s.lookup(out)
	if err != nil {
		return err
	}
	ic.Feather(oc, radius, op, offX, offY)
	return nil
}

// Close closes every channel and empties the store. Previously issued ids
// become stale.
func (s *Store) Close() {
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.ch == nil {
			continue
		}
		sl.ch.Close()
		sl.ch.id = 0
		sl.ch = nil
		s.free = append(s.free, uint32(i))
	}
	s.live = 0
}
