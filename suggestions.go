package inline

// Autocomplete driver (spec.md §2 component E, §4.D). Grounded on the
// teacher's buffer_sprites.go (an id-keyed list with a "current"
// cursor), generalized from sprite ids to ghost-suggestion suffixes.

// AutocompleteFunc enumerates completion suffixes for the current
// buffer contents. index starts at 0 and is opaque to the editor; each
// call should return the next suffix (text to append at the cursor,
// not the full match) or ok=false to terminate.
type AutocompleteFunc func(buf string, index int) (suffix string, ok bool)

type suggestions struct {
	list *stringList
	fn   AutocompleteFunc
}

func newSuggestions() *suggestions {
	return &suggestions{list: newStringList()}
}

func (s *suggestions) clear() {
	s.list.clear()
}

func (s *suggestions) hasSuggestions() bool {
	return s.list.count() > 0
}

func (s *suggestions) current() (string, bool) {
	return s.list.current()
}

func (s *suggestions) advance(delta int) {
	s.list.advance(delta, true)
}

// regenerate invokes the host enumerator and replaces the suggestion
// list. Callers are responsible for the gating condition (cursor at
// end of buffer, no active selection) described in spec.md §4.D.
func (s *suggestions) regenerate(buf string) {
	s.list.clear()
	if s.fn == nil {
		return
	}
	for i := 0; ; i++ {
		suffix, ok := s.fn(buf, i)
		if !ok {
			break
		}
		s.list.append(suffix)
	}
	if s.list.count() > 0 {
		s.list.browse = 0
	}
}
