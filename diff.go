package persi

// diffItem is one unit of pending in-order work: either a whole
// subtree still to be considered, or a single entry ready to be
// compared.
type diffItem[T any, L any] struct {
	link     L
	entry    T
	hasEntry bool
}

type diffStack[T any, L RBLink[T, L]] struct {
	items []diffItem[T, L]
}

func (s *diffStack[T, L]) pushLink(l L) {
	var zero L
	if l != zero {
		s.items = append(s.items, diffItem[T, L]{link: l})
	}
}

func (s *diffStack[T, L]) top() (diffItem[T, L], bool) {
	if len(s.items) == 0 {
		return diffItem[T, L]{}, false
	}
	return s.items[len(s.items)-1], true
}

func (s *diffStack[T, L]) pop() {
	s.items = s.items[:len(s.items)-1]
}

// expand replaces the subtree on top of the stack with its in-order
// parts: left subtree, then the node's entry, then the right subtree.
func (s *diffStack[T, L]) expand() {
	n := s.items[len(s.items)-1].link
	s.pop()
	s.pushLink(n.Right())
	s.items = append(s.items, diffItem[T, L]{entry: n.Value(), hasEntry: true})
	s.pushLink(n.Left())
}

// diffFunc walks t and old together in order, invoking f for entries
// present only in t (added), only in old (removed), or present in both
// with changed reporting true (added and removed).  When the two walks
// reach an identical shared subtree it is skipped whole: entries under
// it are equal in both versions by construction.  Stops early if f
// returns false.
func (t RBTree[T, L]) diffFunc(old RBTree[T, L], changed func(a, b T) bool, f func(added, removed bool, newEntry, oldEntry T) bool) {
	var ns, os diffStack[T, L]
	ns.pushLink(t.root)
	os.pushLink(old.root)
	var zt T
	for {
		nt, nok := ns.top()
		ot, ook := os.top()
		if !nok && !ook {
			return
		}
		if nok && ook && !nt.hasEntry && !ot.hasEntry && nt.link == ot.link {
			ns.pop()
			os.pop()
			continue
		}
		if nok && !nt.hasEntry {
			ns.expand()
			continue
		}
		if ook && !ot.hasEntry {
			os.expand()
			continue
		}
		switch {
		case !ook:
			if !f(true, false, nt.entry, zt) {
				return
			}
			ns.pop()
		case !nok:
			if !f(false, true, zt, ot.entry) {
				return
			}
			os.pop()
		default:
			switch c := t.compare(nt.entry, ot.entry); {
			case c < 0:
				if !f(true, false, nt.entry, zt) {
					return
				}
				ns.pop()
			case c > 0:
				if !f(false, true, zt, ot.entry) {
					return
				}
				os.pop()
			default:
				if changed(nt.entry, ot.entry) {
					if !f(true, true, nt.entry, ot.entry) {
						return
					}
				}
				ns.pop()
				os.pop()
			}
		}
	}
}
