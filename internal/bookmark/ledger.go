package bookmark

// Ledger is an insertion-ordered set of bookmarked question ids.
type Ledger struct {
	ids   []string
	index map[string]int
}

func NewLedger() *Ledger {
	return &Ledger{index: map[string]int{}}
}

// Toggle flips id and returns whether it is bookmarked afterwards.
func (l *Ledger) Toggle(id string) bool {
	if i, ok := l.index[id]; ok {
		l.ids = append(l.ids[:i], l.ids[i+1:]...)
		delete(l.index, id)
		for j := i; j < len(l.ids); j++ {
			l.index[l.ids[j]] = j
		}
		return false
	}
	l.index[id] = len(l.ids)
	l.ids = append(l.ids, id)
	return true
}

func (l *Ledger) IsBookmarked(id string) bool {
	_, ok := l.index[id]
	return ok
}

func (l *Ledger) All() []string {
	return append([]string{}, l.ids...)
}

func (l *Ledger) Len() int {
	return len(l.ids)
}

func (l *Ledger) Clear() {
	l.ids = nil
	l.index = map[string]int{}
}

// Load replaces the set with ids, dropping duplicates and empty ids.
func (l *Ledger) Load(ids []string) {
	l.Clear()
	for _, id := range ids {
		if id == "" || l.IsBookmarked(id) {
			continue
		}
		l.index[id] = len(l.ids)
		l.ids = append(l.ids, id)
	}
}
