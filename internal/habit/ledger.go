package habit

import (
	"encoding/json"
	"sort"

	"github.com/mstern/zenith/internal/dateutil"
)

// CompletionSet holds the habit ids completed on one day. Set semantics: a
// habit id is present at most once.
type CompletionSet map[string]struct{}

// MarshalJSON writes the set as a sorted id list so documents are stable
// across saves.
func (s CompletionSet) MarshalJSON() ([]byte, error) {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return json.Marshal(ids)
}

// UnmarshalJSON reads an id list, deduplicating on the way in. Early layouts
// occasionally persisted the same id twice.
func (s *CompletionSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	set := make(CompletionSet, len(ids))
	for _, id := range ids {
		if id != "" {
			set[id] = struct{}{}
		}
	}
	*s = set
	return nil
}

// Ledger maps day keys to the habits completed that day.
type Ledger map[string]CompletionSet

// Has reports whether the habit id is recorded as completed on day.
func (l Ledger) Has(day, id string) bool {
	_, ok := l[day][id]
	return ok
}

// Toggle flips membership of id in day's set and reports the new state.
// Emptied day sets are dropped so the document does not accumulate tombstone
// keys.
func (l Ledger) Toggle(day, id string) bool {
	set, ok := l[day]
	if !ok {
		set = make(CompletionSet)
		l[day] = set
	}
	if _, done := set[id]; done {
		delete(set, id)
		if len(set) == 0 {
			delete(l, day)
		}
		return false
	}
	set[id] = struct{}{}
	return true
}

// Sweep removes id from every day's set.
func (l Ledger) Sweep(id string) {
	for day, set := range l {
		delete(set, id)
		if len(set) == 0 {
			delete(l, day)
		}
	}
}

// sanitize drops malformed day keys left behind by older releases. Ids are
// left alone: referential integrity is maintained by the cascading delete in
// Store.Delete, not by load-time cleanup.
func (l Ledger) sanitize() {
	for day, set := range l {
		if !dateutil.ValidDay(day) || len(set) == 0 {
			delete(l, day)
		}
	}
}
