package subset

// Quota tracks per-group remaining row budgets during a single linear
// scan. It is owned exclusively by the streaming filter performing the
// scan and is discarded afterwards.
type Quota struct {
	remaining map[string]int
	open      int
}

// NewQuota initializes a budget of max rows for every group key.
// Keys outside the set are never eligible.
func NewQuota(groups KeySet, max int) *Quota {
	q := &Quota{remaining: make(map[string]int, len(groups))}
	for g := range groups {
		q.remaining[g] = max
		if max > 0 {
			q.open++
		}
	}
	return q
}

// Take consumes one unit of the group's budget. It returns false when
// the group is unknown or its budget is already spent; the row is then
// rejected. First-seen rows win: selection depends only on source order.
func (q *Quota) Take(group string) bool {
	n, ok := q.remaining[group]
	if !ok || n == 0 {
		return false
	}
	q.remaining[group] = n - 1
	if n == 1 {
		q.open--
	}
	return true
}

// Exhausted reports whether every group's budget has reached zero. The
// streaming filter checks it after each chunk and stops the scan early;
// the remainder of the source cannot contribute any rows.
func (q *Quota) Exhausted() bool {
	return q.open == 0
}

// Remaining returns the unspent budget of a group. Unknown groups have
// zero budget.
func (q *Quota) Remaining(group string) int {
	return q.remaining[group]
}
