package jobcontrol

// All is the printer selector sentinel meaning "every job", as opposed to a
// specific job number.
const All = -1

// activeSlot is the reserved table index holding the job under
// construction, invisible to job numbers and counts (spec invariant I1).
const activeSlot = 0

// shrinkCapacityThreshold, with the half-unused check in compact, implements
// the memory-reclamation hint from spec §4.1: once the table has grown past
// this many slots, and more than half sit unused after a removal, its
// backing array is reallocated down to the live tail. This is observable
// only as reduced memory footprint, never through the public contract.
const shrinkCapacityThreshold = 20

// Table is the sparse, indexed collection of jobs described in spec §3 and
// §4.1. Index 0 is the active slot; indices >= 1 are user-visible job
// numbers. A Table is not safe for concurrent use — spec §5 assumes a
// single-threaded cooperative caller.
type Table struct {
	slots    []*Job
	current  int
	previous int
}

// NewTable returns an initialized, empty Table. Equivalent to calling Init
// on a zero-value Table.
func NewTable() *Table {
	t := &Table{}
	t.Init()
	return t
}

// Init creates the table with the active slot present and empty. It is
// idempotent: calling it again on a non-empty table discards all jobs,
// matching RemoveAll's semantics.
func (t *Table) Init() {
	t.slots = make([]*Job, 1)
	t.current = 0
	t.previous = 0
}

// SetActive stores job in the active slot. Precondition: the active slot
// must be empty; violating this is a programming error.
func (t *Table) SetActive(job *Job) {
	if t.slots[activeSlot] != nil {
		panic("jobcontrol: SetActive called with active slot already occupied")
	}
	t.slots[activeSlot] = job
}

// Active returns the job currently parked in the active slot, or nil.
func (t *Table) Active() *Job {
	return t.slots[activeSlot]
}

// AddJob moves the job out of the active slot into the lowest free index
// >= 1 (appending if none is free), then updates current/previous per spec
// §4.1: if makeCurrent or there is no current job, the new job becomes
// current; otherwise, if there is no previous job, it becomes previous;
// otherwise the labels are unchanged. It returns the job's new number, or 0
// if the active slot was empty (nothing to publish).
func (t *Table) AddJob(makeCurrent bool) int {
	job := t.slots[activeSlot]
	if job == nil {
		return 0
	}
	t.slots[activeSlot] = nil

	n := t.lowestFreeIndex()
	if n >= len(t.slots) {
		t.slots = append(t.slots, job)
	} else {
		t.slots[n] = job
	}

	switch {
	case makeCurrent || t.current == 0:
		t.SetCurrent(n)
	case t.previous == 0:
		t.previous = n
	}
	return n
}

func (t *Table) lowestFreeIndex() int {
	for i := 1; i < len(t.slots); i++ {
		if t.slots[i] == nil {
			return i
		}
	}
	return len(t.slots)
}

// Get returns the job at index n, or nil if the slot is absent or n is out
// of range. Index 0 always returns the active slot's contents.
func (t *Table) Get(n int) *Job {
	if n < 0 || n >= len(t.slots) {
		return nil
	}
	return t.slots[n]
}

// Remove clears slot n, compacts trailing empty slots, and adjusts
// current/previous per spec §4.2. It reports whether a job was present.
func (t *Table) Remove(n int) bool {
	if n <= activeSlot || n >= len(t.slots) || t.slots[n] == nil {
		return false
	}
	t.slots[n] = nil
	t.compact()
	t.onRemove(n)
	return true
}

// compact truncates the table to one past the last non-empty index, and
// additionally shrinks the backing array's capacity when it has grown
// large and is now mostly unused (spec §4.1).
func (t *Table) compact() {
	tail := 0
	for i := len(t.slots) - 1; i >= 0; i-- {
		if t.slots[i] != nil {
			tail = i
			break
		}
	}
	newLen := tail + 1
	if newLen < 1 {
		newLen = 1
	}
	t.slots = t.slots[:newLen]

	if cap(t.slots) > shrinkCapacityThreshold && newLen*2 < cap(t.slots) {
		shrunk := make([]*Job, newLen)
		copy(shrunk, t.slots)
		t.slots = shrunk
	}
}

// RemoveAll clears every slot and zeroes current/previous. Spec §9 notes
// this explicit zeroing is redundant with the per-removal adjustment chain
// but directs that it be preserved rather than relied away.
func (t *Table) RemoveAll() {
	for i := 1; i < len(t.slots); i++ {
		if t.slots[i] != nil {
			t.onRemove(i)
			t.slots[i] = nil
		}
	}
	t.slots = t.slots[:1]
	t.current = 0
	t.previous = 0
}

// Count returns the number of user-visible jobs (slots >= 1).
func (t *Table) Count() int {
	n := 0
	for i := 1; i < len(t.slots); i++ {
		if t.slots[i] != nil {
			n++
		}
	}
	return n
}

// StoppedCount returns the number of user-visible jobs whose aggregate
// state is Stopped.
func (t *Table) StoppedCount() int {
	n := 0
	for i := 1; i < len(t.slots); i++ {
		if j := t.slots[i]; j != nil && j.State == JobStopped {
			n++
		}
	}
	return n
}

// NumberedJobs returns every live job number in ascending order, for
// callers that need to enumerate jobs (e.g. `%name` prefix matching, or
// `wait` with no arguments waiting on all of them).
func (t *Table) NumberedJobs() []int {
	nums := make([]int, 0, len(t.slots)-1)
	for i := 1; i < len(t.slots); i++ {
		if t.slots[i] != nil {
			nums = append(nums, i)
		}
	}
	return nums
}

// Current returns the current job number, or 0 if none.
func (t *Table) Current() int { return t.current }

// Previous returns the previous job number, or 0 if none.
func (t *Table) Previous() int { return t.previous }

// Len returns the table's total slot count including the active slot,
// exposed only for tests asserting on the compaction rule.
func (t *Table) Len() int { return len(t.slots) }

// Cap returns the table's backing array capacity, exposed only for tests
// asserting on the compaction rule.
func (t *Table) Cap() int { return cap(t.slots) }

// exists reports whether n names a live job, used by the selector.
func (t *Table) exists(n int) bool {
	return n >= 1 && n < len(t.slots) && t.slots[n] != nil
}

// FindProcess locates the job and process record owning pid by linear scan
// of every slot, including the active slot (a child can be reaped before
// its job is published via AddJob). Returns (nil, nil) if no job claims
// pid, which is expected and silently ignored after a disown (spec §4.3
// step g).
func (t *Table) FindProcess(pid int) (*Job, *Process) {
	for _, job := range t.slots {
		if job == nil {
			continue
		}
		for _, p := range job.Processes {
			if p.Forked && p.PID == pid {
				return job, p
			}
		}
	}
	return nil, nil
}
