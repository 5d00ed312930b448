package solve

// RecordingScoreDirector wraps a ScoreDirector with an LIFO undo log
// (spec §4.F). Moves call RegisterUndo with a closure that restores the
// pre-move state by running the same BeforeVariableChanged/mutate/
// AfterVariableChanged sequence in reverse; because that sequence goes
// back through the embedded ScoreDirector, the cached score is restored
// exactly, not just the working solution (spec §4.F's "bit-identical"
// contract).
//
// Go closures capture heterogeneous state natively, so a single
// `func()` per entry serves every move kind without a tagged-union
// undoAction type (spec §9 sanctions this as an equally valid
// alternative to per-move-kind undo structs).
type RecordingScoreDirector struct {
	ScoreDirector
	undoLog []func()
}

// NewRecordingScoreDirector wraps inner for a scoped sequence of trial
// mutations that may need to be undone.
func NewRecordingScoreDirector(inner ScoreDirector) *RecordingScoreDirector {
	return &RecordingScoreDirector{ScoreDirector: inner}
}

// RegisterUndo appends fn to the undo log. Each built-in move registers
// one closure per DoMove call that restores every entity it touched
// (Composite through the closures its two children register), in the
// order the moves were applied.
func (r *RecordingScoreDirector) RegisterUndo(fn func()) {
	r.undoLog = append(r.undoLog, fn)
}

// UndoChanges pops every registered closure in LIFO order, applying each
// to reverse the working solution and cached score back to their state
// when this wrapper was constructed or the log was last emptied (by
// UndoChanges, Commit, or UndoTo(0)).
func (r *RecordingScoreDirector) UndoChanges() {
	for i := len(r.undoLog) - 1; i >= 0; i-- {
		r.undoLog[i]()
	}
	r.undoLog = r.undoLog[:0]
}

// PendingUndoCount reports how many undo closures are currently queued,
// useful for tests asserting a move registered exactly the steps it
// claimed to.
func (r *RecordingScoreDirector) PendingUndoCount() int { return len(r.undoLog) }

// Mark returns a checkpoint for the current undo log length, to be passed
// to UndoTo later. Callers that nest scoped mutations inside one shared
// recording director (e.g. a depth-first search reusing one director
// across every level) take a Mark before descending a level and UndoTo
// that mark when backtracking out of it, so unwinding one level never
// touches the closures an ancestor level registered.
func (r *RecordingScoreDirector) Mark() int { return len(r.undoLog) }

// UndoTo pops and applies undo closures in LIFO order down to mark,
// leaving the log at exactly that length. mark must be a value
// previously returned by Mark on this same director; undoing to a mark
// from a different instance, or one taken after closures below it were
// already popped, is a programmer error.
func (r *RecordingScoreDirector) UndoTo(mark int) {
	for i := len(r.undoLog) - 1; i >= mark; i-- {
		r.undoLog[i]()
	}
	r.undoLog = r.undoLog[:mark]
}

// Commit discards every pending undo closure without running it,
// permanently keeping the mutation(s) they would have reversed. A phase
// calls this after choosing a candidate it evaluated and wants to apply
// for real, so the log doesn't grow across an entire solve.
func (r *RecordingScoreDirector) Commit() {
	r.undoLog = r.undoLog[:0]
}
