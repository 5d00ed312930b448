package selector

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/solve"
)

// MimicRecordingEntitySelector wraps an EntitySelector and remembers the
// last ref it handed out, so a MimicReplayingEntitySelector elsewhere in
// the same move selector can reuse that exact pick (e.g. both halves of
// a CartesianProduct acting on the same entity).
type MimicRecordingEntitySelector struct {
	Base EntitySelector

	last domain.EntityRef
}

// NewMimicRecordingEntitySelector wraps base for recording.
func NewMimicRecordingEntitySelector(base EntitySelector) *MimicRecordingEntitySelector {
	return &MimicRecordingEntitySelector{Base: base}
}

func (s *MimicRecordingEntitySelector) Size(director solve.ScoreDirector) int64 {
	return s.Base.Size(director)
}

func (s *MimicRecordingEntitySelector) IsNeverEnding() bool { return s.Base.IsNeverEnding() }

func (s *MimicRecordingEntitySelector) Select(director solve.ScoreDirector, index int64) domain.EntityRef {
	s.last = s.Base.Select(director, index)
	return s.last
}

// Recorded returns the most recently recorded ref.
func (s *MimicRecordingEntitySelector) Recorded() domain.EntityRef { return s.last }

// MimicReplayingEntitySelector always returns whatever its paired
// recorder most recently selected, ignoring its own index argument.
type MimicReplayingEntitySelector struct {
	Recorder *MimicRecordingEntitySelector
}

// NewMimicReplayingEntitySelector pairs a replayer with recorder.
func NewMimicReplayingEntitySelector(recorder *MimicRecordingEntitySelector) *MimicReplayingEntitySelector {
	return &MimicReplayingEntitySelector{Recorder: recorder}
}

func (s *MimicReplayingEntitySelector) Size(director solve.ScoreDirector) int64 {
	return s.Recorder.Size(director)
}

func (s *MimicReplayingEntitySelector) IsNeverEnding() bool { return s.Recorder.IsNeverEnding() }

func (s *MimicReplayingEntitySelector) Select(solve.ScoreDirector, int64) domain.EntityRef {
	return s.Recorder.Recorded()
}
