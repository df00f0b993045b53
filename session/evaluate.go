package session

import (
	"github.com/lixenwraith/patternlock/geometry"
)

// evaluate runs on entry to Evaluating with a non-empty path
func (s *Session) evaluate() {
	path := s.path.IDs()
	s.metrics.attempts.Add(1)

	switch s.phase {
	case PhaseAwaitingFirstCapture, PhaseAwaitingNewCapture:
		s.captureFirst(path)
	case PhaseAwaitingConfirm, PhaseAwaitingNewConfirm:
		s.confirm(path)
	case PhaseVerifying, PhaseVerifyingOld:
		s.verify(path)
	default:
		s.logger.Warn().Stringer("phase", s.phase).Msg("evaluation without an active phase")
	}

	s.assignArrows()
	s.publish()
}

// captureFirst remembers the first drawing and waits for its confirmation
func (s *Session) captureFirst(path []int) {
	s.grid.SetStatusAll(path, geometry.StatusFingerUpDone)
	s.answers.BeginFirstCapture(path)
	if s.phase == PhaseAwaitingNewCapture {
		s.phase = PhaseAwaitingNewConfirm
	} else {
		s.phase = PhaseAwaitingConfirm
	}
	s.logger.Info().Stringer("mode", s.mode).Int("length", len(path)).Msg("first capture recorded")
	s.listener.OnFirstLock(s.mode, path)
	s.scheduleReset(s.cfg.SuccessDelay)
}

// confirm compares a drawing to the first capture; failures do not consume retries
func (s *Session) confirm(path []int) {
	if s.answers.MatchesFirstCapture(path) {
		s.grid.SetStatusAll(path, geometry.StatusFingerUpDone)
		s.phase = PhaseComplete
		s.answers.ClearFirstCapture()
		s.logger.Info().Stringer("mode", s.mode).Msg("pattern confirmed")
		s.listener.OnSecondLockSucceeded(s.mode, path)
		s.scheduleReset(s.cfg.SuccessDelay)
		return
	}

	s.grid.SetStatusAll(path, geometry.StatusFingerUpFailed)
	s.metrics.failures.Add(1)
	s.logger.Info().Stringer("mode", s.mode).Msg("confirmation mismatch")
	s.listener.OnSecondLockFailed(s.mode)
	s.scheduleReset(s.cfg.FailureDelay)
}

// verify compares a drawing to the stored answer, consuming a retry on mismatch
func (s *Session) verify(path []int) {
	if s.answers.MatchesStored(path) {
		s.grid.SetStatusAll(path, geometry.StatusFingerUpDone)
		if s.mode == ModeModify {
			s.phase = PhaseAwaitingNewCapture
		} else {
			s.phase = PhaseComplete
		}
		s.logger.Info().Stringer("mode", s.mode).Msg("pattern verified")
		s.listener.OnUnlockCorrect(s.mode, path)
		s.scheduleReset(s.cfg.SuccessDelay)
		return
	}

	s.grid.SetStatusAll(path, geometry.StatusFingerUpFailed)
	s.metrics.failures.Add(1)
	// Listener sees the budget that included this attempt
	remaining := s.retry.Remaining()
	s.logger.Info().Stringer("mode", s.mode).Int("remaining", remaining).Msg("verification mismatch")
	s.listener.OnUnlockError(s.mode, path, remaining)
	s.scheduleReset(s.cfg.FailureDelay)
	if s.retry.RecordFailure() {
		s.listener.OnNoMoreTry(s.mode)
	}
}

// assignArrows points each chosen cell toward its successor
func (s *Session) assignArrows() {
	for _, h := range s.path.Hints(s.grid.Center) {
		s.grid.SetArrow(h.ID, h.Degrees)
	}
}
