package session

// Listener receives lifecycle callbacks on the event thread
// Slices are copies owned by the receiver
// Implementations must not call SetMode or SetMaxAttempts synchronously; post them instead
type Listener interface {
	// OnFirstLock reports the first capture of a new answer, awaiting confirmation
	OnFirstLock(mode Mode, answer []int)
	// OnSecondLockSucceeded reports a confirmed new answer
	OnSecondLockSucceeded(mode Mode, answer []int)
	// OnSecondLockFailed reports a confirm drawing that differs from the first capture
	OnSecondLockFailed(mode Mode)
	// OnUnlockCorrect reports a path equal to the stored answer
	OnUnlockCorrect(mode Mode, path []int)
	// OnUnlockError reports a wrong path and the attempts left including this one
	OnUnlockError(mode Mode, path []int, remaining int)
	// OnNoMoreTry reports retry exhaustion, once
	OnNoMoreTry(mode Mode)
}

// NopListener ignores every callback; embed it to implement a subset
type NopListener struct{}

func (NopListener) OnFirstLock(Mode, []int)           {}
func (NopListener) OnSecondLockSucceeded(Mode, []int) {}
func (NopListener) OnSecondLockFailed(Mode)           {}
func (NopListener) OnUnlockCorrect(Mode, []int)       {}
func (NopListener) OnUnlockError(Mode, []int, int)    {}
func (NopListener) OnNoMoreTry(Mode)                  {}

// Listeners fans callbacks out in order
type Listeners []Listener

func (ls Listeners) OnFirstLock(mode Mode, answer []int) {
	for _, l := range ls {
		l.OnFirstLock(mode, clone(answer))
	}
}

func (ls Listeners) OnSecondLockSucceeded(mode Mode, answer []int) {
	for _, l := range ls {
		l.OnSecondLockSucceeded(mode, clone(answer))
	}
}

func (ls Listeners) OnSecondLockFailed(mode Mode) {
	for _, l := range ls {
		l.OnSecondLockFailed(mode)
	}
}

func (ls Listeners) OnUnlockCorrect(mode Mode, path []int) {
	for _, l := range ls {
		l.OnUnlockCorrect(mode, clone(path))
	}
}

func (ls Listeners) OnUnlockError(mode Mode, path []int, remaining int) {
	for _, l := range ls {
		l.OnUnlockError(mode, clone(path), remaining)
	}
}

func (ls Listeners) OnNoMoreTry(mode Mode) {
	for _, l := range ls {
		l.OnNoMoreTry(mode)
	}
}

func clone(ids []int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}
