package actions

// Wait просто пережидает заданное время
type Wait struct {
	base
	duration float64
	elapsed  float64
}

func NewWait(seconds float64, group string) *Wait {
	return &Wait{
		base:     base{kind: KindWait, group: group},
		duration: seconds,
	}
}

func (a *Wait) Update(ctx *Context, dt float64) Status {
	a.elapsed += dt
	if a.elapsed >= a.duration {
		return StatusComplete
	}
	return StatusInProgress
}
