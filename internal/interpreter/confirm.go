package interpreter

// Confirmer is asked before a destructive command throws away unsaved work.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Policy is a fixed answer, used when nobody can be asked.
type Policy bool

const (
	Deny  Policy = false
	Allow Policy = true
)

func (p Policy) Confirm(string) bool {
	return bool(p)
}

func (p Policy) String() string {
	if p {
		return "allow"
	}
	return "deny"
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// mayDiscard asks before discarding unsaved work. It is always true when
// the drawing is saved.
func (s *Session) mayDiscard(prompt string) bool {
	if s.Saved {
		return true
	}
	ok := s.confirmer().Confirm(prompt)
	s.log.Debug("confirm", "prompt", prompt, "ok", ok, "depth", s.depth)
	return ok
}
