package inspect

// scope tracks whether a stage-scoped view is still inside the callback
// that received it. Views derived from the same stage share one scope,
// so invalidating the root view expires every handle at once.
type scope struct {
	valid bool
	what  string
}

func newScope(what string) *scope {
	return &scope{valid: true, what: what}
}

func (sc *scope) ensure() {
	if !sc.valid {
		panic("conduct: " + sc.what + " used outside its stage callback")
	}
}

func (sc *scope) invalidate() {
	sc.valid = false
}
