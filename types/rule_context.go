package types

// ActiveMemo is the narrow interface the active-memo slot needs: record a
// successfully parsed node under its class name. Implemented by
// *memo.Memo; declared here to avoid types importing memo (memo already
// imports types for Node/TypeTag).
type ActiveMemo interface {
	Add(tag TypeTag, n Node)
}

// ParseContext threads the single-active-memo discipline (§5) through a
// recursive parse. The response parser creates one ParseContext per
// top-level Parse call and pushes a fresh memo for each memo-producing
// section; recursive re-entry for playerResponse/watchNextResponse reuses
// the same ParseContext, pushes its own memos in turn and restores the
// caller's active memo on return, so the child parse can never leak nodes
// into the parent's memo. This is the direct generalization of the teacher
// framework's RuleContext (which threads routing state through a node
// chain) to this domain's narrower need: threading "which memo is active
// right now" through a recursive tree walk.
type ParseContext struct {
	Config Config
	active ActiveMemo
}

// NewParseContext returns a ParseContext with no active memo. Callers must
// PushMemo before any ParseItem/ParseArray call that should record results.
func NewParseContext(cfg Config) *ParseContext {
	return &ParseContext{Config: cfg}
}

// PushMemo installs m as the active memo, returning the previous one (which
// may be nil) so the caller can restore it via SetActive after the
// nested section or recursive response finishes.
func (pc *ParseContext) PushMemo(m ActiveMemo) (prev ActiveMemo) {
	prev = pc.active
	pc.active = m
	return prev
}

// SetActive restores a previously saved active memo, per §5's reentrancy
// contract: "save and restore the active memo pointer across the nested
// call so that the child parse does not corrupt the parent's memo."
func (pc *ParseContext) SetActive(m ActiveMemo) {
	pc.active = m
}

// ActiveOrNil returns the currently active memo without panicking.
func (pc *ParseContext) ActiveOrNil() ActiveMemo {
	return pc.active
}
