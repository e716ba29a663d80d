package ir

// ResolveRefs replaces every &name reference literal under y with
// the table entry it names. A missing entry is a soft miss: the
// reference becomes a null literal, never an error.
func ResolveRefs(y *Node, table map[string]*Node) {
	y.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost || !n.Ref || n.Type != LiteralType {
			return true, nil
		}
		n.Ref = false
		if n.Text == nil {
			return true, nil
		}
		repl, ok := table[*n.Text]
		if !ok {
			n.Text = nil
			return true, nil
		}
		parent, field := n.Parent, n.ParentField
		repl.CloneTo(n)
		n.Parent, n.ParentField = parent, field
		return false, nil
	})
}
