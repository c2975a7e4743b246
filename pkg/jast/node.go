package jast

// NodeKind classifies the type of a syntax tree node.
type NodeKind uint16

// Node kinds for the structural subset of Java that the rules inspect.
// The tree is deliberately shallow: declarations, brace-nested blocks,
// and statement boundaries. Expression structure is not modeled.
const (
	NodeCompilationUnit NodeKind = iota

	NodePackageDecl
	NodeImportDecl
	NodeTypeDecl // class, interface, enum, record, annotation type

	NodeBlock          // { ... }
	NodeStatement      // any statement terminated by ';' or a block
	NodeEmptyStatement // a bare ';' with no statement body

	// Fallback for unrecognized content.
	NodeRaw
)

// ImportAttrs holds attributes specific to import declarations.
type ImportAttrs struct {
	// Path is the dotted import path as written, e.g. "java.util.List"
	// or "foo.bar.*".
	Path string

	// Static is true for "import static ..." declarations.
	Static bool

	// Wildcard is true if the path ends in a ".*" segment.
	Wildcard bool
}

// Node represents a single node in the Java syntax tree.
// Nodes form a tree structure with parent/child/sibling relationships.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Token span (indices into FileSnapshot.Tokens).
	// FirstToken <= LastToken for non-empty nodes.
	// Both are -1 for synthetic/degenerate nodes.
	FirstToken int
	LastToken  int

	// File is a back-reference to the containing FileSnapshot.
	File *FileSnapshot

	// Import holds attributes for import declaration nodes.
	Import *ImportAttrs
}

// AppendChild links child as the last child of n.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	if n.LastChild != nil {
		n.LastChild.Next = child
		child.Prev = n.LastChild
	} else {
		n.FirstChild = child
	}
	n.LastChild = child
}

// IsDecl returns true for declaration-level nodes.
func (n *Node) IsDecl() bool {
	switch n.Kind {
	case NodePackageDecl, NodeImportDecl, NodeTypeDecl:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}
