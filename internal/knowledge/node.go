package knowledge

// Kind distinguishes ordinary learnable nodes from module containers.
type Kind string

const (
	KindNode   Kind = "node"
	KindModule Kind = "module"
)

// Relation is the kind of a directed knowledge edge.
type Relation string

const (
	// RelationContains runs module -> node and assigns a node to a module.
	RelationContains Relation = "contains"
	// RelationPrerequisite runs node -> node; the target requires the source.
	RelationPrerequisite Relation = "prerequisite"
)

// Node is a knowledge-graph node. Immutable at recommendation time.
type Node struct {
	ID         string
	Name       string
	Difficulty float64 // in [0,1]
	Level      int
	Summary    string // free-text learning summary, may be empty
	Kind       Kind
	Position   int // curriculum order for modules, in-module order for nodes
}

// Edge is a typed, directed edge between two nodes.
type Edge struct {
	Source   string
	Target   string
	Relation Relation
}
