package ui

// Node is one overlay element. Class and ID select its style; Text is drawn inside it and
// Children are stacked vertically below the text.
type Node struct {
	Class    string
	ID       string
	Text     string
	Children []*Node
}

// NewNode creates a node with a class and optional text.
func NewNode(class, text string) *Node {
	return &Node{Class: class, Text: text}
}
