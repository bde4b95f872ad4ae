package html2md

import "golang.org/x/net/html"

// breadthFirst returns every element descendant of root, root excluded,
// in level order: a node always precedes its own children. Reversing the
// slice therefore yields an order where every node comes after all of its
// descendants, which is the order the processor needs. Text nodes are not
// collected; they are read through their parents during content assembly.
func breadthFirst(root *html.Node) []*html.Node {
	queue := []*html.Node{root}
	var out []*html.Node
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				queue = append(queue, c)
			}
		}
	}
	return out[1:]
}
