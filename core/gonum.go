// SPDX-License-Identifier: MIT
// Package: reachlab/core
//
// gonum.go - bridge to gonum's graph interfaces.

package core

import (
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum returns g as a gonum undirected simple graph. Node ids are kept
// as int64 ids 0…n-1 and every node is added, isolated ones included.
// The result shares nothing with g.
func ToGonum(g *Graph) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for i := 0; i < g.n; i++ {
		ug.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.edges {
		ug.SetEdge(ug.NewEdge(simple.Node(int64(e.From)), simple.Node(int64(e.To))))
	}

	return ug
}
