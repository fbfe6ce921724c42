// SPDX-License-Identifier: MIT
// Package: reachlab/builder
//
// errors.go - sentinel errors.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the family minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates p outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of [0,1]")

	// ErrNeedRandSource indicates a stochastic constructor without an RNG.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrConstructFailed indicates a nil graph or constructor, or an
	// unexpected core error while wiring edges.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrUnknownFamily indicates FamilyByName was given an unknown name.
	ErrUnknownFamily = errors.New("builder: unknown graph family")
)
