// Package domain holds the pooled die state machines: the pool registry that
// rotates through oracle sources and the per-owner outcome record that moves
// from Requested (face 0) to Settled (face 1..6) exactly once.
//
// Types here are plain values. Persistence, oracle calls, and resource
// accounting live in the engine and storage packages.
package domain
