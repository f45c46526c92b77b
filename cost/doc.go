// Package cost computes the saturated multi-weighted edge cost that
// both search modes share.
//
// Formula, for a move u→v:
//
//	c(u,v) = b(v)·κ(u,v) + up(v)·max(0, Δh) + down(v)·max(0, −Δh) + λ·P(v)
//
// where b/up/down come from v's terrain record, κ is 1 for axis moves
// and the terrain's diagonal factor for diagonal moves, Δh = h(v) − h(u),
// λ is the caller's priority weight, and P(v) is v's tactical priority.
//
// Saturation: the result is clamped to MaxEdgeCost (255) per edge,
// before any accumulation — one absurdly expensive edge must not be able
// to dominate or overflow a path comparison, and downstream fixed-range
// consumers (cost bars) rely on the bound.
//
// Impassability: a move onto impassable terrain, or a diagonal move
// under the 4-direction rule, costs +Inf and is treated by the search as
// an absent edge. +Inf is never clamped to 255.
//
// Faults propagate: an out-of-bounds endpoint is a boundary fault, an
// unknown terrain code a configuration fault; neither is converted into
// a default cost.
package cost
