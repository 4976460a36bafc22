package search

import "draughts100/board"

// Engine owns everything a search call needs that must outlive a single
// call: the three disjoint transposition tables and the move generator's
// cache. Two Engine values never share mutable state; searches take a
// pointer receiver and borrow it for the call's duration only. The node
// counter is the Nodes field below, reset by each search call, not a
// package global.
type Engine struct {
	MTD   *MTDTable
	PVF   *PVFTable
	AB    *ABTable
	Cache *board.MoveCache

	// Nodes counts nodes visited by the most recent search call.
	Nodes int
}

// NewEngine returns an Engine with empty tables and an empty move cache.
func NewEngine() *Engine {
	return &Engine{
		MTD:   NewMTDTable(),
		PVF:   NewPVFTable(),
		AB:    NewABTable(),
		Cache: board.NewMoveCache(),
	}
}
