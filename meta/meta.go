// meta/meta.go
package meta

// TABLE_SIZE is the initial number of slots in the smart player's table.
const TABLE_SIZE = 283

// GAMES is the default number of games in a training run.
const GAMES = 1000

// SMART_SIDE is the default seat of the smart player (1 moves first).
const SMART_SIDE = 1

// OPENING_EMPTY is the number of empty cells above which a move counts as an opening.
const OPENING_EMPTY = 7
