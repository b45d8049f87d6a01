// Package depgraph tracks, for every intermediate name PQGraph declares,
// the position of each term that reads it, so the emitter (§4.10) can
// sort declarations by first use and insert a destructor line right
// after an intermediate's last use:
//
//	declare LHS, stage_0, stage_1
//	stage_0 = ...       // stage_0 first used here
//	x = stage_0 * y     // stage_0 last used here
//	del stage_0         // inserted
//	stage_1 = ...
//
// Thread-safety follows the teacher's core.Graph: a single sync.RWMutex
// guards the maps, writes take the write lock, reads take the read lock.
package depgraph
