// Package xaction builds tagged actions for reducer-style update loops.
//
// A factory is created once per tag and stamps that tag on every action it
// makes. Three factory types fix the call signature statically:
//
//	reset := xaction.New("counter/reset")                        // reset.Make()
//	add := xaction.NewData[int]("counter/add")                   // add.Make(2)
//	rename := xaction.NewDataMeta[string, Audit]("counter/rename") // rename.Make("x", Audit{})
//
// Zero values count as absent: add.Make(0) yields an action with no Data, and
// Meta is attached only together with a non-zero Data.
//
// Consumers discriminate with Matches, or narrow with Match:
//
//	if a, ok := add.Match(msg); ok {
//	    count += a.Data
//	}
//
// A Registry (and the Define helpers on the process-wide default) reports tag
// collisions between independently declared factories.
package xaction
