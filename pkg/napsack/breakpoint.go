package napsack

// breakpoint membership classes shared by NapUp and NapDown. Each
// sweep tracks, for every variable it has put on the heap, whether
// it's free (classFree) or sitting at a bound. The bound classes mean
// different things in the two sweeps: in NapUp classBoundary is "at
// one, not yet dropped" and classSettled is "dormant at zero"; in
// NapDown classSettled is "at zero, not yet risen" and classBoundary
// is "reached one, done for the rest of the sweep".
type sweepClass int8

const (
	classSettled sweepClass = iota
	classBoundary
	classFree
)
