package btree

// Test hooks (kept separate so instrumentation doesn't clutter logic).
var (
	splitHook  func(slot int, root bool)
	mergeHook  func(index int, collapsed bool)
	rotateHook func(index int, fromRight bool)
)
