package cli

// Shared CLI flags (used across multiple command files)
var (
	noAutoConfig bool
	jsonOutput   bool
	watchStatus  bool
	verbose      bool
)
