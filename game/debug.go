package game

// DebugState holds global debug flags that persist across window resizes
type DebugState struct {
	ShowHUD bool // Show FPS, particle and page state
}

// Global debug state instance
var globalDebugState = &DebugState{
	ShowHUD: false, // Default to off
}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
