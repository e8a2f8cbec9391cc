package scaffold

// State is a checkpoint in project generation. States only move forward.
type State int

// Generation states in the order they are reached.
const (
	StateUninitialized State = iota
	StateDirectoryCreated
	StateCompiledToolchainReady
	StateScriptToolchainReady
	StateFilesMaterialized
	StateDone
)

var stateNames = map[State]string{
	StateUninitialized:          "Uninitialized",
	StateDirectoryCreated:       "DirectoryCreated",
	StateCompiledToolchainReady: "CompiledToolchainReady",
	StateScriptToolchainReady:   "ScriptToolchainReady",
	StateFilesMaterialized:      "FilesMaterialized",
	StateDone:                   "Done",
}

// String implements fmt.Stringer.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}
