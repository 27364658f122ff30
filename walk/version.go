package walk

// Version information for the stack walker.
const (
	// Version is the current version of the walker.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info provides runtime information about the walker.
type Info struct {
	// Version is the walker version string.
	Version string

	// Engine is the unwinding facility the walker drives.
	Engine string
}

// GetInfo returns information about the walker build.
//
// Example:
//
//	info := walk.GetInfo()
//	fmt.Printf("stackwalk %s (%s)\n", info.Version, info.Engine)
func GetInfo() Info {
	return Info{
		Version: Version,
		Engine:  "DbgHelp (StackWalkEx/StackWalk64)",
	}
}
