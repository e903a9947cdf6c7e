package constants

// DefaultOutputFile is where the report command writes the generated
// markdown when no --output flag or config default is given.
const DefaultOutputFile = "network-config.md"
