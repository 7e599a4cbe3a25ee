package anydir

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Generation completed successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration or target definition
	ExitTraversalError = 11 // Source directory traversal failed
	ExitOutputError    = 12 // Generated file could not be written
)

// GeneratedFileHeader is the first line of every generated source file.
// It follows the convention recognized by go tooling for generated code.
const GeneratedFileHeader = "// Code generated by anydir gen. DO NOT EDIT."

// ConfigFileName is the per-project generator configuration file.
const ConfigFileName = "anydir.yaml"
