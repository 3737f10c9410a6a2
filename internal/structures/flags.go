package structures

// CliFlags carries the command line arguments into the injector.
type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}
