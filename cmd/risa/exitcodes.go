package main

// Exit codes returned by risa commands
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, unreadable input, write failure)
	ExitConfigError = 2 // Configuration error (unreadable or invalid config file)
	ExitDataError   = 3 // Data error (catalog database failure)
)
