// Package utils holds small helpers shared by the advent command line tool.
package utils

const (
	// ApplicationName is the binary and configuration directory stem.
	ApplicationName = "advent"
	// ConfigFileName is the local configuration file looked up in the working directory.
	ConfigFileName = ".advent.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".advent"
	// GlobalConfigFileName is the global configuration file inside GlobalConfigDirectoryName.
	GlobalConfigFileName = "config.yaml"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"

	// ErrorLogFormat defines the formatting string for error log messages.
	ErrorLogFormat = "Error: %v"
)
