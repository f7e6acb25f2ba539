package utils

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const (
	unknownVersion     = "unknown"
	developmentVersion = "(devel)"
	gitExecutable      = "git"
)

var errGitDirectoryNotFound = errors.New(".git directory not found")

// GetApplicationVersion reports the module version recorded at build time,
// falling back to git describe in a source checkout.
func GetApplicationVersion() string {
	if buildInfo, available := debug.ReadBuildInfo(); available {
		if version := buildInfo.Main.Version; version != "" && version != developmentVersion {
			return version
		}
	}
	repositoryDirectory, lookupError := findGitDirectory(".")
	if lookupError != nil {
		return unknownVersion
	}
	for _, describeArguments := range [][]string{
		{"describe", "--tags", "--exact-match"},
		{"describe", "--tags", "--long", "--dirty"},
	} {
		if version := describe(repositoryDirectory, describeArguments); version != "" {
			return version
		}
	}
	return unknownVersion
}

func describe(repositoryDirectory string, arguments []string) string {
	// #nosec G204
	command := exec.Command(gitExecutable, arguments...)
	command.Dir = repositoryDirectory
	output, runError := command.Output()
	if runError != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}

// findGitDirectory walks upward from startDirectory to the first directory holding .git.
func findGitDirectory(startDirectory string) (string, error) {
	currentDirectory, absoluteError := filepath.Abs(startDirectory)
	if absoluteError != nil {
		return "", absoluteError
	}
	for {
		information, statError := os.Stat(filepath.Join(currentDirectory, GitDirectoryName))
		if statError == nil && information.IsDir() {
			return currentDirectory, nil
		}
		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			return "", errGitDirectoryNotFound
		}
		currentDirectory = parentDirectory
	}
}
