package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// RunExtension attempts to find and execute an external ror-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The resolved global settings are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "ror-" + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		return false, 0
	}

	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv(s)...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the environment variables describing s.
func extensionEnv(s *settings) []string {
	env := []string{
		EnvLedgerFile + "=" + s.LedgerFile,
		EnvVerbose + "=" + strconv.FormatBool(s.Verbose),
	}
	if *configFile != "" {
		env = append(env, EnvConfigFile+"="+*configFile)
	}
	if s.Currency != "" {
		env = append(env, EnvCurrency+"="+s.Currency)
	}
	return env
}
