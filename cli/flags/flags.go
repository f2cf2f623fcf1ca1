// Package flags provides helpers shared by the global and command flags.
package flags

// EnvVarsWithLfPrefix returns the names of the environment variables for the flag names,
// e.g. `max-depth` becomes `LF_MAX_DEPTH`.
func EnvVarsWithLfPrefix(names ...string) []string {
	return Prefix{LfPrefix}.EnvVars(names...)
}
