package di

// SetEnv populates flags from environment variables.
func SetEnv(flags *Flags, getEnv func(string) string) {
	flags.IsGitHubActions = getEnv("GITHUB_ACTIONS") == "true"
}
