package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// RCFileName is looked up in the working directory first, then in the
	// user's home directory.
	RCFileName = ".hustlerc"

	// RunAliasesKey names the comma-separated allow-list of extra verbs
	// forwarded into the container as if they were "hustle run <verb> ...".
	RunAliasesKey = "RUN_ALIASES"

	// RunAliasesEnvVar overrides the rc files entirely when set.
	RunAliasesEnvVar = "HUSTLE_RUN_ALIASES"

	defaultRunAliases = "run"
)

// RC is the merged contents of the home and project rc files. Project keys
// shadow home keys.
type RC map[string]string

// LoadRC reads .hustlerc from the home directory and the working directory.
// A missing or unreadable file contributes nothing; the rc files are always
// optional.
func LoadRC() RC {
	rc := RC{}
	if home, err := os.UserHomeDir(); err == nil {
		rc.mergeFile(filepath.Join(home, RCFileName))
	}
	rc.mergeFile(RCFileName)
	return rc
}

func (rc RC) mergeFile(path string) {
	entries, err := godotenv.Read(path)
	if err != nil {
		return
	}
	for k, v := range entries {
		rc[k] = v
	}
}

// Lookup returns the value for key from the rc files, falling back to the
// process environment.
func (rc RC) Lookup(key string) (string, bool) {
	if v, ok := rc[key]; ok && v != "" {
		return v, true
	}
	if v := os.Getenv(key); v != "" {
		return v, true
	}
	return "", false
}

// RunAliases returns the allow-list of verbs treated as "run" shorthands:
// the HUSTLE_RUN_ALIASES environment variable if set, else RUN_ALIASES from
// the rc files, else just "run".
func (rc RC) RunAliases() []string {
	raw := defaultRunAliases
	if v := os.Getenv(RunAliasesEnvVar); v != "" {
		raw = v
	} else if v, ok := rc[RunAliasesKey]; ok && v != "" {
		raw = v
	}

	var aliases []string
	for _, a := range strings.Split(raw, ",") {
		if a = strings.TrimSpace(a); a != "" {
			aliases = append(aliases, a)
		}
	}
	if len(aliases) == 0 {
		aliases = []string{defaultRunAliases}
	}
	return aliases
}

// RunAliasPattern compiles the allow-list into a whole-word alternation, so
// "rails" matches but "railsserver" does not.
func (rc RC) RunAliasPattern() *regexp.Regexp {
	aliases := rc.RunAliases()
	quoted := make([]string, len(aliases))
	for i, a := range aliases {
		quoted[i] = regexp.QuoteMeta(a)
	}
	return regexp.MustCompile(`^(?:` + strings.Join(quoted, "|") + `)$`)
}
