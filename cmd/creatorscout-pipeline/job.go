package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	perr "creatorscout/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

// job is a YAML description of one pipeline run
// command line flags that were set explicitly win over the file
type job struct {
	Stage     string   `yaml:"stage"`
	Username  string   `yaml:"username"`
	Usernames []string `yaml:"usernames"`
	Niche     string   `yaml:"niche"`
	Level     string   `yaml:"level"`
	Followers any      `yaml:"followers"`
	K         int      `yaml:"k"`
}

func loadJob(path string) (flags, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return flags{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read job %s", path)
	}
	var j job
	if err := yaml.Unmarshal(data, &j); err != nil {
		return flags{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "parse job %s", path)
	}
	f := flags{
		stage:     strings.ToLower(strings.TrimSpace(j.Stage)),
		username:  j.Username,
		usernames: j.Usernames,
		niche:     j.Niche,
		level:     j.Level,
		k:         j.K,
	}
	if j.Followers != nil {
		f.followers = fmt.Sprint(j.Followers)
	}
	return f, nil
}

// overlay copies the fields named in set from cli onto base
func overlay(base, cli flags, set map[string]bool) flags {
	if set["stage"] || base.stage == "" {
		base.stage = cli.stage
	}
	if set["username"] {
		base.username = cli.username
	}
	if set["usernames"] {
		base.usernames = cli.usernames
	}
	if set["niche"] {
		base.niche = cli.niche
	}
	if set["level"] {
		base.level = cli.level
	}
	if set["followers"] {
		base.followers = cli.followers
	}
	if set["k"] {
		base.k = cli.k
	}
	return base
}

func setFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
