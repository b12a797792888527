// Package artifact implements the filesystem-backed artifact store.
package artifact

import (
	"path"
	"strings"
)

// defaultExcludes are the patterns dropped from every selection when the
// spec asks for default excludes. They cover VCS metadata and editor litter.
var defaultExcludes = []string{
	"**/.git/**",
	"**/.jj/**",
	"**/.svn/**",
	"**/.hg/**",
	"**/.DS_Store",
	"**/*~",
}

// Match reports whether the slash-separated relative path matches the
// pattern. Patterns use the usual archive syntax: '*' and '?' match within
// one path segment, '**' matches any number of segments including none.
func Match(pattern, name string) bool {
	return matchSegments(strings.Split(pattern, "/"), strings.Split(name, "/"))
}

func matchSegments(pattern, name []string) bool {
	if len(pattern) == 0 {
		return len(name) == 0
	}

	if pattern[0] == "**" {
		for i := 0; i <= len(name); i++ {
			if matchSegments(pattern[1:], name[i:]) {
				return true
			}
		}
		return false
	}

	if len(name) == 0 {
		return false
	}

	ok, err := path.Match(pattern[0], name[0])
	if err != nil || !ok {
		return false
	}
	return matchSegments(pattern[1:], name[1:])
}

// matchAny reports whether the name matches at least one pattern.
func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if Match(p, name) {
			return true
		}
	}
	return false
}
