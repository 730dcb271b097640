package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const aliasPrefix = "@"

// ExpandAliases replaces every "@name" token with the whitespace-separated
// words of aliases[name]. Expansion is a single pass: words produced by an
// alias are never expanded again, even if they start with "@".
func ExpandAliases(args []string, aliases map[string]string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		name, ok := strings.CutPrefix(arg, aliasPrefix)
		if !ok || name == "" {
			out = append(out, arg)
			continue
		}
		expansion, ok := aliases[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAlias, arg)
		}
		out = append(out, strings.Fields(expansion)...)
	}
	return out, nil
}

// LoadAliases reads a YAML mapping of alias names to expansions:
//
//	build: run --fast
//	t: table --stripe
func LoadAliases(r io.Reader) (map[string]string, error) {
	aliases := map[string]string{}
	if err := yaml.NewDecoder(r).Decode(&aliases); err != nil {
		if errors.Is(err, io.EOF) {
			return aliases, nil
		}
		return nil, fmt.Errorf("decode aliases: %w", err)
	}
	for name := range aliases {
		if strings.ContainsAny(name, " \t\n") || name == "" {
			return nil, fmt.Errorf("%w: invalid alias name %q", ErrUnknownAlias, name)
		}
	}
	return aliases, nil
}

// LoadAliasFile reads aliases from the YAML file at path.
func LoadAliasFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadAliases(f)
}
