// Package cli provides terminal output, errors and editor helpers for roster.
package cli

import (
	"fmt"
	"strings"
)

// MenuItem is one entry of a numbered menu.
type MenuItem struct {
	Key   string // what the user types, e.g. "1"
	Name  string // command name, also accepted as input, e.g. "add"
	Label string // text shown in the menu
}

// MatchMenu resolves user input to a menu item.
// Input may be the item key, the command name, or a unique prefix of a
// command name. Matching is case-insensitive and ignores surrounding spaces.
func MatchMenu(input string, items []MenuItem) (MenuItem, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return MenuItem{}, fmt.Errorf("no choice entered")
	}

	// Keys and full names win over prefixes
	for _, item := range items {
		if item.Key == input || strings.ToLower(item.Name) == input {
			return item, nil
		}
	}

	var matches []MenuItem
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Name), input) {
			matches = append(matches, item)
		}
	}

	switch len(matches) {
	case 0:
		return MenuItem{}, fmt.Errorf("unknown choice %q", input)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return MenuItem{}, fmt.Errorf("ambiguous choice %q matches: %s", input, strings.Join(names, ", "))
	}
}
