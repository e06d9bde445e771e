// Party file handling for the celebrity CLI.
//
// Parties come in as YAML:
//
//	party:
//	  - id: 1
//	    knows: [2, 3]
//	  - id: 2
//	    knows: [1, 3]
//
// Every listed guest is invited; knows lists may reference outsiders, people
// who never get their own entry.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pfad/builder"
	"github.com/katalvlaran/pfad/party"
)

// guestEntry is one roster line of a party file.
type guestEntry struct {
	ID    int64   `yaml:"id"`
	Knows []int64 `yaml:"knows"`
}

// partyFile is the document shape of --party files.
type partyFile struct {
	Party []guestEntry `yaml:"party"`
}

// loadParty resolves the party for a command: the YAML file at path, or the
// built-in demo party when path is empty. The second return names the
// source for logging.
func loadParty(path string) (*party.Party, string, error) {
	if path == "" {
		return builder.Demo(), "builtin demo", nil
	}
	p, err := loadPartyFile(path)
	if err != nil {
		return nil, "", err
	}

	return p, path, nil
}

// loadPartyFile reads and validates one party YAML file. Duplicate guest
// ids are rejected; negative ids surface party.ErrInvalidID.
func loadPartyFile(path string) (*party.Party, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read party file %q: %w", path, err)
	}

	var doc partyFile
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse party file %q: %w", path, err)
	}
	if len(doc.Party) == 0 {
		return nil, fmt.Errorf("party file %q: no guests listed", path)
	}

	p := party.New()
	seen := make(map[int64]struct{}, len(doc.Party))
	for _, g := range doc.Party {
		if _, dup := seen[g.ID]; dup {
			return nil, fmt.Errorf("party file %q: duplicate guest %d", path, g.ID)
		}
		seen[g.ID] = struct{}{}

		id := party.ID(g.ID)
		if err = p.Invite(id); err != nil {
			return nil, fmt.Errorf("party file %q: guest %d: %w", path, g.ID, err)
		}
		for _, known := range g.Knows {
			if err = p.Introduce(id, party.ID(known)); err != nil {
				return nil, fmt.Errorf("party file %q: guest %d knows %d: %w", path, g.ID, known, err)
			}
		}
	}

	return p, nil
}
