package ops

import (
	"encoding/json"
	"fmt"
	"sort"

	"opsagent/internal/fault"
)

// Contact is one entry of contacts.json. Absent fields sort as the
// empty string.
type Contact struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// SortContacts stable-sorts contacts.json by (last_name, first_name)
// ascending and writes the sorted array 2-space indented.
func (l *Library) SortContacts() (string, error) {
	_, data, err := l.readInput(ContactsFile)
	if err != nil {
		return "", err
	}

	var contacts []Contact
	if err := json.Unmarshal(data, &contacts); err != nil {
		return "", fault.Wrap(fault.MalformedInput, err, "parse %s", ContactsFile)
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		if contacts[i].LastName != contacts[j].LastName {
			return contacts[i].LastName < contacts[j].LastName
		}
		return contacts[i].FirstName < contacts[j].FirstName
	})

	sorted, err := json.MarshalIndent(contacts, "", "  ")
	if err != nil {
		return "", fault.Wrap(fault.Internal, err, "encode sorted contacts")
	}

	out, err := l.writeOutput(ContactsOutFile, sorted)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Sorted contacts written to %s", out), nil
}
