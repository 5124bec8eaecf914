package ops

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"opsagent/internal/fault"
)

func TestSortContacts(t *testing.T) {
	t.Parallel()

	lib, root := newTestLibrary(t, nil)
	writeSandboxFile(t, root, ContactsFile,
		`[{"first_name":"B","last_name":"Y"},{"first_name":"A","last_name":"X"}]`)

	_, err := lib.SortContacts()
	require.NoError(t, err)

	var sorted []Contact
	require.NoError(t, json.Unmarshal([]byte(readSandboxFile(t, root, ContactsOutFile)), &sorted))
	require.Equal(t, []Contact{{FirstName: "A", LastName: "X"}, {FirstName: "B", LastName: "Y"}}, sorted)
}

func TestSortContactsTieBreaksByFirstName(t *testing.T) {
	t.Parallel()

	lib, root := newTestLibrary(t, nil)
	writeSandboxFile(t, root, ContactsFile,
		`[{"first_name":"Zed","last_name":"Same"},{"first_name":"Amy","last_name":"Same"}]`)

	_, err := lib.SortContacts()
	require.NoError(t, err)

	var sorted []Contact
	require.NoError(t, json.Unmarshal([]byte(readSandboxFile(t, root, ContactsOutFile)), &sorted))
	require.Equal(t, "Amy", sorted[0].FirstName)
	require.Equal(t, "Zed", sorted[1].FirstName)
}

func TestSortContactsMissingFieldsSortFirst(t *testing.T) {
	t.Parallel()

	lib, root := newTestLibrary(t, nil)
	writeSandboxFile(t, root, ContactsFile,
		`[{"first_name":"Alice","last_name":"Zephyr"},{"first_name":"NoSurname"}]`)

	_, err := lib.SortContacts()
	require.NoError(t, err)

	var sorted []Contact
	require.NoError(t, json.Unmarshal([]byte(readSandboxFile(t, root, ContactsOutFile)), &sorted))
	require.Equal(t, "NoSurname", sorted[0].FirstName)
}

func TestSortContactsMalformedJSON(t *testing.T) {
	t.Parallel()

	lib, root := newTestLibrary(t, nil)
	writeSandboxFile(t, root, ContactsFile, `{"not":"an array"}`)

	_, err := lib.SortContacts()
	require.Error(t, err)
	require.Equal(t, fault.MalformedInput, fault.KindOf(err))
}

func TestSortContactsMissingInput(t *testing.T) {
	t.Parallel()

	lib, _ := newTestLibrary(t, nil)
	_, err := lib.SortContacts()
	require.Error(t, err)
	require.Equal(t, fault.InputMissing, fault.KindOf(err))
}
