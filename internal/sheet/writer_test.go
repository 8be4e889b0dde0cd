package sheet

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/FileTransform/internal/core"
)

func TestEncode(t *testing.T) {
	rs := core.MustRowSet("CUSTOMER_NAME", "TX_SERV_SUPP", "CITY_GATE", "NOTE")
	rs.Append(core.Row{
		"CUSTOMER_NAME": core.TextCell(`"Jane Doe"`),
		"TX_SERV_SUPP":  core.TextCell(`"'Acme Co'"`),
		"CITY_GATE":     core.TextCell("0007"),
	})
	rs.Append(core.Row{
		"CUSTOMER_NAME": core.TextCell(`"Doe, Jane"`),
		"CITY_GATE":     core.NumberCell(12),
		"NOTE":          core.TextCell("a,b"),
	})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, rs))

	want := "CUSTOMER_NAME,TX_SERV_SUPP,CITY_GATE,NOTE\n" +
		`"""Jane Doe""","""'Acme Co'""",0007,` + "\n" +
		`"""Doe, Jane""",,12,"a,b"` + "\n"
	assert.Equal(t, want, buf.String())

	// The default patch turns the writer's quoting back into the wrapped values.
	cleaned := core.DefaultPatch.Apply(buf.String())
	assert.Contains(t, cleaned, `"Jane Doe","'Acme Co'",0007,`)
	assert.Contains(t, cleaned, `"Doe, Jane",,12,"a,b"`)
}

func TestWriteCSV(t *testing.T) {
	rs := core.MustRowSet("A")
	rs.Append(core.Row{"A": core.TextCell("1")})

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer\n"), 0o644))
	require.NoError(t, WriteCSV(path, rs))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A\n1\n", string(got))
}

func TestWriteCSV_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	err := WriteCSV(path, core.MustRowSet("A"))
	assert.ErrorIs(t, err, core.ErrWriteFailure)
}
