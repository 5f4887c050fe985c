package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

const validYAML = `version: "1.0"
name: "Services"
settings:
  theme: striped
  checkboxes: true
  divider: dashed
  sort:
    column: latency
    ascending: false
columns:
  - key: name
    title: Service
    width: flex(2)
    sortable: true
  - key: latency
    title: Latency (ms)
    width: intrinsic
    align: end
    sortable: true
    numeric: true
  - key: owner
    width: 25%
rows:
  - key: api
    cells: [api, "12", core]
    details: "Public HTTP API"
    selected: true
  - key: worker
    cells: [worker, "140"]
    expanded: true
  - cells: [cron, "3", ops, extra]
groups:
  - title: Online
    start: 0
    end: 1
  - title: Batch
    start: 2
    end: 10
footer:
  - cells: [Total, "155"]
    style: bold
`

func TestParseDocument(t *testing.T) {
	t.Parallel()

	invalidYAML := `version: [1, 0]
name: "Broken"
columns:
  - key: a
`

	missingColumns := `version: "1.0"
name: "No Columns"
rows:
  - cells: [a]
`

	badVersion := `version: "beta"
name: "Bad Version"
columns:
  - key: a
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: validYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.NotNil(t, doc)
				require.Equal(t, "Services", doc.Name)
				require.Len(t, doc.Columns, 3)
				require.Len(t, doc.Rows, 3)
				require.Equal(t, "Latency (ms)", doc.Columns[1].Label())
				require.Equal(t, "owner", doc.Columns[2].Label())
				require.False(t, doc.Settings.Sort.IsAscending())
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.Error(t, err)
				var parseErr *tkerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "missing columns returns validation error",
			contents: missingColumns,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *tkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "columns", validationErr.Field)
				require.NotEmpty(t, validationErr.Path, "validation errors name the document")
				require.Contains(t, err.Error(), validationErr.Path+": columns")
			},
		},
		{
			name:     "schema version must follow major.minor",
			contents: badVersion,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *tkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "version")
			},
		},
		{
			name:     "empty document is rejected",
			contents: "",
			assert: func(t *testing.T, doc *Document, err error) {
				var parseErr *tkerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Nil(t, doc)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempDocument(t, tc.contents)
			doc, err := ParseDocument(path)
			tc.assert(t, doc, err)
		})
	}
}

func TestParseDocumentMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument(filepath.Join(t.TempDir(), "missing.yaml"))

	var parseErr *tkerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func writeTempDocument(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
