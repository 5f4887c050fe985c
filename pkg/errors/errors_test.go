package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("table.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "table.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: table.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("table.yaml", 0, stdErrors.New("empty document"))

	require.Equal(t, "parse error: table.yaml: empty document", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("groups[1].end", "must not be before start", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "groups[1].end", validationErr.Field)
	require.Equal(t, "validation error: groups[1].end: must not be before start", err.Error())
}

func TestInDocumentLocatesValidationErrors(t *testing.T) {
	t.Parallel()

	original := NewValidationError("columns[0].width", "invalid width", nil)
	located := InDocument(original, "table.yaml")

	var validationErr *ValidationError
	require.ErrorAs(t, located, &validationErr)
	require.Equal(t, "table.yaml", validationErr.Path)
	require.Equal(t, "columns[0].width", validationErr.Field)
	require.Equal(t, "validation error: table.yaml: columns[0].width: invalid width", located.Error())
	require.Equal(t, "validation error: columns[0].width: invalid width", original.Error(), "original is left untouched")

	require.Same(t, located, InDocument(located, "other.yaml"), "an existing path is kept")

	parseErr := NewParseError("table.yaml", 3, stdErrors.New("bad"))
	require.Same(t, parseErr, InDocument(parseErr, "other.yaml"))
	require.NoError(t, InDocument(nil, "table.yaml"))
}

func TestLocationString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "a.yaml:4: rows[1]", Location{Path: "a.yaml", Line: 4, Field: "rows[1]"}.String())
	require.Equal(t, "rows[1]", Location{Field: "rows[1]"}.String())
	require.Equal(t, "a.yaml", Location{Path: "a.yaml"}.String())
	require.Empty(t, Location{}.String())
}

func TestRenderErrorIncludesFormat(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("short write")
	err := NewRenderError("csv", underlying)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "csv", renderErr.Format)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "render error [csv]: short write", err.Error())
}

func TestWatchErrorIncludesPath(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("too many open files")
	err := NewWatchError("/tmp/table.yaml", underlying)

	var watchErr *WatchError
	require.ErrorAs(t, err, &watchErr)
	require.Equal(t, "/tmp/table.yaml", watchErr.Path)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var p *ParseError
	var r *RenderError
	require.Empty(t, p.Error())
	require.Nil(t, r.Unwrap())
}
