package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseDocument loads a table document from disk, validates it, and returns
// the resulting model.
func ParseDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tkerrors.NewParseError(path, 0, err)
	}
	return ParseBytes(path, data)
}

// ParseBytes decodes and validates document contents. path is only used in
// error messages.
func ParseBytes(path string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, tkerrors.NewParseError(path, extractLine(err), err)
	}
	if doc.Version == "" && len(doc.Columns) == 0 {
		return nil, tkerrors.NewParseError(path, 0, errors.New("document is empty"))
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, tkerrors.InDocument(err, path)
	}

	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
