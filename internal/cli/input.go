package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/tabular"
	"github.com/Station-Manager/tabular/dataset"
	"gopkg.in/yaml.v3"
)

// readRecords loads records from path, "-" meaning stdin. YAML is chosen by
// the .yaml or .yml extension, anything else is read as JSON.
func readRecords(path string, stdin io.Reader) ([]tabular.Record, error) {
	const op errors.Op = "cli.readRecords"
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.New(op).Err(err).Msg("failed to read input")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return tabular.DecodeRecords(data)
	}
}

// decodeYAML accepts a sequence of mappings or a single mapping.
func decodeYAML(data []byte) ([]tabular.Record, error) {
	const op errors.Op = "cli.decodeYAML"
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New(op).Err(err)
	}
	switch v := doc.(type) {
	case nil:
		return nil, errors.New(op).Msg("input is empty")
	case map[string]any:
		return []tabular.Record{v}, nil
	case []any:
		out := make([]tabular.Record, 0, len(v))
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, errors.New(op).Errorf("item %d is %T, expected a mapping", i, item)
			}
			out = append(out, m)
		}
		return out, nil
	default:
		return nil, errors.New(op).Errorf("expected a list of mappings, got %T", doc)
	}
}

// tableName defaults to the input file name without its extension.
func tableName(explicit, input string) string {
	if explicit != "" {
		return explicit
	}
	if input == "-" || input == "" {
		return "stdin"
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// loadTable reads the input and fills a table from its records.
func (a *app) loadTable(input, name string, stdin io.Reader) (*dataset.DataTable, error) {
	records, err := readRecords(input, stdin)
	if err != nil {
		return nil, err
	}
	table := dataset.NewDataTable(tableName(name, input))
	if err := a.adapter().Fill(table, records); err != nil {
		return nil, err
	}
	a.logger.Debug("table filled", "table", table.Name(), "columns", len(table.Columns()), "rows", table.RowCount())
	return table, nil
}
