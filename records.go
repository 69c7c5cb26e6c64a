package tabular

import (
	"bytes"

	"github.com/Station-Manager/errors"
	"github.com/goccy/go-json"
)

// Record is a JSON-shaped row. Records are tabulated as maps, so their
// columns are the sorted keys of the first record.
type Record = map[string]any

// convert serializes the input to JSON and deserializes it into the target output.
// This is a lossy mapping if source and destination do not have compatible JSON structures.
func convert[Input any, Output any](input Input, output *Output) error {
	const op errors.Op = "tabular.convert"
	data, err := json.Marshal(input)
	if err != nil {
		return errors.New(op).Err(err).Msg("marshal failed")
	}
	if err = decodeNumbers(data, output); err != nil {
		return errors.New(op).Err(err).Msg("unmarshal failed")
	}
	return nil
}

// decodeNumbers unmarshals data keeping numbers as json.Number, so integers
// render with their original digits.
func decodeNumbers(data []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(out)
}

// Records converts items into records keyed by their JSON names, so json
// tags decide the column names instead of Go field names.
func Records[T any](items []T) ([]Record, error) {
	out := make([]Record, 0, len(items))
	if err := convert(items, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeRecords decodes a JSON array of objects, or a single object, into records.
func DecodeRecords(data []byte) ([]Record, error) {
	const op errors.Op = "tabular.DecodeRecords"
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New(op).Msg("input is empty")
	}
	if trimmed[0] == '{' {
		var one Record
		if err := decodeNumbers(trimmed, &one); err != nil {
			return nil, errors.New(op).Err(err)
		}
		return []Record{one}, nil
	}
	var many []Record
	if err := decodeNumbers(trimmed, &many); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return many, nil
}
