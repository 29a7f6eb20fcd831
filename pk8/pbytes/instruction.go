package pbytes

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ExecuteInstructions create the final value t with type T by
//
//   - Reading each instruction into a map, then
//   - Create JSON bytes from the map, and finally
//   - Read the JSON bytes into t
//
// In order to lessen the burden of manual mapping.
func ExecuteInstructions[T any](instructions []Instruction) (*T, error) {
	tMap := map[string]any{}
	for _, instruction := range instructions {
		value, err := instruction.ReadFunction()
		if err != nil {
			err := errors.Wrapf(err, `ExecuteInstructions error reading key "%v"`, instruction.Key)
			return nil, err
		}
		tMap[instruction.Key] = value
	}
	tBytes, err := json.Marshal(tMap)
	if err != nil {
		err := errors.Wrapf(err, `ExecuteInstructions error marshalling map "%v" to JSON`, tMap)
		return nil, err
	}

	var t T
	if err := json.Unmarshal(tBytes, &t); err != nil {
		err := errors.Wrapf(
			err, `ExecuteInstructions error unmarshalling bytes "%s" to type "%T"`,
			string(tBytes), t,
		)
		return nil, err
	}

	return &t, nil
}

func CreateByteReadFunction(reader *Reader, offset int) ReadFunction {
	return func() (any, error) {
		return reader.ByteAt(offset)
	}
}

func CreateUint16ReadFunction(reader *Reader, offset int) ReadFunction {
	return func() (any, error) {
		return reader.Uint16At(offset)
	}
}

func CreateUint32ReadFunction(reader *Reader, offset int) ReadFunction {
	return func() (any, error) {
		return reader.Uint32At(offset)
	}
}

func CreateStringReadFunction(reader *Reader, offset int, n int) ReadFunction {
	return func() (any, error) {
		return reader.StringAt(offset, n)
	}
}
