package pbytes

type (
	// Reader reads little-endian values at fixed offsets of an in-memory
	// buffer. It never takes ownership of the underlying bytes.
	Reader struct {
		bs []byte
	}
	// Writer builds a zero-initialized buffer by writing little-endian
	// values at fixed offsets.
	Writer struct {
		bs []byte
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)
