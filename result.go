package charscan

// Status is the tri-state outcome of a validation scan.
type Status uint8

const (
	// StatusValid means the whole scanned range is well-formed.
	StatusValid Status = iota

	// StatusInvalid means a malformed byte appeared where a character was
	// expected: a stray continuation byte, a reserved lead byte, or a byte
	// outside the encoding's legal value range.
	StatusInvalid

	// StatusIncomplete means the range ends mid-character: a multi-byte lead
	// with too few continuation bytes. Streaming callers can treat this as
	// "wait for more bytes" rather than a permanent rejection.
	StatusIncomplete
)

// String returns a short human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	case StatusIncomplete:
		return "incomplete"
	default:
		return "unknown"
	}
}

// Result is the outcome of a validation scan.
//
// LastValid is the number of leading bytes confirmed valid, which is also the
// 0-based offset at which the first problem byte begins. For a StatusValid
// result it equals the end of the scanned range.
type Result struct {
	Status    Status
	LastValid int
}

// Valid reports whether the scan found the whole range well-formed.
func (r Result) Valid() bool { return r.Status == StatusValid }
