package benchmark

import "time"

// Operation is the direction of a measured cipher call.
type Operation string

const (
	OpEncrypt Operation = "encrypt"
	OpDecrypt Operation = "decrypt"
)

// MiB is the divisor used for throughput figures, consistent with the
// binary payload sizes.
const MiB = 1 << 20

// Result is a single row of a result set: one (file, algorithm, operation)
// triple with its averaged timing figures.
type Result struct {
	File            string    `json:"file"`
	Algorithm       string    `json:"algorithm"`
	Operation       Operation `json:"operation"`
	AvgTimeSeconds  float64   `json:"avg_time_s"`
	ThroughputMiBps float64   `json:"throughput_mib_s"`
	InputBytes      int       `json:"input_bytes"`
}

// Run is the ordered result set of one full suite execution. It is built
// once by the suite and immutable after completion.
type Run struct {
	ID        int64     `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Results   []Result  `json:"results"`
}

// SizeSpec names a payload size used for fixture files.
type SizeSpec struct {
	Label string `json:"label"`
	Bytes int    `json:"bytes"`
}
