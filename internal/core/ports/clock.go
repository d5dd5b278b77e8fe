package ports

// Clock supplies the timestamp stamped onto orders, transition records, and
// events. Now returns milliseconds and is monotonically non-decreasing. It
// is called exactly once per mutating operation so every record written by
// that operation carries the same timestamp.
type Clock interface {
	Now() uint64
}
