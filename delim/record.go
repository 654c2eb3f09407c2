package delim

// Record is an ordered key-value mapping produced by pairing a header row
// with one data row. Key order follows insertion order, which for parsed
// records is the header order.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord creates an empty Record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set stores value under key. A key seen for the first time is appended to
// the key order; setting an existing key overwrites its value in place.
func (r *Record) Set(key, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the record's keys in insertion order. The returned slice is
// shared with the record and must not be modified.
func (r *Record) Keys() []string {
	return r.keys
}

// Len returns the number of keys in the record.
func (r *Record) Len() int {
	return len(r.keys)
}
