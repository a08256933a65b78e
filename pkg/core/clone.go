package core

import "encoding/json"

// Clones are produced by a full encode/decode round trip. Decoding rebuilds each
// entity through its explicit constructor, so a clone carries exactly the
// source's field values (lastModified included) and shares no state with it.
// Observers are not copied.

func roundTrip[T any](src *T) (*T, error) {
	data, err := json.Marshal(src)
	if err != nil {
		return nil, err
	}
	dst := new(T)
	if err := json.Unmarshal(data, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// Clone returns a deep copy of n. A nil note clones to nil.
func (n *Note) Clone() (*Note, error) {
	if n == nil {
		return nil, nil
	}
	return roundTrip(n)
}

// Clone returns a deep copy of f and its notes.
func (f *Folder) Clone() (*Folder, error) {
	if f == nil {
		return nil, nil
	}
	return roundTrip(f)
}

// Clone returns a deep copy of p and everything below it.
func (p *Profile) Clone() (*Profile, error) {
	if p == nil {
		return nil, nil
	}
	return roundTrip(p)
}

// Clone returns a deep copy of the whole library.
func (l *Library) Clone() (*Library, error) {
	if l == nil {
		return nil, nil
	}
	return roundTrip(l)
}
