package domain

import "strconv"

// ID identifies an entity within its own collection. Zero means "unset".
type ID int64

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses a decimal identifier. Zero and negative values are rejected.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &OpError{Op: "domain.parse_id", Kind: KindInvalidInput, Err: err}
	}
	if n <= 0 {
		return 0, &OpError{Op: "domain.parse_id", Kind: KindInvalidInput, Err: ErrInvalidInput}
	}
	return ID(n), nil
}

// ContainsID reports whether id is in ids.
func ContainsID(ids []ID, id ID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// AppendUnique appends id unless it is already present.
func AppendUnique(ids []ID, id ID) []ID {
	if ContainsID(ids, id) {
		return ids
	}
	return append(ids, id)
}

// RemoveID returns ids without any occurrence of id. The input is not mutated.
func RemoveID(ids []ID, id ID) []ID {
	out := make([]ID, 0, len(ids))
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}

// CloneIDs returns a copy that never aliases the input. A nil input yields an empty slice.
func CloneIDs(ids []ID) []ID {
	out := make([]ID, len(ids))
	copy(out, ids)
	return out
}
