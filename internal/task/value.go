package task

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// ValueKind discriminates the payload of a Value.
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindTime
	KindStringList
)

// Value is a comparable field value: what the accessor returns for a task
// field, and what a rule condition carries as its comparand. The zero Value
// is absent, which is also what unknown fields and unsupported JSON shapes
// resolve to.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
	t    time.Time
	list []string
}

func StringValue(s string) Value    { return Value{kind: KindString, str: s} }
func NumberValue(n float64) Value   { return Value{kind: KindNumber, num: n} }
func BoolValue(b bool) Value        { return Value{kind: KindBool, b: b} }
func TimeValue(t time.Time) Value   { return Value{kind: KindTime, t: t} }
func ListValue(list []string) Value { return Value{kind: KindStringList, list: list} }

// Kind returns the discriminator of v.
func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether v carries no value at all.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// StringList returns the list payload, if v holds one.
func (v Value) StringList() ([]string, bool) {
	if v.kind != KindStringList {
		return nil, false
	}
	return v.list, true
}

// Equal is strict value equality: kinds must match and payloads must be
// equal. Two absent values compare equal, so an unset optional field does
// not register as a change against another unset one.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindAbsent:
		return true
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	case KindTime:
		return v.t.Equal(other.t)
	case KindStringList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != other.list[i] {
				return false
			}
		}
		return true
	}
	return false
}

// Number coerces v to a number for ordering comparisons. Values with no
// numeric reading coerce to NaN, and the evaluator treats any comparison
// against NaN as false.
func (v Value) Number() float64 {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return math.NaN()
		}
		return n
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindTime:
		return float64(v.t.UnixMilli())
	}
	return math.NaN()
}

// String returns the string form of v, used by substring matching.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTime:
		return v.t.Format(time.RFC3339)
	case KindStringList:
		return strings.Join(v.list, ",")
	}
	return ""
}

// UnmarshalJSON accepts strings, numbers, booleans, string lists and null.
// Anything else decodes to the absent Value rather than failing, so a
// malformed comparand degrades to a condition that never matches instead of
// blocking the whole rule file.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*v = Value{}
		return nil
	}
	switch x := raw.(type) {
	case string:
		*v = StringValue(x)
	case float64:
		*v = NumberValue(x)
	case bool:
		*v = BoolValue(x)
	case []any:
		list := make([]string, 0, len(x))
		for _, el := range x {
			s, ok := el.(string)
			if !ok {
				*v = Value{}
				return nil
			}
			list = append(list, s)
		}
		*v = ListValue(list)
	default:
		*v = Value{}
	}
	return nil
}

// MarshalJSON writes the natural JSON form of each kind; absent marshals as
// null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindTime:
		return json.Marshal(v.t.Format(time.RFC3339))
	case KindStringList:
		return json.Marshal(v.list)
	}
	return []byte("null"), nil
}
