package player

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// AttributeValue is either an integer or a string.
type AttributeValue struct {
	text  string
	num   int64
	isNum bool
}

func IntAttribute(v int64) AttributeValue {
	return AttributeValue{num: v, isNum: true}
}

func StringAttribute(v string) AttributeValue {
	return AttributeValue{text: v}
}

// ParseAttribute keeps raw as an integer when it parses as one.
func ParseAttribute(raw string) AttributeValue {
	trimmed := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return IntAttribute(n)
	}
	return StringAttribute(raw)
}

func (v AttributeValue) IsInt() bool {
	return v.isNum
}

func (v AttributeValue) Int() (int64, bool) {
	return v.num, v.isNum
}

func (v AttributeValue) String() string {
	if v.isNum {
		return strconv.FormatInt(v.num, 10)
	}
	return v.text
}

func (v AttributeValue) MarshalJSON() ([]byte, error) {
	if v.isNum {
		return strconv.AppendInt(nil, v.num, 10), nil
	}
	return sonic.Marshal(v.text)
}

func (v *AttributeValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringAttribute(s)
		return nil
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		*v = IntAttribute(n)
		return nil
	}
	*v = StringAttribute(trimmed)
	return nil
}

// Attributes is the open set of supplementary player columns.
type Attributes map[string]AttributeValue

func (a Attributes) Get(name string) (AttributeValue, bool) {
	v, ok := a[name]
	return v, ok
}

// Keys returns attribute names in sorted order.
func (a Attributes) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}
