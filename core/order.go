package core

import (
	"cmp"
	"fmt"
	"strings"
)

// CompareStates orders states of a built in numeric or string type
// naturally and any other state by its printed form
func CompareStates[S comparable](a, b S) int {
	switch x := any(a).(type) {
	case int:
		return cmp.Compare(x, any(b).(int))
	case int32:
		return cmp.Compare(x, any(b).(int32))
	case int64:
		return cmp.Compare(x, any(b).(int64))
	case uint:
		return cmp.Compare(x, any(b).(uint))
	case uint32:
		return cmp.Compare(x, any(b).(uint32))
	case uint64:
		return cmp.Compare(x, any(b).(uint64))
	case float64:
		return cmp.Compare(x, any(b).(float64))
	case string:
		return strings.Compare(x, any(b).(string))
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
