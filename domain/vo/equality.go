package vo

import (
	"reflect"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// PropsEqual 递归判断两个属性记录是否结构相等
//
// 比较规则按优先级封闭分派：
//  1. 时间按时刻比较（忽略时区表示差异）
//  2. 嵌套值对象委托其自身的 Equals
//  3. 切片/数组逐元素递归比较
//  4. 映射先比较键数量（快速排除结构不一致），再逐键递归比较
//  5. 结构体逐字段递归比较
//  6. 其余类型做严格值比较
//
// 类型不同的双方永远不相等。
func PropsEqual(a, b any) bool {
	return equalValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func equalValue(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}

	if a.Type() == timeType && a.CanInterface() {
		return a.Interface().(time.Time).Equal(b.Interface().(time.Time))
	}

	if a.CanInterface() {
		if av, ok := a.Interface().(IValueObject); ok {
			bv, ok := b.Interface().(IValueObject)
			return ok && av.Equals(bv)
		}
	}

	switch a.Kind() {
	case reflect.Pointer, reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return equalValue(a.Elem(), b.Elem())

	case reflect.Slice, reflect.Array:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true

	case reflect.Map:
		if a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			bv := b.MapIndex(iter.Key())
			if !bv.IsValid() || !equalValue(iter.Value(), bv) {
				return false
			}
		}
		return true

	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !equalValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true

	default:
		return a.CanInterface() && a.Comparable() &&
			a.Interface() == b.Interface()
	}
}
