package yson

import "unsafe"

// Type JSON 值类型
type Type uint8

const (
	TypeNull   Type = iota // null
	TypeBool               // true / false
	TypeNumber             // IEEE-754 double
	TypeString             // 字符串
	TypeArray              // 数组
	TypeObject             // 对象
)

// String 返回类型名称
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value JSON 语法树节点（不可变）
//
// 六种变体共用一个结构体，t 为类型标签，其余字段按类型取用:
//   - f: TypeNumber 的数值（解析时已转为 float64，不区分整数/浮点）
//   - s: TypeString 的内容（引号之间的原始字节，未做解转义）
//   - b: TypeBool 的布尔值
//   - a: TypeArray 的子值，保持源文本顺序
//   - o: TypeObject 的键值映射，无序，重复键后写覆盖
//
// 每次解析都新建独立的树: 节点之间不共享，构造后不再修改，
// 因此多个 goroutine 各自解析各自的输入天然安全。
type Value struct {
	o map[string]*Value
	a []*Value
	s string
	f float64
	t Type
	b bool
}

// ─── 构造 ───

// Null 构造 null 节点
func Null() *Value { return &Value{t: TypeNull} }

// Bool 构造布尔节点
func Bool(b bool) *Value { return &Value{t: TypeBool, b: b} }

// Number 构造数字节点
func Number(f float64) *Value { return &Value{t: TypeNumber, f: f} }

// Str 构造字符串节点
func Str(s string) *Value { return &Value{t: TypeString, s: s} }

// Arr 构造数组节点，元素顺序即参数顺序
func Arr(elems ...*Value) *Value { return &Value{t: TypeArray, a: elems} }

// Obj 构造对象节点。fields 的所有权转移给返回值，调用方不得再修改。
func Obj(fields map[string]*Value) *Value { return &Value{t: TypeObject, o: fields} }

// ─── 类型判断 ───

// Type 返回值类型
func (v *Value) Type() Type {
	if v == nil {
		return TypeNull
	}
	return v.t
}

// IsNull 是否为 null
func (v *Value) IsNull() bool { return v == nil || v.t == TypeNull }

// IsObject 是否为对象
func (v *Value) IsObject() bool { return v != nil && v.t == TypeObject }

// IsArray 是否为数组
func (v *Value) IsArray() bool { return v != nil && v.t == TypeArray }

// ─── 值获取（安全: 类型不匹配返回零值） ───

// Float64 返回数字值（非数字返回 0）
func (v *Value) Float64() float64 {
	if v == nil || v.t != TypeNumber {
		return 0
	}
	return v.f
}

// StringVal 返回字符串内容（非字符串返回 ""）
func (v *Value) StringVal() string {
	if v == nil || v.t != TypeString {
		return ""
	}
	return v.s
}

// BoolVal 返回布尔值（非布尔返回 false）
func (v *Value) BoolVal() bool {
	if v == nil || v.t != TypeBool {
		return false
	}
	return v.b
}

// Get 按路径获取嵌套值，不存在返回 nil
//
//	v.Get("user", "name")  // 获取 {"user":{"name":"..."}} 中的 name
//	v.Get("items", "0")    // 获取数组第 0 个元素
func (v *Value) Get(keys ...string) *Value {
	for _, key := range keys {
		if v == nil {
			return nil
		}
		switch v.t {
		case TypeObject:
			v = v.o[key]
		case TypeArray:
			idx, ok := parseIdx(key)
			if !ok || idx < 0 || idx >= len(v.a) {
				return nil
			}
			v = v.a[idx]
		default:
			return nil
		}
	}
	return v
}

// Len 返回数组或对象的元素数量
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.t {
	case TypeArray:
		return len(v.a)
	case TypeObject:
		return len(v.o)
	default:
		return 0
	}
}

// ArrayEach 按源顺序遍历数组元素，返回 false 停止遍历
func (v *Value) ArrayEach(fn func(i int, val *Value) bool) {
	if v == nil || v.t != TypeArray {
		return
	}
	for i, elem := range v.a {
		if !fn(i, elem) {
			return
		}
	}
}

// ObjectEach 遍历对象键值对（遍历顺序不定），返回 false 停止遍历
func (v *Value) ObjectEach(fn func(key string, val *Value) bool) {
	if v == nil || v.t != TypeObject {
		return
	}
	for k, elem := range v.o {
		if !fn(k, elem) {
			return
		}
	}
}

// Equal 递归比较两棵树的结构是否相同（变体一致且内容逐项相等）
//
// 空数组/空对象与 nil 底层容器视为相等，对象键序不参与比较。
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v.IsNull() && other.IsNull()
	}
	if v.t != other.t {
		return false
	}
	switch v.t {
	case TypeNull:
		return true
	case TypeBool:
		return v.b == other.b
	case TypeNumber:
		return v.f == other.f
	case TypeString:
		return v.s == other.s
	case TypeArray:
		if len(v.a) != len(other.a) {
			return false
		}
		for i := range v.a {
			if !v.a[i].Equal(other.a[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if len(v.o) != len(other.o) {
			return false
		}
		for k, elem := range v.o {
			oe, ok := other.o[k]
			if !ok || !elem.Equal(oe) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ─── 辅助函数 ───

func parseIdx(s string) (int, bool) {
	if len(s) == 0 || len(s) > 10 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
		if n < 0 {
			return 0, false // 溢出保护（32 位平台）
		}
	}
	return n, true
}

// b2s 零拷贝 []byte → string
func b2s(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
