package yson

import (
	"sort"
	"strconv"
)

// Dump 返回树的多行缩进调试渲染（诊断用途，不是 JSON 序列化）
//
//	Array [
//	    Number(1),
//	    Str("x"),
//	]
//
// 对象键按字典序输出，保证渲染结果确定（底层映射无序）。
func (v *Value) Dump() string {
	return b2s(appendValue(nil, v, 0, true))
}

// String 返回树的单行紧凑调试渲染
func (v *Value) String() string {
	return b2s(appendValue(nil, v, 0, false))
}

const dumpIndent = "    "

// appendValue 向 buf 追加 v 的调试渲染（直接追加字节，无中间缓冲）
func appendValue(buf []byte, v *Value, depth int, pretty bool) []byte {
	if v == nil {
		return append(buf, "Null"...)
	}
	switch v.t {
	case TypeNull:
		return append(buf, "Null"...)
	case TypeBool:
		if v.b {
			return append(buf, "Bool(true)"...)
		}
		return append(buf, "Bool(false)"...)
	case TypeNumber:
		buf = append(buf, "Number("...)
		buf = strconv.AppendFloat(buf, v.f, 'g', -1, 64)
		return append(buf, ')')
	case TypeString:
		buf = append(buf, "Str("...)
		buf = strconv.AppendQuote(buf, v.s)
		return append(buf, ')')
	case TypeArray:
		if len(v.a) == 0 {
			return append(buf, "Array []"...)
		}
		buf = append(buf, "Array ["...)
		for idx, elem := range v.a {
			buf = appendSep(buf, idx, depth+1, pretty)
			buf = appendValue(buf, elem, depth+1, pretty)
		}
		return appendClose(buf, depth, pretty, ']')
	case TypeObject:
		if len(v.o) == 0 {
			return append(buf, "Object {}"...)
		}
		keys := make([]string, 0, len(v.o))
		for k := range v.o {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf = append(buf, "Object {"...)
		for idx, k := range keys {
			buf = appendSep(buf, idx, depth+1, pretty)
			buf = strconv.AppendQuote(buf, k)
			buf = append(buf, ": "...)
			buf = appendValue(buf, v.o[k], depth+1, pretty)
		}
		return appendClose(buf, depth, pretty, '}')
	default:
		return append(buf, "unknown"...)
	}
}

// appendSep 容器元素之间的分隔: 紧凑模式用 ", "，缩进模式换行缩进
func appendSep(buf []byte, idx, depth int, pretty bool) []byte {
	if !pretty {
		if idx > 0 {
			buf = append(buf, ", "...)
		}
		return buf
	}
	if idx > 0 {
		buf = append(buf, ',')
	}
	buf = append(buf, '\n')
	for d := 0; d < depth; d++ {
		buf = append(buf, dumpIndent...)
	}
	return buf
}

func appendClose(buf []byte, depth int, pretty bool, bracket byte) []byte {
	if pretty {
		buf = append(buf, ",\n"...)
		for d := 0; d < depth; d++ {
			buf = append(buf, dumpIndent...)
		}
	}
	return append(buf, bracket)
}
