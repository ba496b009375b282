// Package yson 递归下降 JSON 解析器，产出不可变语法树
//
// 设计原则:
//   - 前缀解析: Parse 只消费一个完整值（含两侧空白），剩余输入原样返回，
//     是否允许尾部多余内容由调用方决定（组合子式 API，借鉴 Rust nom 的
//     IResult 剩余量约定）
//   - 索引模式引擎: 规则统一为 (s, i) → (v, newI, err)，内联空白跳过，
//     按首字符一次分派（各值类型的首字符互不相交）
//   - 结构化失败: 复合规则逐层包上规则名，最深失败位置与规则栈
//     随 ParseError 返回，无 panic 控制流
//   - 无状态: 包内没有任何全局可变量，每次解析新建独立树，
//     并发解析不同输入无需加锁
//
// 方言说明（有意简化，非完整 RFC 8259）:
//   - 字符串不处理转义序列，内容为到下一个 '"' 为止的原始字节，
//     因此 `\"` 会提前终止字符串
//   - 数字采用通用浮点词法（可选正负号、数字、可选小数、可选指数），
//     比 JSON 文法宽松: 接受前导零、前导 '+'、".5"、"5." 等形式
//   - 嵌套深度不设上限，唯一的约束是调用栈空间
//
// 用法:
//
//	v, rest, err := yson.Parse(`{"name":"yak"} tail`)
//	v.Get("name").StringVal() // "yak"
//	rest                      // "tail"
package yson

import (
	"strconv"
	"strings"
)

// Parse 从 s 的开头解析一个 JSON 值
//
// 返回语法树、未消费的剩余输入和失败信息。值两侧的空白被静默吞掉；
// 成功时不检查剩余输入是否为空。
func Parse(s string) (*Value, string, error) {
	v, i, err := parseValue(s, 0)
	if err != nil {
		return nil, s, inContext(err, "parse")
	}
	return v, s[i:], nil
}

// ParseBytes 解析 JSON 字节切片（零拷贝: 树中的字符串引用 b 的底层内存，
// 树存活期间调用方不得修改 b）
func ParseBytes(b []byte) (*Value, []byte, error) {
	v, rest, err := Parse(b2s(b))
	return v, b[len(b)-len(rest):], err
}

// ─── 核心规则（索引模式 + 内联空白跳过） ───

// parseValue 解析任意 JSON 值: 跳过前导空白，按首字符分派，跳过尾随空白
//
// 分派优先级: 对象、数组、数字、字符串、布尔、null。
// 各分支首字符互不相交，优先级只影响错误归属，不影响歧义。
func parseValue(s string, i int) (*Value, int, error) {
	n := len(s)
	for i < n && s[i] <= ' ' {
		i++
	}
	if i >= n {
		return nil, i, errAt(i, "unexpected end of input")
	}

	var v *Value
	var err error
	switch s[i] {
	case '{':
		v, i, err = parseObject(s, i+1)
	case '[':
		v, i, err = parseArray(s, i+1)
	case '"':
		v, i, err = parseString(s, i)
	case 't':
		if i+3 < n && s[i+1] == 'r' && s[i+2] == 'u' && s[i+3] == 'e' {
			v, i = Bool(true), i+4
		} else {
			err = errAt(i, "invalid literal")
		}
	case 'f':
		if i+4 < n && s[i+1] == 'a' && s[i+2] == 'l' && s[i+3] == 's' && s[i+4] == 'e' {
			v, i = Bool(false), i+5
		} else {
			err = errAt(i, "invalid literal")
		}
	case 'n':
		if i+3 < n && s[i+1] == 'u' && s[i+2] == 'l' && s[i+3] == 'l' {
			v, i = Null(), i+4
		} else {
			err = errAt(i, "invalid literal")
		}
	default:
		if s[i] == '-' || s[i] == '+' || s[i] == '.' || (s[i] >= '0' && s[i] <= '9') {
			v, i, err = parseNumber(s, i)
		} else {
			err = errAt(i, "unexpected character %q", s[i])
		}
	}
	if err != nil {
		return nil, i, err
	}

	for i < n && s[i] <= ' ' {
		i++
	}
	return v, i, nil
}

// parseObject 解析对象（i 指向 '{' 后）
//
// 键值对为 `"key" : value`，逗号分隔；重复键后写覆盖，键序不保留。
// 逗号后必须跟键值对，尾随逗号是失败。
func parseObject(s string, i int) (*Value, int, error) {
	v := &Value{t: TypeObject}
	n := len(s)
	for i < n && s[i] <= ' ' {
		i++
	}
	if i >= n {
		return nil, i, inContext(errAt(i, "unexpected end of object"), "object")
	}
	if s[i] == '}' {
		return v, i + 1, nil
	}
	for {
		for i < n && s[i] <= ' ' {
			i++
		}
		if i >= n || s[i] != '"' {
			return nil, i, inContext(errAt(i, "object key must be a string"), "object")
		}
		key, j, err := scanString(s, i)
		if err != nil {
			return nil, i, inContext(err, "object")
		}
		i = j
		for i < n && s[i] <= ' ' {
			i++
		}
		if i >= n || s[i] != ':' {
			return nil, i, inContext(errAt(i, "missing ':' after object key"), "object")
		}
		i++
		var elem *Value
		elem, i, err = parseValue(s, i) // 自带两侧空白跳过
		if err != nil {
			return nil, i, inContext(err, "object")
		}
		if v.o == nil {
			v.o = make(map[string]*Value)
		}
		v.o[key] = elem
		if i >= n {
			return nil, i, inContext(errAt(i, "unexpected end of object"), "object")
		}
		if s[i] == ',' {
			i++
			continue
		}
		if s[i] == '}' {
			return v, i + 1, nil
		}
		return nil, i, inContext(errAt(i, "expected ',' or '}' in object, got %q", s[i]), "object")
	}
}

// parseArray 解析数组（i 指向 '[' 后），元素保持源顺序
func parseArray(s string, i int) (*Value, int, error) {
	v := &Value{t: TypeArray}
	n := len(s)
	for i < n && s[i] <= ' ' {
		i++
	}
	if i >= n {
		return nil, i, inContext(errAt(i, "unexpected end of array"), "array")
	}
	if s[i] == ']' {
		return v, i + 1, nil
	}
	for {
		elem, j, err := parseValue(s, i)
		if err != nil {
			return nil, i, inContext(err, "array")
		}
		i = j
		v.a = append(v.a, elem)
		if i >= n {
			return nil, i, inContext(errAt(i, "unexpected end of array"), "array")
		}
		if s[i] == ',' {
			i++
			continue
		}
		if s[i] == ']' {
			return v, i + 1, nil
		}
		return nil, i, inContext(errAt(i, "expected ',' or ']' in array, got %q", s[i]), "array")
	}
}

// parseString 解析字符串值（s[i] == '"'）
func parseString(s string, i int) (*Value, int, error) {
	content, i, err := scanString(s, i)
	if err != nil {
		return nil, i, err
	}
	return &Value{t: TypeString, s: content}, i, nil
}

// scanString 扫描引号字符串，返回引号之间的内容和结束位置
//
// 不做转义处理: 内容是到下一个 '"' 为止的全部字节，`\"` 会提前终止。
func scanString(s string, i int) (string, int, error) {
	i++ // skip opening '"'
	j := strings.IndexByte(s[i:], '"')
	if j < 0 {
		return "", len(s), inContext(errAt(len(s), "unterminated string"), "string")
	}
	return s[i : i+j], i + j + 1, nil
}

// parseNumber 解析数字（s[i] 是符号、小数点或数字）
//
// 取通用浮点词法的最长前缀交给 strconv.ParseFloat，
// 指数部分缺少数字时不消费 'e'/'E'（指数是可选后缀）。
func parseNumber(s string, i int) (*Value, int, error) {
	start := i
	n := len(s)
	if s[i] == '-' || s[i] == '+' {
		i++
	}
	digits := false
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
		digits = true
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
			digits = true
		}
	}
	if !digits {
		return nil, start, errAt(start, "invalid number")
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < n && s[j] >= '0' && s[j] <= '9' {
			for j < n && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			i = j
		}
	}
	f, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		return nil, start, errAt(start, "invalid number %q", s[start:i])
	}
	return &Value{t: TypeNumber, f: f}, i, nil
}
