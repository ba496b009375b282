package yson

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError 结构化解析失败
//
// Offset 是最深一次失败的输入字节位置，Contexts 是失败时所处的
// 规则名栈，最内层在前（取值: "string"、"array"、"object"、"parse"）。
// 输入提前结束与语法不匹配同属一类失败，不做区分。
type ParseError struct {
	Msg      string
	Offset   int
	Contexts []string
}

func (e *ParseError) Error() string {
	if len(e.Contexts) == 0 {
		return fmt.Sprintf("yson: %s at offset %d", e.Msg, e.Offset)
	}
	return fmt.Sprintf("yson: %s at offset %d (in %s)",
		e.Msg, e.Offset, strings.Join(e.Contexts, " > "))
}

// Rule 返回最内层的规则名，无上下文时返回 ""
func (e *ParseError) Rule() string {
	if len(e.Contexts) == 0 {
		return ""
	}
	return e.Contexts[0]
}

// errAt 在指定位置创建失败
func errAt(offset int, format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Offset: offset}
}

// inContext 给失败补上所在规则名（复合规则在向外传播时逐层调用）
func inContext(err error, rule string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Contexts = append(pe.Contexts, rule)
		return pe
	}
	return &ParseError{Msg: err.Error(), Contexts: []string{rule}}
}
