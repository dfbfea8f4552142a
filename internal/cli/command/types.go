package command

import (
	"strconv"
	"strings"
)

// FieldType describes input type.
type FieldType int

const (
	FieldString FieldType = iota
	FieldUint
	FieldStringList
)

// Location says where a field ends up in the HTTP request.
type Location int

const (
	InBody Location = iota
	InPath
	InQuery
)

// BodyEncoding selects how body fields are serialized.
type BodyEncoding int

const (
	BodyNone BodyEncoding = iota
	BodyJSON
	BodyForm
)

// Field defines a CLI input field.
type Field struct {
	Name     string
	WireName string // key sent to the server, defaults to Name
	Aliases  []string
	Prompt   string
	Type     FieldType
	In       Location
	Required bool
}

func (f Field) wireName() string {
	if f.WireName != "" {
		return f.WireName
	}
	return f.Name
}

// Command defines a CLI command binding.
type Command struct {
	Service      string
	Action       string
	Method       string
	PathTemplate string
	Encoding     BodyEncoding
	Fields       []Field
}

// RequestSpec is the built HTTP request.
type RequestSpec struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    []byte
}

// Params holds parsed input params. Keys are case-insensitive.
type Params map[string]string

func (p Params) Get(key string) string {
	return p[strings.ToLower(key)]
}

func (p Params) Set(key, value string) {
	p[strings.ToLower(key)] = value
}

func (p Params) Has(key string) bool {
	_, ok := p[strings.ToLower(key)]
	return ok
}

func (p Params) Canonicalize(fields []Field) {
	for _, field := range fields {
		for _, alias := range field.Aliases {
			aliasKey := strings.ToLower(alias)
			if value, ok := p[aliasKey]; ok {
				p[strings.ToLower(field.Name)] = value
				delete(p, aliasKey)
			}
		}
	}
}

func ParseUint(value string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(value), 10, 64)
}

func ParseStringList(value string) []string {
	raw := strings.Split(value, ",")
	result := make([]string, 0, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
