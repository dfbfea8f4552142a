package command

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

var questionBody = []Field{
	{Name: "id", Prompt: "question_id", Type: FieldString, In: InBody, Required: true},
	{Name: "title", Prompt: "title", Type: FieldString, In: InBody, Required: true},
	{Name: "content", Prompt: "content", Type: FieldString, In: InBody, Required: true},
	{Name: "tags", Prompt: "tags (comma-separated)", Type: FieldStringList, In: InBody},
}

// Registry returns all CLI commands keyed by "service action".
func Registry() map[string]Command {
	commands := []Command{
		{
			Service:      "question",
			Action:       "list",
			Method:       "GET",
			PathTemplate: "/questions",
			Fields: []Field{
				{Name: "start", Prompt: "start", Type: FieldUint, In: InQuery},
				{Name: "end", Prompt: "end", Type: FieldUint, In: InQuery},
			},
		},
		{
			Service:      "question",
			Action:       "get",
			Method:       "GET",
			PathTemplate: "/questions/:id",
			Fields: []Field{
				{Name: "id", Prompt: "question_id", Type: FieldString, In: InPath, Required: true},
			},
		},
		{
			Service:      "question",
			Action:       "create",
			Method:       "POST",
			PathTemplate: "/questions",
			Encoding:     BodyJSON,
			Fields:       questionBody,
		},
		{
			Service:      "question",
			Action:       "update",
			Method:       "PUT",
			PathTemplate: "/questions/:key",
			Encoding:     BodyJSON,
			Fields: append([]Field{
				{Name: "key", Aliases: []string{"path_id"}, Prompt: "question_id to update", Type: FieldString, In: InPath, Required: true},
			}, questionBody...),
		},
		{
			Service:      "question",
			Action:       "delete",
			Method:       "DELETE",
			PathTemplate: "/questions/:id",
			Fields: []Field{
				{Name: "id", Prompt: "question_id", Type: FieldString, In: InPath, Required: true},
			},
		},
		{
			Service:      "answer",
			Action:       "create",
			Method:       "POST",
			PathTemplate: "/answers",
			Encoding:     BodyForm,
			Fields: []Field{
				{Name: "id", Prompt: "answer_id", Type: FieldString, In: InBody, Required: true},
				{Name: "content", Prompt: "content", Type: FieldString, In: InBody, Required: true},
				{Name: "question_id", WireName: "questionId", Aliases: []string{"questionId"}, Prompt: "question_id", Type: FieldString, In: InBody, Required: true},
			},
		},
	}

	result := make(map[string]Command, len(commands))
	for _, cmd := range commands {
		key := fmt.Sprintf("%s %s", cmd.Service, cmd.Action)
		result[key] = cmd
	}
	return result
}

// BuildRequest resolves cmd and params into a RequestSpec.
func BuildRequest(cmd Command, params Params) (RequestSpec, error) {
	params.Canonicalize(cmd.Fields)
	path, err := buildPath(cmd, params)
	if err != nil {
		return RequestSpec{}, err
	}
	if query, err := buildQuery(cmd, params); err != nil {
		return RequestSpec{}, err
	} else if query != "" {
		path += "?" + query
	}

	headers := map[string]string{}
	var body []byte
	switch cmd.Encoding {
	case BodyJSON:
		payload, err := buildJSONPayload(cmd, params)
		if err != nil {
			return RequestSpec{}, err
		}
		body, err = json.Marshal(payload)
		if err != nil {
			return RequestSpec{}, fmt.Errorf("marshal request body failed: %w", err)
		}
		headers["Content-Type"] = "application/json"
	case BodyForm:
		form := url.Values{}
		for _, field := range cmd.Fields {
			if field.In == InBody && params.Get(field.Name) != "" {
				form.Set(field.wireName(), params.Get(field.Name))
			}
		}
		body = []byte(form.Encode())
		headers["Content-Type"] = "application/x-www-form-urlencoded"
	}

	return RequestSpec{
		Method:  cmd.Method,
		Path:    path,
		Headers: headers,
		Body:    body,
	}, nil
}

func buildPath(cmd Command, params Params) (string, error) {
	path := cmd.PathTemplate
	for _, field := range cmd.Fields {
		if field.In != InPath {
			continue
		}
		placeholder := ":" + field.Name
		value := params.Get(field.Name)
		if value == "" {
			return "", fmt.Errorf("missing path parameter: %s", field.Name)
		}
		path = strings.ReplaceAll(path, placeholder, url.PathEscape(value))
	}
	return path, nil
}

func buildQuery(cmd Command, params Params) (string, error) {
	query := url.Values{}
	for _, field := range cmd.Fields {
		if field.In != InQuery || !params.Has(field.Name) {
			continue
		}
		value := params.Get(field.Name)
		if field.Type == FieldUint {
			if _, err := ParseUint(value); err != nil {
				return "", fmt.Errorf("invalid %s: %w", field.Name, err)
			}
		}
		query.Set(field.wireName(), value)
	}
	return query.Encode(), nil
}

func buildJSONPayload(cmd Command, params Params) (map[string]interface{}, error) {
	payload := map[string]interface{}{}
	for _, field := range cmd.Fields {
		if field.In != InBody || !params.Has(field.Name) {
			continue
		}
		value := params.Get(field.Name)
		switch field.Type {
		case FieldStringList:
			payload[field.wireName()] = ParseStringList(value)
		case FieldUint:
			n, err := ParseUint(value)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %w", field.Name, err)
			}
			payload[field.wireName()] = n
		default:
			payload[field.wireName()] = value
		}
	}
	return payload, nil
}
