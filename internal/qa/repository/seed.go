package repository

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"qahub/internal/qa/model"
)

//go:embed seed/questions.json
var bundledQuestions []byte

// LoadSeed decodes a question dataset shaped as {"<id>": {question}, ...}.
// The key is the question id: a body without id takes it, a body whose id
// differs from the key is rejected, and so is an empty key.
func LoadSeed(r io.Reader) ([]model.Question, error) {
	var raw map[string]model.Question
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode seed questions failed: %w", err)
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	questions := make([]model.Question, 0, len(raw))
	for _, key := range keys {
		id, err := model.NewQuestionID(key)
		if err != nil {
			return nil, fmt.Errorf("seed entry %q: %w", key, err)
		}
		q := raw[key]
		switch q.ID {
		case "":
			q.ID = id
		case id:
		default:
			return nil, fmt.Errorf("seed entry %q: body id %q does not match key", key, q.ID)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// DefaultSeed returns the dataset bundled with the binary.
func DefaultSeed() ([]model.Question, error) {
	return LoadSeed(bytes.NewReader(bundledQuestions))
}

// LoadSeedFile reads a dataset from path; an empty path selects DefaultSeed.
func LoadSeedFile(path string) ([]model.Question, error) {
	if path == "" {
		return DefaultSeed()
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file failed: %w", err)
	}
	defer func() { _ = file.Close() }()
	return LoadSeed(file)
}
