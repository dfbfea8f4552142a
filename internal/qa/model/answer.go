package model

// AnswerID identifies an answer.
type AnswerID string

func (id AnswerID) String() string {
	return string(id)
}

// Answer is a reply to a question. QuestionID is stored as given and is not
// checked against the question table.
type Answer struct {
	ID         AnswerID   `json:"id"`
	Content    string     `json:"content"`
	QuestionID QuestionID `json:"question_id"`
}
