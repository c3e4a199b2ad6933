package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"quizforge/internal/domain"
)

// QuestionList stores an ordered question sequence as a JSONB column.
// Order is display order and survives the round trip verbatim.
type QuestionList []domain.GeneratedQuestion

// Value implements the driver.Valuer interface
func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (q *QuestionList) Scan(value interface{}) error {
	return scanJSON(value, q, "QuestionList")
}

// AnswerList stores a submission's answers as a JSONB column.
type AnswerList []domain.Answer

// Value implements the driver.Valuer interface
func (a AnswerList) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (a *AnswerList) Scan(value interface{}) error {
	return scanJSON(value, a, "AnswerList")
}

func scanJSON(value interface{}, dest interface{}, typeName string) error {
	if value == nil {
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New(typeName + " Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		return nil
	}
	return json.Unmarshal(bytesToParse, dest)
}
