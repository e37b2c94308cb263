package model

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// AnswerKind tags the variant held by an AnswerValue
type AnswerKind int

const (
	AnswerInvalid AnswerKind = iota
	AnswerText               // dropdown selections and reserved free-text fields
	AnswerBool               // toggle questions
)

// AnswerValue is a validated string-or-bool answer. Payloads that are
// neither (numbers, objects, null) decode as AnswerInvalid and are
// treated as unanswered by the scorer.
type AnswerValue struct {
	Kind AnswerKind
	Text string
	Bool bool
}

// TextAnswer builds a string answer value
func TextAnswer(s string) AnswerValue {
	return AnswerValue{Kind: AnswerText, Text: s}
}

// BoolAnswer builds a boolean answer value
func BoolAnswer(b bool) AnswerValue {
	return AnswerValue{Kind: AnswerBool, Bool: b}
}

// UnmarshalJSON accepts JSON strings and booleans; anything else is
// kept as an invalid (unanswered) value rather than an error.
func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	// null unmarshals into a string as a no-op, so it must be caught
	// before the string branch
	if string(data) == "null" {
		*v = AnswerValue{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = TextAnswer(s)
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = BoolAnswer(b)
		return nil
	}
	*v = AnswerValue{}
	return nil
}

// MarshalJSON emits the underlying string or boolean; invalid values
// serialize as null.
func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case AnswerText:
		return json.Marshal(v.Text)
	case AnswerBool:
		return json.Marshal(v.Bool)
	default:
		return []byte("null"), nil
	}
}

// MarshalBSONValue stores the answer as a plain BSON string or boolean
func (v AnswerValue) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch v.Kind {
	case AnswerText:
		return bson.MarshalValue(v.Text)
	case AnswerBool:
		return bson.MarshalValue(v.Bool)
	default:
		return bsontype.Null, nil, nil
	}
}

// UnmarshalBSONValue mirrors UnmarshalJSON: strings and booleans are
// accepted, everything else decodes as unanswered.
func (v *AnswerValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.String:
		var s string
		if err := bson.UnmarshalValue(t, data, &s); err != nil {
			return err
		}
		*v = TextAnswer(s)
	case bsontype.Boolean:
		var b bool
		if err := bson.UnmarshalValue(t, data, &b); err != nil {
			return err
		}
		*v = BoolAnswer(b)
	default:
		*v = AnswerValue{}
	}
	return nil
}

// Reserved answer keys carrying respondent identity rather than
// question responses. The scorer never looks these up.
const (
	AnswerKeyName         = "name"
	AnswerKeyEmail        = "email"
	AnswerKeyRevenueRange = "revenueRange"
)

// AssessmentAnswers maps question ids (plus the reserved keys) to
// answer values. Immutable once scoring begins.
type AssessmentAnswers map[string]AnswerValue

// Name returns the reserved name field, if present
func (a AssessmentAnswers) Name() string {
	return a.textField(AnswerKeyName)
}

// Email returns the reserved email field, if present
func (a AssessmentAnswers) Email() string {
	return a.textField(AnswerKeyEmail)
}

// RevenueRange returns the reserved revenue-range field, if present
func (a AssessmentAnswers) RevenueRange() string {
	return a.textField(AnswerKeyRevenueRange)
}

func (a AssessmentAnswers) textField(key string) string {
	if v, ok := a[key]; ok && v.Kind == AnswerText {
		return v.Text
	}
	return ""
}
