package contact

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Submission is the inbound contact form body.
type Submission struct {
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,contactemail"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message" validate:"required"`
	Honeypot  Honeypot  `json:"honeypot"`
	Timestamp Timestamp `json:"timestamp"`
}

// Honeypot is set when the hidden form field arrives with any truthy value.
type Honeypot bool

func (h *Honeypot) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*h = false
	case bool:
		*h = Honeypot(t)
	case string:
		*h = Honeypot(t != "")
	case float64:
		*h = Honeypot(t != 0 && !math.IsNaN(t))
	default:
		*h = true
	}
	return nil
}

// Timestamp is the client's form load time in Unix milliseconds. It accepts
// a JSON number or a string with a leading integer; anything else is unset.
type Timestamp struct {
	Millis int64
	Valid  bool
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*ts = Timestamp{}
	switch t := v.(type) {
	case float64:
		if t != 0 && !math.IsNaN(t) && !math.IsInf(t, 0) {
			*ts = Timestamp{Millis: int64(t), Valid: true}
		}
	case string:
		if n, ok := leadingInt(t); ok {
			*ts = Timestamp{Millis: n, Valid: true}
		}
	}
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if !ts.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(ts.Millis, 10)), nil
}

var intPrefix = regexp.MustCompile(`^\s*[+-]?\d+`)

// leadingInt parses the integer prefix of s, ignoring trailing characters.
// A prefix beyond the int64 range saturates at the nearest bound.
func leadingInt(s string) (int64, bool) {
	m := intPrefix.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimLeft(m, " \t\n\r"), 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

// emailShape only checks for local@domain.tld.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	return v
}

// classify maps validator errors to a rejection kind. Missing fields win
// over a malformed email.
func classify(err error) Kind {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return KindInternal
	}
	kind := KindInternal
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			return KindMissingFields
		case "contactemail":
			kind = KindInvalidEmail
		}
	}
	return kind
}
