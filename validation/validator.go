package validation

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Form rule names.
const (
	RuleRequired       = "required"
	RuleEmail          = "email"
	RulePhone          = "phone"
	RulePositiveNumber = "positiveNumber"
	RuleInteger        = "integer"
)

var messages = map[string]string{
	RuleRequired:       "This field is required",
	RuleEmail:          "Please enter a valid email address",
	RulePhone:          "Please enter a valid phone number",
	RulePositiveNumber: "Please enter a positive number",
	RuleInteger:        "Please enter a whole number",
}

// Form rules map onto validator tags. The email rule is looser than the
// validator's own "email" tag, so it gets a tag of its own.
var ruleTags = map[string]string{
	RuleRequired:       "required",
	RuleEmail:          "formemail",
	RulePhone:          "phone",
	RulePositiveNumber: "positivenumber",
	RuleInteger:        "integer",
}

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,9}$`)
	tagRegex   = regexp.MustCompile(`<[^>]*>`)

	validate = newValidate()
)

func newValidate() *validator.Validate {
	v := validator.New()

	v.RegisterValidation("formemail", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("positivenumber", func(fl validator.FieldLevel) bool {
		n, ok := leadingFloat(fl.Field().String())
		return ok && n > 0
	})
	v.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		n, ok := leadingFloat(fl.Field().String())
		return ok && n == math.Trunc(n) && !math.IsInf(n, 0)
	})

	// Amounts validate as plain numbers so tags like gte=0 apply.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// Result is the outcome of ValidateForm. Fields without failures are absent
// from Errors.
type Result struct {
	IsValid bool              `json:"isValid"`
	Errors  map[string]string `json:"errors"`
}

// ValidateForm checks data against rules, a list of rule names per field.
// Unknown rule names are ignored and every rule except required skips empty
// values. Rules run in the order given and a later failure replaces an
// earlier message for the same field.
func ValidateForm(data map[string]any, rules map[string][]string) Result {
	res := Result{IsValid: true, Errors: map[string]string{}}

	for field, fieldRules := range rules {
		value := String(data[field])
		for _, rule := range fieldRules {
			tag, ok := ruleTags[rule]
			if !ok {
				continue
			}
			if rule != RuleRequired && value == "" {
				continue
			}
			if err := validate.Var(value, tag); err != nil {
				res.Errors[field] = messages[rule]
				res.IsValid = false
			}
		}
	}
	return res
}

// Struct validates a model against its validate tags.
func Struct(v any) error {
	return validate.Struct(v)
}

// String renders a form value the way it would have been typed.
func String(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// leadingFloat parses the numeric prefix of s ("12abc" reads as 12).
func leadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n, true
	}
	end := 0
	seenDot, seenDigit := false, false
scan:
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
			end = i + 1
		case r == '.' && !seenDot:
			seenDot = true
		case (r == '-' || r == '+') && i == 0:
		default:
			break scan
		}
	}
	if !seenDigit {
		return 0, false
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	return n, err == nil
}

// ValidateDateRange reports whether end falls strictly after start. Both are
// YYYY-MM-DD dates.
func ValidateDateRange(start, end string) bool {
	s, err := time.Parse("2006-01-02", strings.TrimSpace(start))
	if err != nil {
		return false
	}
	e, err := time.Parse("2006-01-02", strings.TrimSpace(end))
	if err != nil {
		return false
	}
	return e.After(s)
}

// ValidatePassword checks length and character classes. Errors holds one
// entry per failed requirement.
func ValidatePassword(password string) Result {
	res := Result{IsValid: true, Errors: map[string]string{}}
	fail := func(key, msg string) {
		res.IsValid = false
		res.Errors[key] = msg
	}
	if utf8.RuneCountInString(password) < 8 {
		fail("minLength", "Password must be at least 8 characters")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		fail("hasUpperCase", "Password must contain an uppercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		fail("hasLowerCase", "Password must contain a lowercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		fail("hasNumber", "Password must contain a number")
	}
	return res
}

// ValidateCreditCard runs the Luhn checksum over a card number; spaces are
// ignored.
func ValidateCreditCard(number string) bool {
	number = strings.ReplaceAll(number, " ", "")
	if number == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// SanitizeInput strips markup and quote characters from free text.
func SanitizeInput(s string) string {
	s = tagRegex.ReplaceAllString(s, "")
	s = strings.NewReplacer("<", "", ">", "", "'", "", `"`, "").Replace(s)
	return strings.TrimSpace(s)
}

func MinLength(s string, n int) bool {
	return s != "" && utf8.RuneCountInString(s) >= n
}

func MaxLength(s string, n int) bool {
	return utf8.RuneCountInString(s) <= n
}
