package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateForm(t *testing.T) {
	rules := map[string][]string{
		"name":  {"required"},
		"email": {"required", "email"},
		"phone": {"phone"},
		"price": {"required", "positiveNumber"},
		"stays": {"integer"},
	}

	t.Run("valid", func(t *testing.T) {
		res := ValidateForm(map[string]any{
			"name":  "John",
			"email": "john@example.com",
			"phone": "+1 555 1234",
			"price": 150.5,
			"stays": "3",
		}, rules)
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Errors)
	})

	t.Run("failures", func(t *testing.T) {
		res := ValidateForm(map[string]any{
			"name":  "   ",
			"email": "john@",
			"phone": "call me",
			"price": "-5",
			"stays": "2.5",
		}, rules)
		assert.False(t, res.IsValid)
		assert.Equal(t, map[string]string{
			"name":  "This field is required",
			"email": "Please enter a valid email address",
			"phone": "Please enter a valid phone number",
			"price": "Please enter a positive number",
			"stays": "Please enter a whole number",
		}, res.Errors)
	})

	t.Run("optional rules skip empty values", func(t *testing.T) {
		res := ValidateForm(map[string]any{"name": "x", "email": "a@b.co", "price": "1"}, rules)
		assert.True(t, res.IsValid)
	})

	t.Run("later failure wins", func(t *testing.T) {
		res := ValidateForm(map[string]any{"n": "abc"}, map[string][]string{"n": {"positiveNumber", "integer"}})
		assert.Equal(t, "Please enter a whole number", res.Errors["n"])
	})

	t.Run("unknown rules are ignored", func(t *testing.T) {
		res := ValidateForm(map[string]any{}, map[string][]string{"n": {"shiny"}})
		assert.True(t, res.IsValid)
	})

	t.Run("zero is not positive", func(t *testing.T) {
		res := ValidateForm(map[string]any{"p": 0.0}, map[string][]string{"p": {"positiveNumber"}})
		assert.False(t, res.IsValid)
	})
}

func TestLeadingFloat(t *testing.T) {
	n, ok := leadingFloat("12abc")
	assert.True(t, ok)
	assert.Equal(t, 12.0, n)

	_, ok = leadingFloat("abc")
	assert.False(t, ok)

	n, ok = leadingFloat("-3.5kg")
	assert.True(t, ok)
	assert.Equal(t, -3.5, n)
}

func TestValidateDateRange(t *testing.T) {
	assert.True(t, ValidateDateRange("2024-01-15", "2024-01-20"))
	assert.False(t, ValidateDateRange("2024-01-15", "2024-01-15"))
	assert.False(t, ValidateDateRange("2024-01-20", "2024-01-15"))
	assert.False(t, ValidateDateRange("", "2024-01-15"))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("Secret123").IsValid)

	res := ValidatePassword("abc")
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, "minLength")
	assert.Contains(t, res.Errors, "hasUpperCase")
	assert.Contains(t, res.Errors, "hasNumber")
	assert.NotContains(t, res.Errors, "hasLowerCase")
}

func TestValidateCreditCard(t *testing.T) {
	assert.True(t, ValidateCreditCard("4539 1488 0343 6467"))
	assert.False(t, ValidateCreditCard("4539 1488 0343 6468"))
	assert.False(t, ValidateCreditCard("abcd"))
	assert.False(t, ValidateCreditCard(""))
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "hello world", SanitizeInput(` <b>hello</b> "world" `))
	assert.Equal(t, "alert(1)", SanitizeInput("<script>alert(1)</script>"))
}

func TestLengths(t *testing.T) {
	assert.True(t, MinLength("abc", 3))
	assert.False(t, MinLength("", 0))
	assert.True(t, MaxLength("abc", 3))
	assert.False(t, MaxLength("abcd", 3))
}
