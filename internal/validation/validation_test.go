package validation

import (
	"errors"
	"testing"

	"toolverse/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string  `json:"name" validate:"required,notblank,max=10"`
	Email    string  `json:"email" validate:"required,email"`
	Website  string  `json:"website" validate:"required,url"`
	Pricing  string  `json:"pricing" validate:"required,pricing"`
	ReadTime *int    `json:"readTime" validate:"omitempty,gte=1"`
	Note     *string `json:"note,omitempty" validate:"omitempty,max=3"`
	Secret   string  `json:"-"`
}

func fields(r Result) map[string]string {
	out := make(map[string]string, len(r.Errors))
	for _, fe := range r.Errors {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestStruct_Valid(t *testing.T) {
	r := Struct(sample{
		Name:    "Draftly",
		Email:   "ada@example.com",
		Website: "https://draftly.ai",
		Pricing: "one-time",
	})
	assert.True(t, r.OK())
	assert.NoError(t, r.Err("invalid"))
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	zero := 0
	long := "toolong"
	r := Struct(&sample{
		Name:     "   ",
		Email:    "nope",
		Website:  "not a url",
		Pricing:  "enterprise",
		ReadTime: &zero,
		Note:     &long,
	})

	require.False(t, r.OK())
	got := fields(r)
	assert.Equal(t, "is required", got["name"])
	assert.Equal(t, "must be a valid email address", got["email"])
	assert.Equal(t, "must be a valid URL", got["website"])
	assert.Equal(t, "must be one of: free, freemium, paid, one-time", got["pricing"])
	assert.Equal(t, "must be greater than or equal to 1", got["readTime"])
	assert.Equal(t, "must be at most 3 characters", got["note"])
}

func TestStruct_MissingRequired(t *testing.T) {
	r := Struct(sample{})
	got := fields(r)
	for _, f := range []string{"name", "email", "website", "pricing"} {
		assert.Equal(t, "is required", got[f], f)
	}
	assert.NotContains(t, got, "readTime")
}

func TestResult_Err(t *testing.T) {
	var r Result
	r.Add("toolId", "does not exist")

	err := r.Err("Invalid user tool")
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Equal(t, "Invalid user tool", appErr.Message)
	assert.Equal(t, []models.FieldError{{Field: "toolId", Message: "does not exist"}}, appErr.Fields)
}

func TestStruct_NonStruct(t *testing.T) {
	r := Struct("plain string")
	assert.False(t, r.OK())
}

func TestNewValidator_RegistersCustomTags(t *testing.T) {
	assert.NotPanics(t, func() { _ = newValidator() })
}

func TestMustRegister_PanicsOnBadTag(t *testing.T) {
	v := validator.New()
	assert.Panics(t, func() {
		mustRegister(v, "", func(validator.FieldLevel) bool { return true })
	})
}
