package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForProvider_AllSchemasCompile(t *testing.T) {
	for _, name := range []string{"remotive", "adzuna", "arbeitnow", "findwork"} {
		t.Run(name, func(t *testing.T) {
			v, err := ForProvider(name)
			require.NoError(t, err)
			assert.NotNil(t, v)
		})
	}
}

func TestForProvider_Unknown(t *testing.T) {
	_, err := ForProvider("monster")
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "schema not found")
}

func TestRemotiveSchema(t *testing.T) {
	v := MustForProvider("remotive")

	assert.NoError(t, v.Validate([]byte(`{"jobs":[{"title":"Go Dev","company_name":"Acme","candidate_required_location":null,"url":"https://x"}]}`)))
	assert.NoError(t, v.Validate([]byte(`{"jobs":[]}`)))

	err := v.Validate([]byte(`{"job-count":0}`))
	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Equal(t, "remotive", validationErr.Schema)
	assert.Contains(t, err.Error(), "jobs")
}

func TestAdzunaSchema_RequiresNestedObjects(t *testing.T) {
	v := MustForProvider("adzuna")

	assert.NoError(t, v.Validate([]byte(`{"results":[{"title":"Dev","company":{"display_name":"Acme"},"location":{"display_name":"Pune"}}]}`)))

	err := v.Validate([]byte(`{"results":[{"title":"Dev","location":{"display_name":"Pune"}}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "company")

	err = v.Validate([]byte(`{"results":[{"title":"Dev","company":null,"location":{}}]}`))
	assert.Error(t, err)
}

func TestArbeitnowSchema_RequiresTags(t *testing.T) {
	v := MustForProvider("arbeitnow")

	assert.NoError(t, v.Validate([]byte(`{"data":[{"title":"Dev","tags":["go","backend"]}]}`)))

	err := v.Validate([]byte(`{"data":[{"title":"Dev"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tags")
}

func TestArbeitnowSchema_AllowsNullTags(t *testing.T) {
	v := MustForProvider("arbeitnow")

	assert.NoError(t, v.Validate([]byte(`{"data":[{"title":"Dev","tags":["Go",null]}]}`)))
	assert.Error(t, v.Validate([]byte(`{"data":[{"title":"Dev","tags":["Go",7]}]}`)))
}

func TestFindworkSchema(t *testing.T) {
	v := MustForProvider("findwork")

	assert.NoError(t, v.Validate([]byte(`{"count":1,"results":[{"role":"Dev","location":null}]}`)))
	assert.Error(t, v.Validate([]byte(`{"results":"nope"}`)))
}

func TestValidate_NotJSON(t *testing.T) {
	v := MustForProvider("findwork")

	err := v.Validate([]byte(`<html></html>`))
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCompile_InvalidSchema(t *testing.T) {
	_, err := Compile("broken", `{"type": 12}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidationError_Format(t *testing.T) {
	err := &ValidationError{
		Schema: "adzuna",
		Errors: []FieldError{
			{Field: "results.0", Message: "company is required"},
		},
	}

	assert.Contains(t, err.Error(), "adzuna payload validation failed")
	assert.Contains(t, err.Error(), "1. results.0: company is required")
}
