package model

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorRequestValidate(t *testing.T) {
	assert.NoError(t, AuthorRequest{Name: "N. K. Jemisin", Bio: "American author."}.Validate())

	t.Run("both fields required", func(t *testing.T) {
		err := AuthorRequest{}.Validate()
		require.Error(t, err)

		errs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Equal(t, "This field is required.", errs["name"].Error())
		assert.Equal(t, "This field is required.", errs["bio"].Error())
	})

	t.Run("name too long", func(t *testing.T) {
		err := AuthorRequest{
			Name: strings.Repeat("x", MaxNameLength+1),
			Bio:  "Bio.",
		}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.(validation.Errors), "name")
	})
}

func TestAuthorRequestToEntity(t *testing.T) {
	req := AuthorRequest{Name: "N. K. Jemisin", Bio: "American author."}

	a := req.ToEntity()
	assert.Zero(t, a.ID)
	assert.Equal(t, req.Name, a.Name)
	assert.Equal(t, req.Bio, a.Bio)
}
