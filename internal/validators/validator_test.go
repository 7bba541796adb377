package validators

import (
	"net/http"
	"testing"

	"github.com/anonto42/snapgram/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_MissingFieldsNamedByJSONTag(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&models.CreatePostRequest{})
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Equal(t, "Missing fields: caption, image_url", he.Message)
}

func TestValidate_SingleMissingField(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&models.CreatePostRequest{ImageURL: "https://img.example/1.jpg"})
	require.Error(t, err)

	he := err.(*echo.HTTPError)
	assert.Equal(t, "Missing fields: caption", he.Message)
}

func TestValidate_ValidStruct(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&models.CreatePostRequest{
		Caption:  "sunset",
		ImageURL: "https://img.example/1.jpg",
	})
	assert.NoError(t, err)
}
