package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type samplePersonal struct {
	Status *string `json:"status" validate:"omitempty,oneof=TO_READ READING FINISHED ABANDONED"`
	Rating *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Pages  *int    `json:"pages" validate:"omitempty,gt=0"`
}

type sampleBook struct {
	Title    string  `json:"title" validate:"required,min=1"`
	CoverURL *string `json:"cover_url" validate:"omitempty,url"`
	Rating   *int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

func TestFields_UsesJSONNames(t *testing.T) {
	v := NewValidate()

	rating := 7
	err := v.Struct(samplePersonal{Rating: &rating})
	require.Error(t, err)

	fields := Fields(err)
	require.Contains(t, fields, "rating")
	require.Equal(t, "must be at most 5", fields["rating"])
}

func TestFields_EnumeratesEveryFailure(t *testing.T) {
	v := NewValidate()

	rating := 0
	badURL := "not a url"
	err := v.Struct(sampleBook{Title: "", CoverURL: &badURL, Rating: &rating})
	require.Error(t, err)

	fields := Fields(err)
	require.Len(t, fields, 3)
	require.Equal(t, "required", fields["title"])
	require.Equal(t, "must be a valid URL", fields["cover_url"])
	require.Equal(t, "must be at least 1", fields["rating"])
}

func TestFields_RatingBounds(t *testing.T) {
	v := NewValidate()

	for _, bad := range []int{0, 6, 7, -1} {
		bad := bad
		err := v.Struct(samplePersonal{Rating: &bad})
		require.Errorf(t, err, "rating %d should fail", bad)
		require.Contains(t, Fields(err), "rating")
	}
	for _, ok := range []int{1, 3, 5} {
		ok := ok
		require.NoError(t, v.Struct(samplePersonal{Rating: &ok}))
	}
}

func TestFields_StatusEnum(t *testing.T) {
	v := NewValidate()

	bad := "DONE"
	err := v.Struct(samplePersonal{Status: &bad})
	require.Error(t, err)
	require.Contains(t, Fields(err), "status")

	good := "ABANDONED"
	require.NoError(t, v.Struct(samplePersonal{Status: &good}))
}

func TestFields_NonValidationError(t *testing.T) {
	require.Nil(t, Fields(nil))
}

func TestValidator_EchoInterface(t *testing.T) {
	v := New()
	require.NoError(t, v.Validate(sampleBook{Title: "1984"}))
	require.Error(t, v.Validate(sampleBook{}))
}
