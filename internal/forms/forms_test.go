package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGroups struct {
	existing map[uint]bool
}

func (f fakeGroups) GroupExists(id uint) (bool, error) {
	return f.existing[id], nil
}

func TestPostFormValid(t *testing.T) {
	groups := fakeGroups{existing: map[uint]bool{1: true}}

	form := &PostForm{Text: "Новый пост", RawGroup: "1"}
	errs, err := form.Validate(groups)
	require.NoError(t, err)
	assert.False(t, errs.Any())
	require.NotNil(t, form.GroupID)
	assert.Equal(t, uint(1), *form.GroupID)
}

func TestPostFormGroupOptional(t *testing.T) {
	form := &PostForm{Text: "Текст"}
	errs, err := form.Validate(fakeGroups{})
	require.NoError(t, err)
	assert.False(t, errs.Any())
	assert.Nil(t, form.GroupID)
}

func TestPostFormRequiresText(t *testing.T) {
	form := &PostForm{}
	errs, err := form.Validate(fakeGroups{})
	require.NoError(t, err)
	assert.True(t, errs.Any())
	assert.Contains(t, errs, "text")
}

func TestPostFormRejectsUnknownGroup(t *testing.T) {
	form := &PostForm{Text: "Текст", RawGroup: "42"}
	errs, err := form.Validate(fakeGroups{existing: map[uint]bool{1: true}})
	require.NoError(t, err)
	assert.Contains(t, errs, "group")
	assert.Nil(t, form.GroupID)
}

func TestPostFormRejectsMalformedGroup(t *testing.T) {
	form := &PostForm{Text: "Текст", RawGroup: "not-a-number"}
	errs, err := form.Validate(fakeGroups{})
	require.NoError(t, err)
	assert.Contains(t, errs, "group")
}

func TestCommentFormRequiresText(t *testing.T) {
	assert.True(t, (&CommentForm{}).Validate().Any())
	assert.False(t, (&CommentForm{Text: "Тестовый комментарий"}).Validate().Any())
}
