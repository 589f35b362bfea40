package entity_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"blog-backend/internal/domain/entity"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "valid title", title: "Go 1.25 リリースノート", wantErr: false},
		{name: "empty", title: "", wantErr: true},
		{name: "whitespace only", title: "   ", wantErr: true},
		{name: "exactly 255 runes", title: strings.Repeat("あ", 255), wantErr: false},
		{name: "256 runes", title: strings.Repeat("あ", 256), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entity.ValidateTitle(tt.title)
			if tt.wantErr {
				assert.Error(t, err)
				var ve *entity.ValidationError
				assert.True(t, errors.As(err, &ve))
				assert.Equal(t, "title", ve.Field)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateExcerptAndContent(t *testing.T) {
	assert.NoError(t, entity.ValidateExcerpt("short summary"))
	assert.Error(t, entity.ValidateExcerpt(""))
	assert.Error(t, entity.ValidateExcerpt("  "))

	assert.NoError(t, entity.ValidateContent("# heading\n\nbody"))
	assert.Error(t, entity.ValidateContent(""))
}

func TestValidateThumbnail(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "https url", url: "https://example.com/a.png", wantErr: false},
		{name: "http url", url: "http://example.com/a.png", wantErr: false},
		{name: "missing scheme", url: "example.com/a.png", wantErr: true},
		{name: "unsupported scheme", url: "ftp://example.com/a.png", wantErr: true},
		{name: "no host", url: "https://", wantErr: true},
		{name: "not a url", url: "::::", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entity.ValidateThumbnail(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, entity.ValidateCategory("テクノロジー"))
	assert.NoError(t, entity.ValidateCategory(strings.Repeat("x", 100)))
	assert.Error(t, entity.ValidateCategory(strings.Repeat("x", 101)))
}

func TestValidateTags(t *testing.T) {
	assert.NoError(t, entity.ValidateTags(nil))
	assert.NoError(t, entity.ValidateTags([]string{"Go", "Backend"}))
	assert.NoError(t, entity.ValidateTags([]string{strings.Repeat("t", 50)}))

	err := entity.ValidateTags([]string{"ok", strings.Repeat("t", 51)})
	var ve *entity.ValidationError
	if assert.Error(t, err) && assert.True(t, errors.As(err, &ve)) {
		// 違反したインデックスがフィールド名に入る
		assert.Equal(t, "tags.1", ve.Field)
	}
}

func TestValidateReadTime(t *testing.T) {
	assert.NoError(t, entity.ValidateReadTime(1))
	assert.NoError(t, entity.ValidateReadTime(42))
	assert.Error(t, entity.ValidateReadTime(0))
	assert.Error(t, entity.ValidateReadTime(-3))
}
