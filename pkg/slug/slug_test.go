package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Résumé 2024", "resume-2024"},
		{"  Jane   Doe_CV ", "jane-doe-cv"},
		{"---", ""},
		{"Crème Brûlée!", "creme-brulee"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("/resumes/", "Jane Doe CV.PDF")

	assert.True(t, strings.HasPrefix(key, "resumes/"))
	assert.True(t, strings.HasSuffix(key, "-jane-doe-cv.pdf"))
	assert.NotEqual(t, key, ObjectKey("resumes", "Jane Doe CV.PDF"))
}

func TestObjectKey_UnsafeExtensionDropped(t *testing.T) {
	key := ObjectKey("images", "photo.p/ng")
	assert.False(t, strings.Contains(strings.TrimPrefix(key, "images/"), "/"))
}
