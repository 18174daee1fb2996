package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalet_Equal(t *testing.T) {
	walet1 := &Walet{ID: Int64(1)}
	walet2 := &Walet{ID: walet1.ID}
	assert.True(t, walet1.Equal(walet2))

	walet2.ID = Int64(2)
	assert.False(t, walet1.Equal(walet2))

	walet1.ID = nil
	assert.False(t, walet1.Equal(walet2))

	walet2.ID = nil
	assert.False(t, walet1.Equal(walet2))
	assert.False(t, walet1.Equal(walet1))

	assert.False(t, walet1.Equal(nil))
}

func TestWalet_Merge(t *testing.T) {
	tests := []struct {
		name  string
		patch *Walet
		want  Walet
	}{
		{
			name:  "nil patch keeps everything",
			patch: nil,
			want:  Walet{ID: Int64(5), IDClient: Int64(1), Login: String("AAAAAAAAAA"), Password: String("AAAAAAAAAA")},
		},
		{
			name:  "only login",
			patch: &Walet{Login: String("BBBBBBBBBB")},
			want:  Walet{ID: Int64(5), IDClient: Int64(1), Login: String("BBBBBBBBBB"), Password: String("AAAAAAAAAA")},
		},
		{
			name:  "all fields",
			patch: &Walet{IDClient: Int64(2), Login: String("BBBBBBBBBB"), Password: String("BBBBBBBBBB")},
			want:  Walet{ID: Int64(5), IDClient: Int64(2), Login: String("BBBBBBBBBB"), Password: String("BBBBBBBBBB")},
		},
		{
			name:  "id in patch is ignored",
			patch: &Walet{ID: Int64(99)},
			want:  Walet{ID: Int64(5), IDClient: Int64(1), Login: String("AAAAAAAAAA"), Password: String("AAAAAAAAAA")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := Walet{ID: Int64(5), IDClient: Int64(1), Login: String("AAAAAAAAAA"), Password: String("AAAAAAAAAA")}
			existing.Merge(tt.patch)
			assert.Equal(t, tt.want, existing)
		})
	}
}

func TestWalet_StringMasksPassword(t *testing.T) {
	w := &Walet{ID: Int64(3), Login: String("bob"), Password: String("secret")}
	s := w.String()
	assert.Contains(t, s, "id=3")
	assert.Contains(t, s, "login='bob'")
	assert.NotContains(t, s, "secret")
}
