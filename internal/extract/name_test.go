package extract

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"plain name", "홍길동", "홍길동"},
		{"bank codes and digits", "0123-45 김철수 (CMS)", "김철수"},
		{"ascii only", "ATM 12345", ""},
		{"punctuation between", "이.영.희!", "이영희"},
		{"memo overlap kept", "박민수 양곡대금", "박민수양곡대금"},
		{"compatibility jamo dropped", "ㄱㄴ최ㅋㅋ", "최"},
		{"full width digits", "１２３정우성", "정우성"},
		{"invalid utf8", "\xff\xfe강동원", "강동원"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Name(tt.raw))
		})
	}
}

func TestName_ConjoiningJamoNotComposed(t *testing.T) {
	// A trailing final consonant must not merge into the syllable before it.
	assert.Equal(t, "가", Name("가\u11a8"))
	// U+1112 U+1169 U+11BC spells 홍 in conjoining jamo only.
	assert.Empty(t, Name("\u1112\u1169\u11bc"))
	assert.Equal(t, "김", Name("\u1112\u1169김\u11bc"))
}

func TestName_Properties(t *testing.T) {
	inputs := []string{
		"",
		"홍길동",
		"2024.01.05 농협 12-3 김 철 수",
		"abc가나다123라",
		"!!!",
		"양곡 10kg x2 이순신",
		"가\u11a8",
		"\u1112\u1169\u11bc 홍길동",
	}

	for _, in := range inputs {
		out := Name(in)

		assert.True(t, utf8.ValidString(out))
		for _, r := range out {
			assert.True(t, IsNameRune(r), "unexpected rune %q in %q", r, out)
		}
		assert.True(t, isSubsequence(out, in), "%q is not an ordered subsequence of %q", out, in)
		assert.Equal(t, out, Name(out), "not idempotent for %q", in)
	}
}

func TestIsNameRune(t *testing.T) {
	assert.True(t, IsNameRune('가'))
	assert.True(t, IsNameRune('힣'))
	assert.False(t, IsNameRune('a'))
	assert.False(t, IsNameRune('ㄱ'))
	assert.False(t, IsNameRune('漢'))
}

func isSubsequence(sub, s string) bool {
	rs := []rune(s)
	i := 0
	for _, r := range sub {
		for i < len(rs) && rs[i] != r {
			i++
		}
		if i == len(rs) {
			return false
		}
		i++
	}
	return true
}
