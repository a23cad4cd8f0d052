package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Value
		expected bool
	}{
		{name: "same integer", a: Integer(5), b: Integer(5), expected: true},
		{name: "different integer", a: Integer(5), b: Integer(6)},
		{name: "same string", a: String("ab"), b: String("ab"), expected: true},
		{name: "integer vs string", a: Integer(1), b: String("1")},
		{name: "nil vs nil", a: nil, b: nil, expected: true},
		{name: "nil vs integer", a: nil, b: Integer(0)},
		{
			name:     "equal lists",
			a:        List{Int(1), Ref(3)},
			b:        List{Int(1), Ref(3)},
			expected: true,
		},
		{
			name: "lists differ in reference",
			a:    List{Int(1), Ref(3)},
			b:    List{Int(1), Ref(4)},
		},
		{
			name: "lists differ in length",
			a:    List{Int(1)},
			b:    List{Int(1), Int(1)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Equal(tc.a, tc.b))
		})
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindInteger, Integer(1).Kind())
	assert.Equal(t, KindString, String("x").Kind())
	assert.Equal(t, KindList, List{}.Kind())
	assert.Equal(t, "undefined", KindUndefined.String())
	assert.Equal(t, "list", KindList.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "-12", Integer(-12).String())
	assert.Equal(t, "plain", String("plain").String())
	assert.Equal(t, `[1, "a", ref(#2)]`, List{Int(1), Str("a"), Ref(2)}.String())
}
