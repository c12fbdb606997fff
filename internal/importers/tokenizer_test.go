package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_Basic(t *testing.T) {
	rows := Tokenize("Full Name,Email\nJane Doe,jane@x.com\nJohn Roe,john@x.com\n")

	require.Len(t, rows, 2)
	assert.Equal(t, RawRow{"full_name": "Jane Doe", "email": "jane@x.com"}, rows[0])
	assert.Equal(t, "John Roe", rows[1]["full_name"])
}

func TestTokenize_QuotedFields(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"comma inside quotes", `"a,b",x`, "a,b"},
		{"escaped quote", `"a""b",x`, `a"b`},
		{"quoted empty", `"",x`, ""},
		{"escaped quote at edges", `"""quoted""",x`, `"quoted"`},
		{"unicode", `"Zoë, MD",x`, "Zoë, MD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Tokenize("value,other\n" + tt.line)
			require.Len(t, rows, 1)
			assert.Equal(t, tt.want, rows[0]["value"])
			assert.Equal(t, "x", rows[0]["other"])
		})
	}
}

func TestTokenize_EmptyInputs(t *testing.T) {
	for name, text := range map[string]string{
		"empty":         "",
		"whitespace":    "  \n\n \r\n",
		"header only":   "full_name,email\n",
		"header blanks": "\n\nfull_name,email\n\n\n",
	} {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, Tokenize(text))
		})
	}
}

func TestTokenize_SkipsBlankLinesAndCRLF(t *testing.T) {
	rows := Tokenize("name\r\n\r\nVIP\r\n   \r\nPress\r\n")

	require.Len(t, rows, 2)
	assert.Equal(t, "VIP", rows[0]["name"])
	assert.Equal(t, "Press", rows[1]["name"])
}

func TestTokenize_StripsBOM(t *testing.T) {
	rows := Tokenize("\ufeffName\nVIP")

	require.Len(t, rows, 1)
	assert.Equal(t, "VIP", rows[0]["name"])
}

func TestTokenize_RaggedRows(t *testing.T) {
	rows := Tokenize("a,b,c\n1\n1,2,3,4,5")

	require.Len(t, rows, 2)
	assert.Equal(t, RawRow{"a": "1", "b": "", "c": ""}, rows[0])
	assert.Equal(t, RawRow{"a": "1", "b": "2", "c": "3"}, rows[1])
}

func TestTokenize_RepeatedHeaderKeepsFirstNonEmpty(t *testing.T) {
	rows := Tokenize("email,Email\n,jane@x.com\nfirst@x.com,second@x.com")

	require.Len(t, rows, 2)
	assert.Equal(t, "jane@x.com", rows[0]["email"])
	assert.Equal(t, "first@x.com", rows[1]["email"])
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "first_name", NormalizeHeader("  First Name "))
	assert.Equal(t, "speaker_linkedin_url", NormalizeHeader("Speaker  LinkedIn\tURL"))
	assert.Equal(t, "email", NormalizeHeader("EMAIL"))
}
