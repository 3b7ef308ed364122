package v1

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserID(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantID int
		wantOK bool
	}{
		{name: "Valid", raw: "1", wantID: 1, wantOK: true},
		{name: "Valid large", raw: "123456", wantID: 123456, wantOK: true},
		{name: "Trims whitespace", raw: " 7 ", wantID: 7, wantOK: true},
		{name: "Empty", raw: "", wantOK: false},
		{name: "Non-numeric", raw: "abc", wantOK: false},
		{name: "Zero", raw: "0", wantOK: false},
		{name: "Negative", raw: "-1", wantOK: false},
		{name: "Float", raw: "1.5", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := parseUserID(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "Nil error",
			err:  nil,
			want: "",
		},
		{
			name: "Validator detail is hidden",
			err:  errors.New("Key: 'UserRequest.Username' Error:Field validation for 'Username' failed on the 'required' tag"),
			want: "Invalid request",
		},
		{
			name: "Unmarshal detail is hidden",
			err:  errors.New("json: cannot unmarshal number into Go struct field UserRequest.username of type string"),
			want: "Invalid request",
		},
		{
			name: "Short safe message passes through",
			err:  errors.New("unexpected EOF"),
			want: "unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeValidationError(tt.err))
		})
	}
}
