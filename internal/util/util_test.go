package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    uint
		wantErr error
	}{
		{in: "12", want: 12},
		{in: " 7 ", want: 7},
		{in: "", wantErr: ErrResourceIDInvalid},
		{in: "0", wantErr: ErrResourceIDInvalid},
		{in: "-3", wantErr: ErrResourceIDInvalid},
		{in: "abc", wantErr: ErrResourceIDInvalid},
		{in: "undefined", wantErr: ErrResourceIDInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseID(tt.in)
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIDs(t *testing.T) {
	ids, err := ParseIDs("1,,3")
	assert.NoError(t, err)
	assert.Equal(t, []uint{1, 3}, ids)

	_, err = ParseIDs("1,x")
	assert.ErrorIs(t, err, ErrResourceIDInvalid)

	ids, err = ParseIDs("")
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFilenameFromDisposition(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "empty", header: "", want: ""},
		{name: "attachment", header: `attachment; filename="intro.pdf"`, want: "intro.pdf"},
		{name: "unquoted", header: `attachment; filename=intro.pdf`, want: "intro.pdf"},
		{name: "path stripped", header: `attachment; filename="../../etc/passwd"`, want: "passwd"},
		{name: "no filename", header: `inline`, want: ""},
		{name: "garbage", header: `;;;`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilenameFromDisposition(tt.header))
		})
	}
}

func TestValidateMimeType(t *testing.T) {
	_, err := ValidateMimeType([]byte("%PDF-1.7\n..."), []string{MimePDF})
	assert.NoError(t, err)

	_, err = ValidateMimeType([]byte("<html></html>"), []string{MimePDF})
	assert.Error(t, err)
}

func TestModuleFallbackFilename(t *testing.T) {
	assert.Equal(t, "module-42.pdf", ModuleFallbackFilename(42))
}
