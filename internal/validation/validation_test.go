package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid", username: "admin", wantErr: false},
		{name: "valid with underscore", username: "user_1", wantErr: false},
		{name: "empty", username: "", wantErr: true},
		{name: "too short", username: "ab", wantErr: true},
		{name: "too long", username: "a123456789012345678901234567890123", wantErr: true},
		{name: "space", username: "user name", wantErr: true},
		{name: "arabic letters", username: "مستخدم", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("admin"))
	assert.NoError(t, ValidatePassword("1234"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("abc"))
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone(""))
	assert.NoError(t, ValidatePhone("0956789123"))
	assert.NoError(t, ValidatePhone("+963956961395"))
	assert.Error(t, ValidatePhone("12345"))
	assert.Error(t, ValidatePhone("09-567-891"))
	assert.Error(t, ValidatePhone("+9639569613951234567"))
}
