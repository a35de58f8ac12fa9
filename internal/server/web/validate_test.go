package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name string
		req  registerRequest
		want []string
	}{
		{
			name: "valid",
			req:  registerRequest{Username: "alice", Password: "Passw0rd!", ConfirmPassword: "Passw0rd!"},
			want: nil,
		},
		{
			name: "missing username",
			req:  registerRequest{Password: "Passw0rd!", ConfirmPassword: "Passw0rd!"},
			want: []string{MsgUsernameRequired},
		},
		{
			name: "missing password",
			req:  registerRequest{Username: "alice"},
			want: []string{MsgPasswordRequired},
		},
		{
			name: "too short",
			req:  registerRequest{Username: "alice", Password: "Pa0!", ConfirmPassword: "Pa0!"},
			want: []string{MsgPasswordTooShort},
		},
		{
			name: "no upper case",
			req:  registerRequest{Username: "alice", Password: "passw0rd!", ConfirmPassword: "passw0rd!"},
			want: []string{MsgPasswordTooWeak},
		},
		{
			name: "no lower case",
			req:  registerRequest{Username: "alice", Password: "PASSW0RD!", ConfirmPassword: "PASSW0RD!"},
			want: []string{MsgPasswordTooWeak},
		},
		{
			name: "no digit",
			req:  registerRequest{Username: "alice", Password: "Password!", ConfirmPassword: "Password!"},
			want: []string{MsgPasswordTooWeak},
		},
		{
			name: "no special character",
			req:  registerRequest{Username: "alice", Password: "Passw0rd1", ConfirmPassword: "Passw0rd1"},
			want: []string{MsgPasswordTooWeak},
		},
		{
			name: "space is not a special character",
			req:  registerRequest{Username: "alice", Password: "Abc 1234", ConfirmPassword: "Abc 1234"},
			want: []string{MsgPasswordTooWeak},
		},
		{
			name: "control character is not a special character",
			req:  registerRequest{Username: "alice", Password: "Abc\t1234", ConfirmPassword: "Abc\t1234"},
			want: []string{MsgPasswordTooWeak},
		},
		{
			name: "confirmation mismatch",
			req:  registerRequest{Username: "alice", Password: "Passw0rd!", ConfirmPassword: "Passw0rd?"},
			want: []string{MsgConfirmMismatch},
		},
		{
			name: "everything wrong",
			req:  registerRequest{ConfirmPassword: "x"},
			want: []string{MsgUsernameRequired, MsgPasswordRequired, MsgConfirmMismatch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validateRegister(tt.req))
		})
	}
}
