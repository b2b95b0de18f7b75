package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireInvalidInput asserts err is an *InvalidInputError and returns its
// message list.
func requireInvalidInput(t *testing.T, err error) []string {
	t.Helper()

	require.Error(t, err)
	require.True(t, errors.Is(err, ErrValidation))

	var invalidErr *InvalidInputError
	require.True(t, errors.As(err, &invalidErr))
	return invalidErr.Messages
}

func TestValidateRegistration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		email        string
		password     string
		userName     string
		wantMessages []string
	}{
		{
			name:     "valid input",
			email:    "reader@example.com",
			password: "secret-password",
			userName: "Maria Reader",
		},
		{
			name:         "malformed email",
			email:        "not-an-email",
			password:     "secret-password",
			userName:     "Maria Reader",
			wantMessages: []string{"email must be a valid email address"},
		},
		{
			name:         "short password",
			email:        "reader@example.com",
			password:     "abc",
			userName:     "Maria Reader",
			wantMessages: []string{"password must be at least 5 characters long"},
		},
		{
			name:         "short name",
			email:        "reader@example.com",
			password:     "secret-password",
			userName:     "Mia",
			wantMessages: []string{"name must be at least 5 characters long"},
		},
		{
			name:     "every field invalid reports every failure in order",
			email:    "",
			password: "ab",
			userName: "",
			wantMessages: []string{
				"email must be a valid email address",
				"password must be at least 5 characters long",
				"name must be at least 5 characters long",
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateRegistration(tc.email, tc.password, tc.userName)
			if len(tc.wantMessages) == 0 {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tc.wantMessages, requireInvalidInput(t, err))
		})
	}
}

func TestValidatePostInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		title        string
		content      string
		imageURL     string
		wantMessages []string
	}{
		{
			name:     "valid input",
			title:    "First post",
			content:  "Some longer content",
			imageURL: "images/first.png",
		},
		{
			name:         "short title",
			title:        "Hey",
			content:      "Some longer content",
			imageURL:     "images/first.png",
			wantMessages: []string{"title must be non-empty and at least 5 characters long"},
		},
		{
			name:         "empty content",
			title:        "First post",
			content:      "",
			imageURL:     "images/first.png",
			wantMessages: []string{"content must be non-empty and at least 5 characters long"},
		},
		{
			name:     "all fields invalid reports every failure in order",
			title:    "",
			content:  "abc",
			imageURL: "x",
			wantMessages: []string{
				"title must be non-empty and at least 5 characters long",
				"content must be non-empty and at least 5 characters long",
				"imageUrl must be non-empty and at least 5 characters long",
			},
		},
		{
			name:     "placeholder value passes the length rule",
			title:    "First post",
			content:  "Some longer content",
			imageURL: LegacyImagePlaceholder,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidatePostInput(tc.title, tc.content, tc.imageURL)
			if len(tc.wantMessages) == 0 {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tc.wantMessages, requireInvalidInput(t, err))
		})
	}
}

func TestValidateStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{name: "valid status", status: "Writing away"},
		{name: "two characters is enough", status: "OK"},
		{name: "single character", status: "A", wantErr: true},
		{name: "empty", status: "", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStatus(tc.status)
			if tc.wantErr {
				messages := requireInvalidInput(t, err)
				assert.Equal(t,
					[]string{"status must be non-empty and at least 2 characters long"},
					messages)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewInvalidInputError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewInvalidInputError(nil))
	assert.NoError(t, NewInvalidInputError([]string{}))

	err := NewInvalidInputError([]string{"title is wrong", "content is wrong"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is wrong")
	assert.Contains(t, err.Error(), "content is wrong")
}
