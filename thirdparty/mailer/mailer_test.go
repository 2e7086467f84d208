package mailer

import (
	"strings"
	"testing"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfirmation(t *testing.T) {
	n := model.ConfirmationNotification{Email: "ada@example.com", FirstName: "<Ada>", Code: 482913}

	out, err := renderConfirmation(newMinifier(), n)
	require.NoError(t, err)

	assert.Contains(t, out, "482913")
	assert.NotContains(t, out, "<Ada>", "names are escaped")
	assert.NotContains(t, out, "\n  ", "indentation is minified away")
	assert.True(t, strings.HasPrefix(strings.ToLower(out), "<!doctype html>"))
}

func TestPlainConfirmation(t *testing.T) {
	got := plainConfirmation(model.ConfirmationNotification{FirstName: "Ada", Code: 100000})
	assert.Contains(t, got, "100000")
	assert.Contains(t, got, "Hi Ada")
}
