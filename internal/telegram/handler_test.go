package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCommand(t *testing.T) {
	cases := []struct {
		text string
		cmd  string
		args []string
	}{
		{"/challenge", "challenge", nil},
		{"/challenge riddle", "challenge", []string{"riddle"}},
		{"/top@my_quiz_bot weekly", "top", []string{"weekly"}},
		{"/Team create الأبطال", "team", []string{"create", "الأبطال"}},
		{"/tournament rewards 100 60 40", "tournament", []string{"rewards", "100", "60", "40"}},
	}

	for _, c := range cases {
		cmd, args := splitCommand(c.text)
		assert.Equal(t, c.cmd, cmd, c.text)
		if c.args == nil {
			assert.Empty(t, args, c.text)
		} else {
			assert.Equal(t, c.args, args, c.text)
		}
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "ahmad99", displayName(&User{Username: "ahmad99", FirstName: "Ahmad"}))
	assert.Equal(t, "Ahmad", displayName(&User{FirstName: "Ahmad"}))
}
