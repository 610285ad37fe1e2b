package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemdesk/internal/domain/user"
)

type fakeSetter struct {
	fields user.Fields
	err    error
}

func (s *fakeSetter) Set(fn func(*user.Fields)) error {
	if s.err != nil {
		return s.err
	}
	fn(&s.fields)
	return nil
}

func TestApplyEdit(t *testing.T) {
	editRole = "admin"
	t.Cleanup(func() { editRole = "" })
	changed := func(name string) bool { return name == "role" }

	s := &fakeSetter{fields: user.Fields{Name: "Ann", Email: "ann@example.com", Role: user.RoleUser}}
	require.NoError(t, applyEdit(s, changed))
	assert.Equal(t, user.Fields{Name: "Ann", Email: "ann@example.com", Role: user.RoleAdmin}, s.fields)

	setErr := errors.New("editor is busy")
	assert.ErrorIs(t, applyEdit(&fakeSetter{err: setErr}, changed), setErr)
}
