package middleware

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestContainer(t *testing.T) {
	noop := func(ctx huma.Context, next func(huma.Context)) { next(ctx) }

	c := NewContainer()
	c.Add(noop).Add(noop, noop)

	got := c.GetAllAndClear()
	assert.Len(t, got, 3)
	assert.Empty(t, c.GetAllAndClear())
}
